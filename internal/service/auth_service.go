package service

import (
	"depot/internal/apierror"
	"depot/internal/dto"
	"depot/internal/infra"
	"depot/internal/model"
	"depot/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenPrefix marks tokens issued by this data service. /auth/me trusts any
// locally persisted token carrying the prefix — there is no server-side
// verification. This is a deliberately weak, demo-grade model; do not harden
// it here without changing the dispatcher contract.
const TokenPrefix = "depot-token-"

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Me() *dto.UserResponse
	Logout()
}

type authService struct {
	store *repository.Store
	slots *infra.SlotStore
}

func NewAuthService(store *repository.Store, slots *infra.SlotStore) AuthService {
	return &authService{store: store, slots: slots}
}

// Login checks credentials by linear scan against the user collection.
// Failure is the one structured, user-facing error in the whole surface;
// nothing is persisted on failure.
func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user := s.store.FindUserByUsername(req.Username)
	if user == nil || !user.Active {
		return nil, apierror.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.InvalidCredentials()
	}

	token := TokenPrefix + uuid.NewString()
	sanitized := sanitizeUser(*user)
	if s.slots != nil {
		s.slots.Save(infra.SlotToken, token)
		s.slots.Save(infra.SlotUser, sanitized)
	}

	return &dto.LoginResponse{Token: token, TokenType: "bearer", User: sanitized}, nil
}

// Me returns the persisted profile when the persisted token looks like one of
// ours. Anything else resolves to nil, which the dispatcher renders as an
// empty result.
func (s *authService) Me() *dto.UserResponse {
	if s.slots == nil {
		return nil
	}
	var token string
	if !s.slots.Load(infra.SlotToken, &token) {
		return nil
	}
	if len(token) < len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil
	}
	var user dto.UserResponse
	if !s.slots.Load(infra.SlotUser, &user) {
		return nil
	}
	return &user
}

// Logout drops the token and profile slots. The graph slot is untouched.
func (s *authService) Logout() {
	if s.slots == nil {
		return
	}
	s.slots.Delete(infra.SlotToken)
	s.slots.Delete(infra.SlotUser)
}

func sanitizeUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		WarehouseID: u.WarehouseID,
		Active:      u.Active,
	}
}
