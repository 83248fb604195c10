package model

import "github.com/shopspring/decimal"

const (
	PlanDraft     = "draft"
	PlanApproved  = "approved"
	PlanExecuting = "executing"
	PlanCompleted = "completed"
	PlanCancelled = "cancelled"
)

// DistributionPlan batches orders for coordinated distribution.
type DistributionPlan struct {
	ID         int             `json:"id"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	OrderIDs   []int           `json:"order_ids"`
	TotalValue decimal.Decimal `json:"total_value"`
	OrderCount int             `json:"order_count"`
	PlanDate   string          `json:"plan_date"` // YYYY-MM-DD
}
