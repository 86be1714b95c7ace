package request_models

// PlanRequest is the body of POST /plans and PUT /plans/:id. Updates replace
// every field, so the same shape serves both.
type PlanRequest struct {
	Name        *string  `json:"name" binding:"required,max=20"`
	Value       *float64 `json:"value" binding:"required"`
	Description *string  `json:"description" binding:"omitempty,max=200"`
}
