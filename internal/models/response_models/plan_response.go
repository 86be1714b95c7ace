package response_models

type PlanResponse struct {
	ID          uint    `json:"ID"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description *string `json:"description"`
}
