package response_models

type MemberResponse struct {
	ID        uint   `json:"ID"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PlanID    uint   `json:"plan_id"`
}
