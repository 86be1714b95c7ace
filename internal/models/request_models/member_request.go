package request_models

// MemberRequest is the body of POST /members and PUT /members/:id.
type MemberRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=20"`
	LastName  *string `json:"last_name" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"required,email,max=50"`
	PlanID    *uint   `json:"plan_id" binding:"required"`
}

// Names returns the name pair with absent halves as empty strings.
func (r MemberRequest) Names() (string, string) {
	var first, last string
	if r.FirstName != nil {
		first = *r.FirstName
	}
	if r.LastName != nil {
		last = *r.LastName
	}
	return first, last
}
