package request_models

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// ListRequest holds offset pagination for the list endpoints.
type ListRequest struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// DefaultListRequest mirrors the storage defaults: offset 0, limit 100.
func DefaultListRequest() ListRequest {
	return ListRequest{Skip: 0, Limit: DefaultLimit}
}
