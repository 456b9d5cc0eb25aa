package chat

// Request represents the request body for both chat endpoints.
// message must be present but may be empty.
type Request struct {
	Message *string `json:"message" binding:"required"`
}
