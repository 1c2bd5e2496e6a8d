package response

// ErrorBody is the error envelope for every failed request.
type ErrorBody struct {
	Detail string `json:"detail"`
}
