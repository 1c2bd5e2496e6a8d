package model

// Scope is the caller principal a request acts as. It is filled by the
// identity middleware and handed to every use case, so swapping header
// trust for real verification only touches the middleware.
type Scope struct {
	UserID string
}
