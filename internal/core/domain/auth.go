package domain

// AuthIdentity is the verified identity extracted from a bearer token.
// It lives in the request context for the duration of one request.
type AuthIdentity struct {
	UserID string
	Email  string
}
