package ports

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue produces a signed token embedding userID with a bounded lifetime.
	Issue(userID string) (string, error)
	// Verify checks signature and expiry and returns the embedded user id.
	// Failures are exactly domain.ErrTokenExpired (valid signature, past
	// expiry) or domain.ErrTokenMalformed (everything else).
	Verify(token string) (string, error)
}
