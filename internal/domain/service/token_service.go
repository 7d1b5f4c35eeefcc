package service

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed access token for a given user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken checks a token string and returns the user ID it was
	// issued for.
	ValidateToken(tokenString string) (uint, error)
}
