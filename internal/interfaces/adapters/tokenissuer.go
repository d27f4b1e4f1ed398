package adapters

import (
	"tag/internal/application/user/usecases"
	"tag/internal/infrastructure/auth"
	"tag/internal/shared/authorization"
)

// TokenIssuerAdapter adapts auth.JWTService to usecases.TokenIssuer.
type TokenIssuerAdapter struct {
	jwt *auth.JWTService
}

func NewTokenIssuerAdapter(jwt *auth.JWTService) *TokenIssuerAdapter {
	return &TokenIssuerAdapter{jwt: jwt}
}

func (a *TokenIssuerAdapter) Issue(userID uint, role authorization.UserRole) (*usecases.IssuedToken, error) {
	token, err := a.jwt.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.IssuedToken{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
	}, nil
}
