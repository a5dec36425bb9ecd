package usecase

import (
	"course-sectioning/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// Principal is the authenticated caller of the admin API.
type Principal struct {
	UserID     uuid.UUID
	ExternalID string
	Role       jwt.Role
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}

	role := jwt.Role(claims.Role)
	if role != jwt.RoleAdvisor && role != jwt.RoleAdmin {
		return Principal{}, jwt.ErrInvalidToken
	}

	return Principal{
		UserID:     claims.UserID,
		ExternalID: claims.ExternalID,
		Role:       role,
	}, nil
}
