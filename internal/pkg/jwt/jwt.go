package jwt

import (
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the HRIS auth service. Both sides
// share the HS256 secret.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// GenerateAccessToken issues a token with the claims the overtime routes
	// read. Used by batch callers and tests.
	GenerateAccessToken(userID string, companyID string, role overtime.Role) (token string, expiresAt int64, err error)
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration, skew time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(skew)),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, companyID string, role overtime.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}

	_, token, err = j.tokenAuth.Encode(claims)
	return token, expiresAt, err
}
