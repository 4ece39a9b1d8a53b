package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard-backend/internal/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const TokenTypeAccess TokenType = "access"

const accessTokenAudience = "jobboard-api"

// UserClaims carries the caller identity. Tokens are issued by the account
// service; this package only needs to mint them for tooling and tests.
type UserClaims struct {
	UserID int32           `json:"user_id"`
	Email  string          `json:"email,omitempty"`
	Role   domain.UserRole `json:"role"`
	Type   TokenType       `json:"type"`
	jwt.RegisteredClaims
}

// Actor converts the claims into the service-layer caller identity
func (c *UserClaims) Actor() domain.Actor {
	return domain.Actor{UserID: c.UserID, Role: c.Role}
}

type TokenManager interface {
	GenerateAccessToken(userID int32, email string, role domain.UserRole, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
}

type tokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret, issuer string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (m *tokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{accessTokenAudience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	opts := []jwt.ParserOption{jwt.WithAudience(accessTokenAudience)}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == 0 && claims.Subject != "" {
		uid, _ := strconv.Atoi(claims.Subject)
		claims.UserID = int32(uid)
	}
	if claims.Role == "" {
		claims.Role = domain.UserRoleSeeker
	}
	return claims, nil
}
