// Package auth provides the session user model and JWT token handling for the
// admin surface. Role checks are pure functions over the User value.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrInvalidToken = errors.New("invalid token")

// User is the authenticated caller extracted from a token.
type User struct {
	ID    string
	Email string
	Role  string
}

func IsAdmin(u User) bool {
	return u.Role == RoleAdmin
}

// CanManageContent reports whether the user may edit catalog content without
// holding full admin rights.
func CanManageContent(u User) bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the user.
func GenerateToken(u User, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the user it carries.
func ParseToken(tokenString, secret string) (User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return User{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return User{}, ErrInvalidToken
	}
	return User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
