package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IssueToken signs a 72h HS256 session token carrying the user id and
// role the middleware and role guards consume.
func IssueToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
