package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/robomart/internal/db"
)

// Me returns the currently authenticated user's profile
func Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or missing token"})
	}

	var (
		id, email, role string
		walletAddress   *string
		totalSpent      float64
	)
	err := db.Conn.QueryRow(context.Background(),
		`SELECT id, email, role, wallet_address, total_spent FROM users WHERE id=$1`, userID).
		Scan(&id, &email, &role, &walletAddress, &totalSpent)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	wallet := ""
	if walletAddress != nil {
		wallet = *walletAddress
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":             id,
		"email":          email,
		"role":           role,
		"wallet_address": wallet,
		"total_spent":    totalSpent,
	})
}
