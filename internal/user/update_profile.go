package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sudo-init-do/robomart/internal/db"
)

type UpdateProfileRequest struct {
	Email         string `json:"email"`
	WalletAddress string `json:"wallet_address"`
}

// PATCH /user/profile
func UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or missing token"})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	query := `
		UPDATE users
		SET email = COALESCE(NULLIF($1, ''), email),
		    wallet_address = COALESCE(NULLIF($2, ''), wallet_address)
		WHERE id = $3
	`
	_, err := db.Conn.Exec(c.Request().Context(), query, req.Email, req.WalletAddress, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated successfully",
	})
}
