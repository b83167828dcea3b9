package auth

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sudo-init-do/robomart/internal/db"
	"github.com/sudo-init-do/robomart/internal/user"
	"github.com/sudo-init-do/robomart/internal/utils"
)

var validate = validator.New()

type SignupRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	WalletAddress string `json:"wallet_address"`
}

type SignupResponse struct {
	Token string `json:"token"`
}

// ===== Signup =====
func Signup(c echo.Context) error {
	req := new(SignupRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	// Default role is always "user"; robot_owner is granted by an admin
	var userID string
	err = db.Conn.QueryRow(context.Background(), `
		INSERT INTO users (id, email, password, role, wallet_address)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id
	`, uuid.New().String(), req.Email, string(hashed), user.RoleUser, req.WalletAddress).Scan(&userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already exists"})
	}

	signed, err := utils.IssueToken(userID, user.RoleUser)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
	}

	return c.JSON(http.StatusOK, SignupResponse{Token: signed})
}
