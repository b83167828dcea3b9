package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sudo-init-do/robomart/internal/admin"
	"github.com/sudo-init-do/robomart/internal/auth"
	"github.com/sudo-init-do/robomart/internal/db"
	mware "github.com/sudo-init-do/robomart/internal/middleware"
	"github.com/sudo-init-do/robomart/internal/robots"
	"github.com/sudo-init-do/robomart/internal/user"
)

func main() {
	// Load .env if present, then initialize subsystems
	_ = godotenv.Load()
	db.Init()
	robots.Init()

	e := echo.New()
	e.HideBanner = true

	// Basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// Health and root routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "robomart"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if db.Conn == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db not initialized"})
		}
		if err := db.Conn.Ping(context.Background()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	// Public routes
	// Auth routes with per-IP rate limiting to protect signup/login from abuse
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	authGroup.POST("/signup", auth.Signup)
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/bootstrap_admin", auth.BootstrapAdmin)

	e.GET("/user/:id/profile", user.GetPublicProfile)

	// Protected routes
	api := e.Group("")
	api.Use(mware.JWTMiddleware)

	api.GET("/auth/me", auth.Me)
	api.PATCH("/user/profile", user.UpdateProfile)

	// Robot marketplace. Route guards mirror the service-level policy:
	// anyone authenticated may browse, owners and admins may list,
	// updates check ownership inside the service, deletes are admin only.
	api.GET("/robots", robots.ListRobots)
	api.GET("/robots/:id", robots.GetRobot)
	api.GET("/robots/:id/metrics", robots.GetRobotMetrics)
	api.POST("/robots", robots.CreateRobot, mware.RequireRoles("robot_owner", "admin"))
	api.PATCH("/robots/:id", robots.UpdateRobot)
	api.DELETE("/robots/:id", robots.DeleteRobot, mware.AdminGuard)

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(mware.JWTMiddleware)
	adminGroup.Use(mware.AdminGuard)

	adminGroup.GET("/stats", admin.Stats)
	adminGroup.GET("/robots", admin.ListRobots)
	adminGroup.GET("/users", admin.ListUsers)
	adminGroup.POST("/users/:id/suspend", admin.SuspendUser)
	adminGroup.POST("/users/:id/activate", admin.ActivateUser)
	adminGroup.POST("/users/:id/promote_owner", admin.PromoteOwner)
	adminGroup.POST("/users/:id/demote_owner", admin.DemoteOwner)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
