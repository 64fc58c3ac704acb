package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"adminpanel/internal/auth"
	"adminpanel/internal/config"
	"adminpanel/internal/handler"
	"adminpanel/internal/token"
	"adminpanel/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	codec *token.Codec,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	userHandler *handler.UserHandler,
	activityHandler *handler.ActivityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = validation.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET(cfg.SignInPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "sign in via POST /api/auth/sign-in",
		})
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/sign-up", authHandler.SignUp)
	api.POST("/auth/sign-in", authHandler.SignIn)

	// User CRUD surface
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	// Secured routes require the session cookie JWT.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
	}))

	secured.POST("/auth/sign-out", authHandler.SignOut)
	secured.GET("/user", accountHandler.CurrentUser)
	secured.PUT("/user/password", accountHandler.UpdatePassword)
	secured.DELETE("/user", accountHandler.DeleteAccount)
	secured.GET("/activity", activityHandler.ListActivity)

	// Admin pages are gated by the session guard, which redirects to the
	// sign-in page and slides the session window on safe requests.
	admin := e.Group("/admin", auth.SessionGuard(codec, cfg.SignInPath))
	admin.GET("", func(c echo.Context) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return c.Redirect(http.StatusFound, cfg.SignInPath)
		}
		return c.JSON(http.StatusOK, echo.Map{"user_id": userID})
	})
}
