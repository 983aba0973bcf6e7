package http

import (
	"context"
	"net/http"
	"time"

	"jobboard/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type (
	UserSignup interface {
		Handle(ctx context.Context, cmd commands.SignupUserCommand) (commands.AuthResult, error)
	}
	UserLogin interface {
		Handle(ctx context.Context, cmd commands.LoginUserCommand) (commands.AuthResult, error)
	}
)

// UsersRouter serves account signup and login under /api/users.
type UsersRouter struct {
	signup UserSignup
	login  UserLogin
	now    func() time.Time
}

func NewUsersRouter(signup UserSignup, login UserLogin) *UsersRouter {
	return &UsersRouter{signup: signup, login: login, now: time.Now}
}

func (r *UsersRouter) Register(g *echo.Group) {
	g.POST("/signup", r.handleSignup)
	g.POST("/login", r.handleLogin)
}

func (r *UsersRouter) handleSignup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := req.profile()
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewSignupUserCommand(req.Username, req.Password, profile, r.now())
	if err != nil {
		return toHTTPError(err)
	}
	result, err := r.signup.Handle(c.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, authResponse(result))
}

func (r *UsersRouter) handleLogin(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(req.Username, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	result, err := r.login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, authResponse(result))
}
