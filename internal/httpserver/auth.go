package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/mykafka"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		l.Warn("register_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "user_events", user.ID, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
	})

	l.Info("user_registered", "userID", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		l.Warn("login_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "incorrect username or password")
	}

	c.SetCookie(&http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.change_password")

	id, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword); err != nil {
		l.Warn("change_password_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "password updated"})
}

func (h *AuthHTTP) GetUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) ListUsers(c echo.Context) error {
	skip := parseIntDefault(c.QueryParam("skip"), 0)
	limit := parseIntDefault(c.QueryParam("limit"), 10)

	users, err := h.Svc.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHTTP) UpdateUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Email     *string `json:"email"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	fields := map[string]any{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	user, err := h.Svc.UpdateUser(c.Request().Context(), id, fields)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) DeleteUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Svc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
