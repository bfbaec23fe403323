package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/handler/http/response"
	"github.com/hexahash/attendance-portal-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		loginReq.IPAddress = &host
	}

	loginResp, err := a.authService.Login(r.Context(), &loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	cookie := a.jwtService.RefreshTokenCookie(loginResp.RefreshToken, loginResp.RefreshTokenExpiresAt)
	http.SetCookie(w, cookie)
	slog.Info("User logged in", "user_id", loginResp.User.ID)
	response.Success(w, loginResp)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userResp, err := a.authService.Register(r.Context(), &registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered", "user_id", userResp.ID)
	response.Created(w, "User registered successfully", userResp)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	refreshResp, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	rotated := a.jwtService.RefreshTokenCookie(refreshResp.RefreshToken, refreshResp.RefreshTokenExpiresAt)
	http.SetCookie(w, rotated)
	response.Success(w, refreshResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := jwtauth.TokenFromHeader(r)

	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := a.authService.Logout(r.Context(), accessToken, refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	cleared := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cleared)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := changeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), userID, &changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	userResp, err := a.authService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userResp)
}

// userIDFromContext pulls the authenticated user id out of the verified
// token claims.
func userIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}
