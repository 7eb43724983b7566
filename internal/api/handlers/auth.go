package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/parisboutique/storefront/internal/api/middleware"
	"github.com/parisboutique/storefront/internal/auth"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/utils"
	"github.com/parisboutique/storefront/internal/utils/response"
)

type AuthHandler struct {
	manager   *auth.Manager
	validator *validator.Validate
}

func NewAuthHandler(manager *auth.Manager) *AuthHandler {
	return &AuthHandler{manager: manager, validator: validator.New()}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			writeValidationFailure(w, err)
			return
		}

		if req.UserAgent == "" {
			req.UserAgent = r.UserAgent()
		}

		session, err := h.manager.Authenticate(r.Context(), &req)
		if err != nil {
			slog.Warn("Login attempt failed", slog.String("username", req.Username))
			response.Error(w, err)
			return
		}

		expiresAt, _ := time.Parse(time.RFC3339, session.ExpiresAt)

		response.WriteJson(w, http.StatusOK, models.LoginResponse{
			Success:   true,
			Token:     session.Token,
			ExpiresIn: int(time.Until(expiresAt).Seconds()),
			Session:   session,
		})
	}
}

// Session returns the current validated session. Routed behind the auth
// middleware, so reaching here means validation already passed.
func (h *AuthHandler) Session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.WriteJson(w, http.StatusUnauthorized, models.LoginResponse{
				Success: false,
				Message: "Not authenticated",
			})
			return
		}

		response.WriteJson(w, http.StatusOK, session)
	}
}

func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.manager.Logout(r.Context()); err != nil {
			slog.Warn("Logout failed", slog.String("error", err.Error()))
		}

		response.Success(w, http.StatusOK, map[string]bool{"loggedOut": true})
	}
}
