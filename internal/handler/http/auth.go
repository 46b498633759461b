package http

import (
	"net/http"

	domainauth "github.com/stitchlabs/workshop-backend-go/internal/domain/auth"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/auth"
)

type AuthHandler struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := domainauth.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{
		"token":     resp.Token,
		"expiresAt": resp.ExpiresAt,
	})
}
