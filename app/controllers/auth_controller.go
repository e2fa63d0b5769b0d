package controllers

import (
	"errors"
	"net/http"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/bind"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/logger"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/response"
)

// LoginService exchanges a credential pair for a signed access token.
type LoginService interface {
	Login(username, password string) (string, error)
}

type AuthController struct {
	auth LoginService
}

func NewAuthController(svc LoginService) *AuthController {
	return &AuthController{auth: svc}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login handles POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, tokenResponse{AccessToken: token})
}
