package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/logging"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" minLength:"1" doc:"Account email"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token  string `json:"token" doc:"Access token, sent back as a Bearer credential"`
	UserID string `json:"user_id" doc:"Identity UUID"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	SetCookie string `header:"Set-Cookie" doc:"Access token cookie, only with the cookie transport"`
	Body      LoginResponse
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (*identity.Session, error)
}

// LoginHandler handles POST /login.
type LoginHandler struct {
	AuthService authenticator
	Cookies     CookieSettings
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator, cookies CookieSettings) *LoginHandler {
	return &LoginHandler{AuthService: svc, Cookies: cookies}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Log in",
		Description: "Verifies email and password and issues an access token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	s, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("identityID", s.IdentityID.String())
	}

	return &LoginOutput{
		SetCookie: h.Cookies.issue(s, time.Now()),
		Body: LoginResponse{
			Token:  s.AccessToken,
			UserID: s.IdentityID.String(),
		},
	}, nil
}
