package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type LogoutResponse struct {
	Message string `json:"message"`
}

type LogoutOutput struct {
	SetCookie string `header:"Set-Cookie"`
	Body      LogoutResponse
}

// LogoutHandler handles POST /logout. Tokens are stateless, so logging out only
// clears the cookie.
type LogoutHandler struct {
	Cookies CookieSettings
}

func NewLogoutHandler(cookies CookieSettings) *LogoutHandler {
	return &LogoutHandler{Cookies: cookies}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/logout",
		Summary:     "Log out",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(_ context.Context, _ *struct{}) (*LogoutOutput, error) {
	return &LogoutOutput{
		SetCookie: h.Cookies.clear(),
		Body:      LogoutResponse{Message: "Logout feito"},
	}, nil
}
