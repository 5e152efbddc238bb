package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/session"
)

// SessionResponse describes the caller of a valid session.
type SessionResponse struct {
	Name      string `json:"nome"`
	Message   string `json:"message"`
	GroupID   string `json:"grupo_id"`
	Role      string `json:"perfil" enum:"admin,member"`
	Avatar    string `json:"avatar"`
	GroupName string `json:"nomeGrupo"`
}

type SessionOutput struct {
	Body SessionResponse
}

// SessionHandler handles GET /session. The guard does the work, the handler only
// reports what it attached.
type SessionHandler struct {
	auth huma.Middlewares
}

func NewSessionHandler(auth huma.Middlewares) *SessionHandler {
	return &SessionHandler{auth: auth}
}

func (h *SessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "session",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Check session",
		Description: "Validates the access token and returns the caller's profile and group.",
		Tags:        []string{"Auth"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *SessionHandler) handle(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	return &SessionOutput{Body: SessionResponse{
		Name:      caller.Name,
		Message:   "sessao Valida",
		GroupID:   caller.GroupID.String(),
		Role:      caller.Role,
		Avatar:    caller.Avatar,
		GroupName: caller.GroupName,
	}}, nil
}
