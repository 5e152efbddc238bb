package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type RenameGroupBody struct {
	Name string `json:"nomeGrupo" minLength:"1" doc:"New group name"`
}

type RenameGroupInput struct {
	Body RenameGroupBody
}

// Group is the API response model for a group.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	CreatedBy string `json:"criado_por"`
	CreatedAt string `json:"criado_em" doc:"RFC3339 creation time"`
}

type RenameGroupOutput struct {
	Body Group
}

type groupRenamer interface {
	RenameGroup(ctx context.Context, groupID uuid.UUID, name string) (*sqlconfig.Group, error)
}

// RenameGroupHandler handles PUT /atualizar-grupo.
type RenameGroupHandler struct {
	ProfileService groupRenamer
	auth           huma.Middlewares
}

func NewRenameGroupHandler(svc groupRenamer, auth huma.Middlewares) *RenameGroupHandler {
	return &RenameGroupHandler{ProfileService: svc, auth: auth}
}

func (h *RenameGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-group",
		Method:      http.MethodPut,
		Path:        "/atualizar-grupo",
		Summary:     "Rename group",
		Tags:        []string{"Settings"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *RenameGroupHandler) handle(ctx context.Context, input *RenameGroupInput) (*RenameGroupOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	group, err := h.ProfileService.RenameGroup(ctx, caller.GroupID, input.Body.Name)
	if err != nil {
		return nil, apperr.Response(err)
	}

	return &RenameGroupOutput{Body: Group{
		ID:        group.ID.String(),
		Name:      group.Name,
		CreatedBy: group.CreatedBy.String(),
		CreatedAt: group.CreatedAt.Format(time.RFC3339),
	}}, nil
}
