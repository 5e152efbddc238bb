package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// UpdateProfileBody lists the requested changes; blank fields are left unchanged.
type UpdateProfileBody struct {
	Name            string `json:"nome,omitempty" doc:"New display name"`
	Phone           string `json:"telefone,omitempty" doc:"New phone number"`
	CurrentPassword string `json:"senha,omitempty" doc:"Current password, required to change it"`
	NewPassword     string `json:"novaSenha,omitempty" doc:"New password"`
}

type UpdateProfileInput struct {
	Body UpdateProfileBody
}

type UpdateProfileResponse struct {
	Message string  `json:"msg"`
	Data    Profile `json:"data"`
}

type UpdateProfileOutput struct {
	Body UpdateProfileResponse
}

type profileUpdater interface {
	UpdateProfile(ctx context.Context, profileID uuid.UUID, email string, changes service.ProfileChanges) (*sqlconfig.Profile, error)
}

// UpdateProfileHandler handles PUT /atualizar-perfil.
type UpdateProfileHandler struct {
	ProfileService profileUpdater
	auth           huma.Middlewares
}

func NewUpdateProfileHandler(svc profileUpdater, auth huma.Middlewares) *UpdateProfileHandler {
	return &UpdateProfileHandler{ProfileService: svc, auth: auth}
}

func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/atualizar-perfil",
		Summary:     "Update profile",
		Description: "Changes name and phone. The password changes only when the current one is given and verified.",
		Tags:        []string{"Settings"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	updated, err := h.ProfileService.UpdateProfile(ctx, caller.ID, caller.Email, service.ProfileChanges{
		Name:            input.Body.Name,
		Phone:           input.Body.Phone,
		CurrentPassword: input.Body.CurrentPassword,
		NewPassword:     input.Body.NewPassword,
	})
	if err != nil {
		return nil, apperr.Response(err)
	}

	return &UpdateProfileOutput{Body: UpdateProfileResponse{
		Message: "Perfil atualizado com sucesso!",
		Data:    profileFromRow(updated),
	}}, nil
}
