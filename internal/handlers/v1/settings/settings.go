// Package settings serves the profile and group settings screen.
package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// Profile is the API response model for a profile.
type Profile struct {
	ID      string `json:"id" doc:"Profile UUID"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Role    string `json:"perfil" enum:"admin,member"`
	Avatar  string `json:"avatar" doc:"Public avatar URL, empty when unset"`
	GroupID string `json:"grupo_id"`
}

func profileFromRow(row *sqlconfig.Profile) Profile {
	return Profile{
		ID:      row.ID.String(),
		Name:    row.Name,
		Email:   row.Email,
		Phone:   row.Phone,
		Role:    row.Role,
		Avatar:  row.AvatarURL,
		GroupID: row.GroupID.String(),
	}
}

// Member is a fellow member of the caller's group.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// SettingsCategory is a category of the caller's group as listed on the settings screen.
type SettingsCategory struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Kind string `json:"tipo" enum:"income,expense"`
}

// SettingsResponse prefills the settings screen.
type SettingsResponse struct {
	Name       string             `json:"nome"`
	Email      string             `json:"email"`
	Phone      string             `json:"telefone"`
	GroupName  string             `json:"nomeGrupo"`
	Categories []SettingsCategory `json:"categorias"`
	Members    []Member           `json:"membros"`
	Avatar     string             `json:"avatar"`
	GroupID    string             `json:"grupo_id"`
}

type SettingsOutput struct {
	Body SettingsResponse
}

type settingsReader interface {
	Settings(ctx context.Context, profileID, groupID uuid.UUID) (*service.Settings, error)
}

// SettingsHandler handles GET /atualizar-dados.
type SettingsHandler struct {
	ProfileService settingsReader
	auth           huma.Middlewares
}

func NewSettingsHandler(svc settingsReader, auth huma.Middlewares) *SettingsHandler {
	return &SettingsHandler{ProfileService: svc, auth: auth}
}

func (h *SettingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/atualizar-dados",
		Summary:     "Get settings",
		Description: "Returns the caller's profile together with the group's categories and members.",
		Tags:        []string{"Settings"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *SettingsHandler) handle(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	settings, err := h.ProfileService.Settings(ctx, caller.ID, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("memberCount", len(settings.Members))
	}

	p := settings.Profile
	resp := SettingsResponse{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		GroupName:  p.GroupName,
		Categories: make([]SettingsCategory, len(settings.Categories)),
		Members:    make([]Member, len(settings.Members)),
		Avatar:     p.AvatarURL,
		GroupID:    p.GroupID.String(),
	}
	for i, c := range settings.Categories {
		resp.Categories[i] = SettingsCategory{ID: c.ID.String(), Name: c.Name, Kind: string(c.Kind)}
	}
	for i, m := range settings.Members {
		resp.Members[i] = Member{ID: m.ID.String(), Name: m.Name, Email: m.Email, Avatar: m.AvatarURL}
	}
	return &SettingsOutput{Body: resp}, nil
}
