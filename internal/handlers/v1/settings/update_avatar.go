package settings

import (
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/session"
)

// AvatarForm is the multipart form of an avatar upload.
type AvatarForm struct {
	Avatar huma.FormFile `form:"avatar" contentType:"image/png,image/jpeg,image/gif,image/webp" doc:"Avatar image"`
}

type UpdateAvatarInput struct {
	RawBody huma.MultipartFormFiles[AvatarForm]
}

type UpdateAvatarResponse struct {
	Avatar string `json:"avatar" doc:"Public URL of the stored avatar"`
}

type UpdateAvatarOutput struct {
	Body UpdateAvatarResponse
}

type avatarUploader interface {
	UpdateAvatar(ctx context.Context, profileID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

// UpdateAvatarHandler handles PUT /atualiza-avatar.
type UpdateAvatarHandler struct {
	ProfileService avatarUploader
	auth           huma.Middlewares
}

func NewUpdateAvatarHandler(svc avatarUploader, auth huma.Middlewares) *UpdateAvatarHandler {
	return &UpdateAvatarHandler{ProfileService: svc, auth: auth}
}

func (h *UpdateAvatarHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-avatar",
		Method:      http.MethodPut,
		Path:        "/atualiza-avatar",
		Summary:     "Upload avatar",
		Description: "Stores the image as the caller's avatar, replacing the previous one.",
		Tags:        []string{"Settings"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *UpdateAvatarHandler) handle(ctx context.Context, input *UpdateAvatarInput) (*UpdateAvatarOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	var (
		body        io.Reader
		filename    string
		contentType string
	)
	if form := input.RawBody.Data(); form != nil && form.Avatar.IsSet {
		defer form.Avatar.Close()
		body = form.Avatar
		filename = form.Avatar.Filename
		contentType = form.Avatar.ContentType

		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("avatarBytes", form.Avatar.Size)
		}
	}

	url, err := h.ProfileService.UpdateAvatar(ctx, caller.ID, filename, contentType, body)
	if err != nil {
		return nil, apperr.Response(err)
	}
	return &UpdateAvatarOutput{Body: UpdateAvatarResponse{Avatar: url}}, nil
}
