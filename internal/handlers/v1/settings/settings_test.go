package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) Settings(ctx context.Context, profileID, groupID uuid.UUID) (*service.Settings, error) {
	args := m.Called(ctx, profileID, groupID)
	s, _ := args.Get(0).(*service.Settings)
	return s, args.Error(1)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, email string, changes service.ProfileChanges) (*sqlconfig.Profile, error) {
	args := m.Called(ctx, profileID, email, changes)
	p, _ := args.Get(0).(*sqlconfig.Profile)
	return p, args.Error(1)
}

// UpdateAvatar reads the body so tests can assert on the uploaded bytes.
func (m *mockProfileService) UpdateAvatar(ctx context.Context, profileID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	var content []byte
	if body != nil {
		content, _ = io.ReadAll(body)
	}
	args := m.Called(ctx, profileID, filename, contentType, string(content))
	return args.String(0), args.Error(1)
}

func (m *mockProfileService) RenameGroup(ctx context.Context, groupID uuid.UUID, name string) (*sqlconfig.Group, error) {
	args := m.Called(ctx, groupID, name)
	g, _ := args.Get(0).(*sqlconfig.Group)
	return g, args.Error(1)
}

var caller = &session.Identity{
	ID:      uuid.Must(uuid.NewV4()),
	Name:    "Ana",
	GroupID: uuid.Must(uuid.NewV4()),
	Role:    sqlconfig.RoleAdmin,
	Email:   "ana@example.com",
}

func newTestAPI(t *testing.T, svc *mockProfileService) humatest.TestAPI {
	t.Helper()
	apperr.Install()
	_, api := humatest.New(t)
	auth := huma.Middlewares{func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, session.WithIdentity(ctx.Context(), caller)))
	}}
	NewSettingsHandler(svc, auth).Register(api)
	NewUpdateProfileHandler(svc, auth).Register(api)
	NewUpdateAvatarHandler(svc, auth).Register(api)
	NewRenameGroupHandler(svc, auth).Register(api)
	return api
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error
}

// avatarForm builds a multipart body with one file part named field.
func avatarForm(t *testing.T, field, filename, contentType string, content []byte) (string, io.Reader) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return "Content-Type: " + w.FormDataContentType(), &buf
}

func TestHTTP_Settings(t *testing.T) {
	memberID := uuid.Must(uuid.NewV4())
	svc := new(mockProfileService)
	svc.On("Settings", mock.Anything, caller.ID, caller.GroupID).Return(&service.Settings{
		Profile: &sqlconfig.ProfileWithGroup{
			Profile: sqlconfig.Profile{
				ID:        caller.ID,
				Name:      "Ana",
				Email:     "ana@example.com",
				Phone:     "1199999",
				AvatarURL: "https://cdn.example/avatars/ana.png",
				GroupID:   caller.GroupID,
			},
			GroupName: "Casa",
		},
		Categories: []*sqlconfig.Category{
			{ID: uuid.Must(uuid.NewV4()), Name: "Food", Kind: sqlconfig.CategoryKindExpense, GroupID: caller.GroupID},
		},
		Members: []*sqlconfig.Profile{
			{ID: caller.ID, Name: "Ana", Email: "ana@example.com"},
			{ID: memberID, Name: "Bia", Email: "bia@example.com", AvatarURL: "https://cdn.example/avatars/bia.png"},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/atualizar-dados")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body SettingsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Ana", body.Name)
	assert.Equal(t, "1199999", body.Phone)
	assert.Equal(t, "Casa", body.GroupName)
	assert.Equal(t, caller.GroupID.String(), body.GroupID)
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "expense", body.Categories[0].Kind)
	require.Len(t, body.Members, 2)
	assert.Equal(t, Member{
		ID:     memberID.String(),
		Name:   "Bia",
		Email:  "bia@example.com",
		Avatar: "https://cdn.example/avatars/bia.png",
	}, body.Members[1])
}

func TestHTTP_Settings_ProfileMissing(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("Settings", mock.Anything, caller.ID, caller.GroupID).Return(nil, apperr.Store(errors.New("not found")))

	resp := newTestAPI(t, svc).Get("/atualizar-dados")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_UpdateProfile(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("UpdateProfile", mock.Anything, caller.ID, caller.Email, service.ProfileChanges{
		Name:            "Ana Maria",
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	}).Return(&sqlconfig.Profile{ID: caller.ID, Name: "Ana Maria", Role: sqlconfig.RoleAdmin, GroupID: caller.GroupID}, nil)

	resp := newTestAPI(t, svc).Put("/atualizar-perfil", map[string]any{
		"nome":      "Ana Maria",
		"senha":     "secret1",
		"novaSenha": "secret2",
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body UpdateProfileResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Perfil atualizado com sucesso!", body.Message)
	assert.Equal(t, "Ana Maria", body.Data.Name)
	assert.Equal(t, "admin", body.Data.Role)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateProfile_WrongPassword(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("UpdateProfile", mock.Anything, caller.ID, caller.Email, mock.Anything).
		Return(nil, apperr.BadRequest("Invalid login credentials"))

	resp := newTestAPI(t, svc).Put("/atualizar-perfil", map[string]any{
		"senha":     "wrong",
		"novaSenha": "secret2",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid login credentials", errorMessage(t, resp.Body.Bytes()))
}

func TestHTTP_UpdateAvatar(t *testing.T) {
	svc := new(mockProfileService)
	url := "http://localhost:9446/blobs/avatars/" + caller.ID.String() + ".png"
	svc.On("UpdateAvatar", mock.Anything, caller.ID, "me.png", "image/png", "png-bytes").Return(url, nil)

	header, body := avatarForm(t, "avatar", "me.png", "image/png", []byte("png-bytes"))
	resp := newTestAPI(t, svc).Put("/atualiza-avatar", header, body)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var out UpdateAvatarResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, url, out.Avatar)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateAvatar_NoFile(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("UpdateAvatar", mock.Anything, caller.ID, "", "", "").
		Return("", apperr.Upload("Nenhum arquivo enviado", http.StatusBadRequest, nil))

	header, body := avatarForm(t, "other", "me.png", "image/png", []byte("png-bytes"))
	resp := newTestAPI(t, svc).Put("/atualiza-avatar", header, body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Nenhum arquivo enviado", errorMessage(t, resp.Body.Bytes()))
}

func TestHTTP_UpdateAvatar_StorageFailure(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("UpdateAvatar", mock.Anything, caller.ID, "me.jpg", "image/jpeg", "jpg").
		Return("", apperr.Upload("Erro ao atualizar avatar", http.StatusInternalServerError, errors.New("bucket unavailable")))

	header, body := avatarForm(t, "avatar", "me.jpg", "image/jpeg", []byte("jpg"))
	resp := newTestAPI(t, svc).Put("/atualiza-avatar", header, body)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Erro ao atualizar avatar", errorMessage(t, resp.Body.Bytes()))
}

func TestHTTP_RenameGroup(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := new(mockProfileService)
	svc.On("RenameGroup", mock.Anything, caller.GroupID, "Casa Nova").Return(&sqlconfig.Group{
		ID:        caller.GroupID,
		Name:      "Casa Nova",
		CreatedBy: caller.ID,
		CreatedAt: created,
	}, nil)

	resp := newTestAPI(t, svc).Put("/atualizar-grupo", map[string]any{"nomeGrupo": "Casa Nova"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body Group
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, Group{
		ID:        caller.GroupID.String(),
		Name:      "Casa Nova",
		CreatedBy: caller.ID.String(),
		CreatedAt: "2025-01-02T03:04:05Z",
	}, body)
}

func TestHTTP_RenameGroup_EmptyName(t *testing.T) {
	svc := new(mockProfileService)

	resp := newTestAPI(t, svc).Put("/atualizar-grupo", map[string]any{"nomeGrupo": ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "RenameGroup")
}
