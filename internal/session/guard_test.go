package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type whoamiOutput struct {
	Body struct {
		ID        string `json:"id"`
		GroupID   string `json:"groupID"`
		GroupName string `json:"groupName"`
		Role      string `json:"role"`
	}
}

type guardFixture struct {
	api      humatest.TestAPI
	resolver *identity.MockProvider
	profiles *sqlconfig.MockIProfileTable
	reached  *bool
}

func newGuardFixture(t *testing.T, transport config.AuthTransport) guardFixture {
	t.Helper()
	apperr.Install()

	resolver := identity.NewMockProvider(t)
	profiles := sqlconfig.NewMockIProfileTable(t)
	guard := NewGuard(resolver, profiles, transport)
	reached := false

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: huma.Middlewares{guard.Middleware(api)},
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		reached = true
		caller, ok := FromContext(ctx)
		if !ok {
			return nil, errors.New("no identity in context")
		}
		out := &whoamiOutput{}
		out.Body.ID = caller.ID.String()
		out.Body.GroupID = caller.GroupID.String()
		out.Body.GroupName = caller.GroupName
		out.Body.Role = caller.Role
		return out, nil
	})

	return guardFixture{api: api, resolver: resolver, profiles: profiles, reached: &reached}
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload), spew.Sdump(string(body)))
	return payload["error"]
}

func TestGuard_NoCredential(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)

	resp := f.api.Get("/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "token não fornecido", errorMessage(t, resp.Body.Bytes()))
	assert.False(t, *f.reached)
	f.resolver.AssertNotCalled(t, "ResolveSession", mock.Anything, mock.Anything)
}

func TestGuard_MalformedAuthorizationHeader(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)

	for _, header := range []string{"Authorization: abc", "Authorization: Basic abc", "Authorization: Bearer "} {
		resp := f.api.Get("/whoami", header)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, header)
	}
	assert.False(t, *f.reached)
}

func TestGuard_InvalidToken(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	f.resolver.EXPECT().ResolveSession(mock.Anything, "expired").
		Return(uuid.Nil, identity.ErrInvalidToken)

	resp := f.api.Get("/whoami", "Authorization: Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Sessão inválida ou expirada", errorMessage(t, resp.Body.Bytes()))
	assert.False(t, *f.reached)
	f.profiles.AssertNotCalled(t, "FindWithGroup", mock.Anything, mock.Anything)
}

func TestGuard_ResolverReturnsNoIdentity(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	f.resolver.EXPECT().ResolveSession(mock.Anything, "tok").Return(uuid.Nil, nil)

	resp := f.api.Get("/whoami", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.False(t, *f.reached)
}

func TestGuard_ResolverFailureIsInternal(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	f.resolver.EXPECT().ResolveSession(mock.Anything, "tok").
		Return(uuid.Nil, errors.New("connection refused"))

	resp := f.api.Get("/whoami", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Erro interno no servidor", errorMessage(t, resp.Body.Bytes()))
	assert.False(t, *f.reached)
}

func TestGuard_ProfileNotFound(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	id := uuid.Must(uuid.NewV4())
	f.resolver.EXPECT().ResolveSession(mock.Anything, "tok").Return(id, nil)
	f.profiles.EXPECT().FindWithGroup(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	resp := f.api.Get("/whoami", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Usuário não encontrado", errorMessage(t, resp.Body.Bytes()))
	assert.False(t, *f.reached)
}

func TestGuard_ProfileStoreFailureIsInternal(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	id := uuid.Must(uuid.NewV4())
	f.resolver.EXPECT().ResolveSession(mock.Anything, "tok").Return(id, nil)
	f.profiles.EXPECT().FindWithGroup(mock.Anything, id).Return(nil, errors.New("bad connection"))

	resp := f.api.Get("/whoami", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.False(t, *f.reached)
}

func TestGuard_PanicIsInternal(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	f.resolver.EXPECT().ResolveSession(mock.Anything, "tok").
		RunAndReturn(func(context.Context, string) (uuid.UUID, error) {
			panic("provider client not initialised")
		})

	resp := f.api.Get("/whoami", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Erro interno no servidor", errorMessage(t, resp.Body.Bytes()))
	assert.False(t, *f.reached)
}

func TestGuard_AttachesProfile(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportHeader)
	id := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	f.resolver.EXPECT().ResolveSession(mock.Anything, "good").Return(id, nil)
	f.profiles.EXPECT().FindWithGroup(mock.Anything, id).Return(&sqlconfig.ProfileWithGroup{
		Profile:   sqlconfig.Profile{ID: id, Name: "Ana", Role: sqlconfig.RoleAdmin, GroupID: groupID},
		GroupName: "grupo de Ana",
	}, nil)

	resp := f.api.Get("/whoami", "Authorization: bearer good")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, groupID.String(), body["groupID"])
	assert.Equal(t, "grupo de Ana", body["groupName"])
	assert.Equal(t, sqlconfig.RoleAdmin, body["role"])
}

func TestGuard_CookieTransport(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportCookie)
	id := uuid.Must(uuid.NewV4())
	f.resolver.EXPECT().ResolveSession(mock.Anything, "from-cookie").Return(id, nil)
	f.profiles.EXPECT().FindWithGroup(mock.Anything, id).
		Return(&sqlconfig.ProfileWithGroup{Profile: sqlconfig.Profile{ID: id}}, nil)

	// The header is ignored when only the cookie transport is enabled.
	resp := f.api.Get("/whoami", "Authorization: Bearer from-header")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = f.api.Get("/whoami", "Cookie: access_token=from-cookie")
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestGuard_BothTransportsPreferHeader(t *testing.T) {
	f := newGuardFixture(t, config.AuthTransportBoth)
	id := uuid.Must(uuid.NewV4())
	f.resolver.EXPECT().ResolveSession(mock.Anything, "from-header").Return(id, nil)
	f.profiles.EXPECT().FindWithGroup(mock.Anything, id).
		Return(&sqlconfig.ProfileWithGroup{Profile: sqlconfig.Profile{ID: id}}, nil)

	resp := f.api.Get("/whoami", "Authorization: Bearer from-header", "Cookie: access_token=from-cookie")
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	caller := &Identity{ID: uuid.Must(uuid.NewV4())}
	got, ok := FromContext(WithIdentity(context.Background(), caller))
	assert.True(t, ok)
	assert.Equal(t, caller, got)
}
