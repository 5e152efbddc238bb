package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*identity.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*identity.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) SignUp(ctx context.Context, input service.SignUpInput) (*service.SignUpResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*service.SignUpResult)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAuthService, cookies CookieSettings) humatest.TestAPI {
	t.Helper()
	apperr.Install()
	_, api := humatest.New(t)
	NewLoginHandler(svc, cookies).Register(api)
	NewLogoutHandler(cookies).Register(api)
	NewSignUpHandler(svc).Register(api)
	return api
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHTTP_Login_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ana@example.com", "secret1").Return(&identity.Session{
		AccessToken: "tok",
		IdentityID:  id,
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil)

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/login", map[string]any{
		"email":    "ana@example.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	body := decode[LoginResponse](t, resp.Body.Bytes())
	assert.Equal(t, LoginResponse{Token: "tok", UserID: id.String()}, body)
	assert.NotContains(t, resp.Header().Get("Set-Cookie"), session.CookieName)
}

func TestHTTP_Login_SetsCookieWhenEnabled(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ana@example.com", "secret1").Return(&identity.Session{
		AccessToken: "tok",
		IdentityID:  uuid.Must(uuid.NewV4()),
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil)

	resp := newTestAPI(t, svc, CookieSettings{Enabled: true, Secure: true}).Post("/login", map[string]any{
		"email":    "ana@example.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestHTTP_Login_ProviderRejection(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ana@example.com", "wrong").
		Return(nil, apperr.Wrap(apperr.KindBadRequest, identity.ErrInvalidCredentials.Error(), identity.ErrInvalidCredentials))

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/login", map[string]any{
		"email":    "ana@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decode[struct {
		Error string `json:"error"`
	}](t, resp.Body.Bytes())
	assert.Equal(t, "Invalid login credentials", body.Error)
}

func TestHTTP_Logout_ClearsCookie(t *testing.T) {
	resp := newTestAPI(t, new(mockAuthService), CookieSettings{Enabled: true}).Post("/logout")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Logout feito", decode[LogoutResponse](t, resp.Body.Bytes()).Message)
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHTTP_SignUp_NewGroup(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	group := &sqlconfig.Group{ID: uuid.Must(uuid.NewV4()), Name: "grupo de Ana", CreatedBy: id}

	svc := new(mockAuthService)
	svc.On("SignUp", mock.Anything, service.SignUpInput{
		Email:    "ana@example.com",
		Password: "secret1",
		Name:     "Ana",
		Phone:    "1199999",
	}).Return(&service.SignUpResult{
		IdentityID: id,
		Email:      "ana@example.com",
		Group:      group,
		Profile: &sqlconfig.Profile{
			ID:      id,
			Name:    "Ana",
			Email:   "ana@example.com",
			Phone:   "1199999",
			Role:    sqlconfig.RoleAdmin,
			GroupID: group.ID,
		},
	}, nil)

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/signup", map[string]any{
		"email":    "ana@example.com",
		"password": "secret1",
		"nome":     "Ana",
		"tel":      "1199999",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	body := decode[SignUpResponse](t, resp.Body.Bytes())
	assert.Equal(t, "cadastro efetuado com sucesso", body.Message)
	assert.Equal(t, id.String(), body.User.ID)
	assert.Equal(t, "admin", body.Created.Role)
	assert.Equal(t, "grupo de Ana", body.Created.GroupName)
	svc.AssertExpectations(t)
}

func TestHTTP_SignUp_JoinGroup(t *testing.T) {
	groupID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	svc := new(mockAuthService)
	svc.On("SignUp", mock.Anything, mock.MatchedBy(func(in service.SignUpInput) bool {
		return in.GroupID.Valid && in.GroupID.UUID == groupID
	})).Return(&service.SignUpResult{
		IdentityID: id,
		Email:      "bia@example.com",
		Group:      &sqlconfig.Group{ID: groupID, Name: "Casa"},
		Profile:    &sqlconfig.Profile{ID: id, Name: "Bia", Role: sqlconfig.RoleMember, GroupID: groupID},
	}, nil)

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/signup", map[string]any{
		"email":    "bia@example.com",
		"password": "secret1",
		"nome":     "Bia",
		"grupoId":  groupID.String(),
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	body := decode[SignUpResponse](t, resp.Body.Bytes())
	assert.Equal(t, "member", body.Created.Role)
	assert.Equal(t, groupID.String(), body.Created.GroupID)
}

func TestHTTP_SignUp_InvalidGroupID(t *testing.T) {
	svc := new(mockAuthService)

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/signup", map[string]any{
		"email":    "bia@example.com",
		"password": "secret1",
		"nome":     "Bia",
		"grupoId":  "casa",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "SignUp")
}

func TestHTTP_SignUp_EmailTaken(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("SignUp", mock.Anything, mock.Anything).
		Return(nil, apperr.Wrap(apperr.KindBadRequest, identity.ErrEmailTaken.Error(), identity.ErrEmailTaken))

	resp := newTestAPI(t, svc, CookieSettings{}).Post("/signup", map[string]any{
		"email":    "ana@example.com",
		"password": "secret1",
		"nome":     "Ana",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "User already registered")
}

func TestHTTP_Session(t *testing.T) {
	caller := &session.Identity{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Ana",
		GroupID:   uuid.Must(uuid.NewV4()),
		Role:      sqlconfig.RoleAdmin,
		Avatar:    "https://cdn.example/avatars/a.png",
		GroupName: "Casa",
	}
	_, api := humatest.New(t)
	NewSessionHandler(huma.Middlewares{func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, session.WithIdentity(ctx.Context(), caller)))
	}}).Register(api)

	resp := api.Get("/session")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, SessionResponse{
		Name:      "Ana",
		Message:   "sessao Valida",
		GroupID:   caller.GroupID.String(),
		Role:      "admin",
		Avatar:    "https://cdn.example/avatars/a.png",
		GroupName: "Casa",
	}, decode[SessionResponse](t, resp.Body.Bytes()))
}
