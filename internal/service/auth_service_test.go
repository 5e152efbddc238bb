package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func newTestAuthService(t *testing.T) (*AuthService, *identity.MockProvider, *tables, *inlineProcessor) {
	t.Helper()
	m, _, writer := newTables(t)
	provider := identity.NewMockProvider(t)
	processor := &inlineProcessor{writer: writer}
	return NewAuthService(provider, processor), provider, m, processor
}

func TestLogin(t *testing.T) {
	svc, provider, _, _ := newTestAuthService(t)
	session := &identity.Session{AccessToken: "tok", IdentityID: newID(), ExpiresAt: may10.Add(time.Hour)}
	provider.EXPECT().SignIn(mock.Anything, "ana@example.com", "segredo1").Return(session, nil)

	got, err := svc.Login(context.Background(), "ana@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, provider, _, _ := newTestAuthService(t)
	provider.EXPECT().SignIn(mock.Anything, mock.Anything, mock.Anything).Return(nil, identity.ErrInvalidCredentials)

	_, err := svc.Login(context.Background(), "ana@example.com", "errada")

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Invalid login credentials", appErr.Message)
}

func TestLogin_ProviderOutage(t *testing.T) {
	svc, provider, _, _ := newTestAuthService(t)
	provider.EXPECT().SignIn(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: i/o timeout"))

	_, err := svc.Login(context.Background(), "ana@example.com", "segredo1")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestSignUp_WithoutGroupCreatesOne(t *testing.T) {
	svc, provider, m, _ := newTestAuthService(t)
	identityID := newID()
	groupID := newID()

	provider.EXPECT().SignUp(mock.Anything, "Ana@Example.com", "segredo1").Return(identityID, nil)
	m.groups.EXPECT().Insert(mock.Anything, &sqlconfig.GroupCreate{Name: "grupo de Ana", CreatedBy: identityID}).
		Return(&sqlconfig.Group{ID: groupID, Name: "grupo de Ana", CreatedBy: identityID}, nil)
	m.profiles.EXPECT().Insert(mock.Anything, &sqlconfig.ProfileCreate{
		ID:      identityID,
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "11988887777",
		Role:    sqlconfig.RoleAdmin,
		GroupID: groupID,
	}).Return(&sqlconfig.Profile{ID: identityID, GroupID: groupID, Role: sqlconfig.RoleAdmin}, nil)

	result, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "Ana@Example.com",
		Password: "segredo1",
		Name:     "Ana",
		Phone:    " 11988887777 ",
	})

	require.NoError(t, err)
	assert.Equal(t, identityID, result.IdentityID)
	assert.Equal(t, groupID, result.Group.ID)
	assert.Equal(t, groupID, result.Profile.GroupID)
}

func TestSignUp_WithGroupJoinsIt(t *testing.T) {
	svc, provider, m, _ := newTestAuthService(t)
	identityID := newID()
	groupID := newID()

	provider.EXPECT().SignUp(mock.Anything, mock.Anything, mock.Anything).Return(identityID, nil)
	m.groups.EXPECT().FindByID(mock.Anything, groupID).Return(&sqlconfig.Group{ID: groupID}, nil)
	m.profiles.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ProfileCreate) bool {
		return c.GroupID == groupID && c.Role == sqlconfig.RoleMember
	})).Return(&sqlconfig.Profile{ID: identityID, GroupID: groupID}, nil)

	result, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "bia@example.com",
		Password: "segredo1",
		Name:     "Bia",
		GroupID:  uuid.NullUUID{UUID: groupID, Valid: true},
	})

	require.NoError(t, err)
	assert.Equal(t, groupID, result.Profile.GroupID)
	m.groups.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSignUp_ProviderRejection(t *testing.T) {
	svc, provider, _, processor := newTestAuthService(t)
	provider.EXPECT().SignUp(mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, identity.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "ana@example.com", Password: "segredo1", Name: "Ana"})

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Equal(t, 0, processor.calls)
}

func TestSignUp_MembershipFailureDeletesIdentity(t *testing.T) {
	svc, provider, _, processor := newTestAuthService(t)
	identityID := newID()
	processor.err = fmt.Errorf("insert profile: %w", errors.New(`duplicate key value violates unique constraint "profiles_pkey"`))

	provider.EXPECT().SignUp(mock.Anything, mock.Anything, mock.Anything).Return(identityID, nil)
	provider.EXPECT().DeleteIdentity(mock.Anything, identityID).Return(nil).Once()

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "ana@example.com", Password: "segredo1", Name: "Ana"})

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindStore, appErr.Kind)
	assert.Equal(t, `duplicate key value violates unique constraint "profiles_pkey"`, appErr.Message)
}

func TestSignUp_CompensationFailure(t *testing.T) {
	svc, provider, _, processor := newTestAuthService(t)
	identityID := newID()
	processor.err = errors.New("insert group: connection reset")

	provider.EXPECT().SignUp(mock.Anything, mock.Anything, mock.Anything).Return(identityID, nil)
	provider.EXPECT().DeleteIdentity(mock.Anything, identityID).Return(errors.New("connection reset"))

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "ana@example.com", Password: "segredo1", Name: "Ana"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestSignUp_RequiresName(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "ana@example.com", Password: "segredo1"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}
