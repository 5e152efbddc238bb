package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func TestCreateMembership_NewGroupMakesAdmin(t *testing.T) {
	groups := sqlconfig.NewMockIGroupTable(t)
	profiles := sqlconfig.NewMockIProfileTable(t)
	writer := &storage.Writer{Groups: groups, Profiles: profiles}
	identityID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())

	groups.EXPECT().Insert(mock.Anything, &sqlconfig.GroupCreate{Name: "grupo de Ana", CreatedBy: identityID}).
		Return(&sqlconfig.Group{ID: groupID, Name: "grupo de Ana"}, nil)
	profiles.EXPECT().Insert(mock.Anything, &sqlconfig.ProfileCreate{
		ID:      identityID,
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "11999990000",
		Role:    sqlconfig.RoleAdmin,
		GroupID: groupID,
	}).Return(&sqlconfig.Profile{ID: identityID, GroupID: groupID, Role: sqlconfig.RoleAdmin}, nil)

	action := &CreateMembership{IdentityID: identityID, Name: "Ana", Email: "ana@example.com", Phone: "11999990000"}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, groupID, action.Group.ID)
	assert.Equal(t, sqlconfig.RoleAdmin, action.Profile.Role)
}

func TestCreateMembership_ExistingGroupMakesMember(t *testing.T) {
	groups := sqlconfig.NewMockIGroupTable(t)
	profiles := sqlconfig.NewMockIProfileTable(t)
	writer := &storage.Writer{Groups: groups, Profiles: profiles}
	groupID := uuid.Must(uuid.NewV4())

	groups.EXPECT().FindByID(mock.Anything, groupID).Return(&sqlconfig.Group{ID: groupID}, nil)
	profiles.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ProfileCreate) bool {
		return c.Role == sqlconfig.RoleMember && c.GroupID == groupID
	})).Return(&sqlconfig.Profile{GroupID: groupID, Role: sqlconfig.RoleMember}, nil)

	action := &CreateMembership{
		IdentityID: uuid.Must(uuid.NewV4()),
		Name:       "Bia",
		GroupID:    uuid.NullUUID{UUID: groupID, Valid: true},
	}
	require.NoError(t, action.Perform(context.Background(), writer))
	groups.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateMembership_UnknownGroup(t *testing.T) {
	groups := sqlconfig.NewMockIGroupTable(t)
	profiles := sqlconfig.NewMockIProfileTable(t)
	writer := &storage.Writer{Groups: groups, Profiles: profiles}
	groupID := uuid.Must(uuid.NewV4())

	groups.EXPECT().FindByID(mock.Anything, groupID).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateMembership{GroupID: uuid.NullUUID{UUID: groupID, Valid: true}}
	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	profiles.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateMembership_ProfileFailure(t *testing.T) {
	groups := sqlconfig.NewMockIGroupTable(t)
	profiles := sqlconfig.NewMockIProfileTable(t)
	writer := &storage.Writer{Groups: groups, Profiles: profiles}

	groups.EXPECT().Insert(mock.Anything, mock.Anything).Return(&sqlconfig.Group{ID: uuid.Must(uuid.NewV4())}, nil)
	profiles.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

	action := &CreateMembership{IdentityID: uuid.Must(uuid.NewV4()), Name: "Caio"}
	assert.Error(t, action.Perform(context.Background(), writer))
}
