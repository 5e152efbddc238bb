package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// CreateMembership creates the profile of a freshly signed-up identity. Without a GroupID
// a new group is created and the profile becomes its admin; otherwise the profile joins
// the existing group as a member.
type CreateMembership struct {
	IdentityID uuid.UUID
	Name       string
	Email      string
	Phone      string
	GroupID    uuid.NullUUID

	// Set by Perform.
	Group   *sqlconfig.Group
	Profile *sqlconfig.Profile

	IAction
}

func (c *CreateMembership) Perform(ctx context.Context, writer *storage.Writer) error {
	var err error
	role := sqlconfig.RoleMember

	if c.GroupID.Valid {
		c.Group, err = writer.Groups.FindByID(ctx, c.GroupID.UUID)
		if err != nil {
			return fmt.Errorf("find group %s: %w", c.GroupID.UUID, err)
		}
	} else {
		c.Group, err = writer.Groups.Insert(ctx, &sqlconfig.GroupCreate{
			Name:      DefaultGroupName(c.Name),
			CreatedBy: c.IdentityID,
		})
		if err != nil {
			return fmt.Errorf("insert group: %w", err)
		}
		role = sqlconfig.RoleAdmin
	}

	c.Profile, err = writer.Profiles.Insert(ctx, &sqlconfig.ProfileCreate{
		ID:      c.IdentityID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Role:    role,
		GroupID: c.Group.ID,
	})
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

// DefaultGroupName names the group created for a user who signs up alone.
func DefaultGroupName(userName string) string {
	return "grupo de " + userName
}
