package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Profile is the in-store record of a user, keyed by the identity id.
type Profile struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Role      string    `db:"role"`
	AvatarURL string    `db:"avatar_url"`
	GroupID   uuid.UUID `db:"group_id"`
}

// ProfileWithGroup is a profile joined with the name of its group.
type ProfileWithGroup struct {
	Profile
	GroupName string `db:"group_name"`
}

// ProfileCreate is the input for creating a profile.
type ProfileCreate struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   string
	Role    string
	GroupID uuid.UUID
}

// ProfileUpdate lists the mutable fields; nil fields are left unchanged.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	AvatarURL *string
}

// IsEmpty reports whether the update would change nothing.
func (u *ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.AvatarURL == nil
}

// IProfileTable defines the interface for profile storage operations.
//
//go:generate mockery --name IProfileTable --output mock_IProfileTable.go
type IProfileTable interface {
	FindWithGroup(ctx context.Context, id uuid.UUID) (*ProfileWithGroup, error)
	Insert(ctx context.Context, create *ProfileCreate) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, update *ProfileUpdate) (*Profile, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Profile, error)
}
