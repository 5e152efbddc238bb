package service

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/blob"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const msgAvatarFailed = "Erro ao atualizar avatar"

// ProfileService backs the settings screen: profile, avatar, group name and password.
type ProfileService struct {
	storage  *storage.Storage
	provider identity.Provider
	blobs    blob.Store
}

func NewProfileService(store *storage.Storage, provider identity.Provider, blobs blob.Store) *ProfileService {
	return &ProfileService{storage: store, provider: provider, blobs: blobs}
}

// Settings is everything the settings screen is prefilled with.
type Settings struct {
	Profile    *sqlconfig.ProfileWithGroup
	Categories []*sqlconfig.Category
	Members    []*sqlconfig.Profile
}

// ProfileChanges lists the requested changes. Blank values are ignored; the password is
// only changed when both the current and the new one are given.
type ProfileChanges struct {
	Name            string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

func (s *ProfileService) Settings(ctx context.Context, profileID, groupID uuid.UUID) (*Settings, error) {
	profile, err := s.storage.Profiles.FindWithGroup(ctx, profileID)
	if err != nil {
		return nil, storeError(ctx, err)
	}

	members, err := s.storage.Profiles.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(ctx, err)
	}

	categories, err := s.storage.Categories.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(ctx, err)
	}

	return &Settings{Profile: profile, Categories: categories, Members: members}, nil
}

// UpdateProfile applies changes for the caller identified by profileID and email.
func (s *ProfileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, email string, changes ProfileChanges) (*sqlconfig.Profile, error) {
	update := &sqlconfig.ProfileUpdate{}
	if name := strings.TrimSpace(changes.Name); name != "" {
		update.Name = &name
	}
	if phone := strings.TrimSpace(changes.Phone); phone != "" {
		update.Phone = &phone
	}

	if changes.CurrentPassword != "" && changes.NewPassword != "" {
		err := logging.Timed(ctx, "changePassword", func() error {
			if _, err := s.provider.SignIn(ctx, email, changes.CurrentPassword); err != nil {
				return err
			}
			return s.provider.UpdatePassword(ctx, profileID, changes.NewPassword)
		})
		if err != nil {
			return nil, providerError(err)
		}
	}

	if update.IsEmpty() {
		current, err := s.storage.Profiles.FindWithGroup(ctx, profileID)
		if err != nil {
			return nil, storeError(ctx, err)
		}
		return &current.Profile, nil
	}

	updated, err := s.storage.Profiles.Update(ctx, profileID, update)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return updated, nil
}

// UpdateAvatar stores the image under the profile's avatar key, replacing the previous one,
// and saves its public URL on the profile.
func (s *ProfileService) UpdateAvatar(ctx context.Context, profileID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if body == nil {
		return "", apperr.Upload("Nenhum arquivo enviado", http.StatusBadRequest, nil)
	}

	key := blob.AvatarKey(profileID, filename, contentType)
	var url string
	err := logging.Timed(ctx, "uploadAvatar", func() (err error) {
		url, err = s.blobs.Put(ctx, key, contentType, body)
		return err
	})
	if err != nil {
		return "", apperr.Upload(msgAvatarFailed, http.StatusInternalServerError, err)
	}

	if _, err := s.storage.Profiles.Update(ctx, profileID, &sqlconfig.ProfileUpdate{AvatarURL: &url}); err != nil {
		return "", apperr.Upload(msgAvatarFailed, http.StatusInternalServerError, err)
	}
	return url, nil
}

// RenameGroup changes the display name of the caller's group.
func (s *ProfileService) RenameGroup(ctx context.Context, groupID uuid.UUID, name string) (*sqlconfig.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.BadRequest("nomeGrupo é obrigatório")
	}
	group, err := s.storage.Groups.Rename(ctx, groupID, name)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return group, nil
}
