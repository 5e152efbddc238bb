package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// CategoryService manages the categories of a group.
type CategoryService struct {
	storage *storage.Storage
}

func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

func (s *CategoryService) ListCategories(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.Category, error) {
	var categories []*sqlconfig.Category
	err := logging.Timed(ctx, "listCategories", func() (err error) {
		categories, err = s.storage.Categories.ListByGroup(ctx, groupID)
		return err
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return categories, nil
}

// CreateCategory adds a category to the group. kind accepts the legacy receita/despesa labels.
func (s *CategoryService) CreateCategory(ctx context.Context, groupID uuid.UUID, name, kind string) (*sqlconfig.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.BadRequest("nomeCategoria é obrigatório")
	}
	parsed, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		Name:    name,
		Kind:    parsed,
		GroupID: groupID,
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return created, nil
}

// DeleteCategory removes a category of the group and returns the deleted rows.
func (s *CategoryService) DeleteCategory(ctx context.Context, groupID, id uuid.UUID) ([]*sqlconfig.Category, error) {
	deleted, err := s.storage.Categories.Delete(ctx, groupID, id)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return deleted, nil
}
