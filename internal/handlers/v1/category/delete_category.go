package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type DeleteCategoryBody struct {
	ID string `json:"id" format:"uuid" doc:"Category UUID"`
}

type DeleteCategoryInput struct {
	Body DeleteCategoryBody
}

// DeleteCategoryOutput returns the deleted rows, empty when nothing matched.
type DeleteCategoryOutput struct {
	Body []Category
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, groupID, id uuid.UUID) ([]*sqlconfig.Category, error)
}

// DeleteCategoryHandler handles DELETE /del-categoria.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
	auth            huma.Middlewares
}

func NewDeleteCategoryHandler(svc categoryDeleter, auth huma.Middlewares) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc, auth: auth}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/del-categoria",
		Summary:     "Delete category",
		Description: "Deletes a category of the caller's group. Its transactions become uncategorized.",
		Tags:        []string{"Categories"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	id, err := uuid.FromString(input.Body.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	deleted, err := h.CategoryService.DeleteCategory(ctx, caller.GroupID, id)
	if err != nil {
		return nil, apperr.Response(err)
	}
	return &DeleteCategoryOutput{Body: fromRows(deleted)}, nil
}
