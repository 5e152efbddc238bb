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

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"nomeCategoria" minLength:"1" doc:"Category name"`
	Kind string `json:"tipoCategoria" enum:"income,expense,receita,despesa" doc:"Category kind"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput wraps the created row in a list, the shape clients already read.
type CreateCategoryOutput struct {
	Body []Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, groupID uuid.UUID, name, kind string) (*sqlconfig.Category, error)
}

// CreateCategoryHandler handles POST /add-categoria.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
	auth            huma.Middlewares
}

func NewCreateCategoryHandler(svc categoryCreator, auth huma.Middlewares) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc, auth: auth}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/add-categoria",
		Summary:       "Create category",
		Description:   "Adds a category to the caller's group.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.auth,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	created, err := h.CategoryService.CreateCategory(ctx, caller.GroupID, input.Body.Name, input.Body.Kind)
	if err != nil {
		return nil, apperr.Response(err)
	}

	return &CreateCategoryOutput{Body: fromRows([]*sqlconfig.Category{created})}, nil
}
