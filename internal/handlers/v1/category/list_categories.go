package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

type categoryLister interface {
	ListCategories(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.Category, error)
}

// ListCategoriesHandler handles GET /categorias.
type ListCategoriesHandler struct {
	CategoryService categoryLister
	auth            huma.Middlewares
}

func NewListCategoriesHandler(svc categoryLister, auth huma.Middlewares) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc, auth: auth}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categorias",
		Summary:     "List categories",
		Description: "Returns every category of the caller's group.",
		Tags:        []string{"Categories"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	categories, err := h.CategoryService.ListCategories(ctx, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	return &ListCategoriesOutput{Body: fromRows(categories)}, nil
}
