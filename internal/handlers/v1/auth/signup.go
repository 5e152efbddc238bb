package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
)

// SignUpBody is the request body for creating an account.
type SignUpBody struct {
	Email    string `json:"email" minLength:"1" doc:"Account email"`
	Password string `json:"password" minLength:"1" doc:"Account password, at least 6 characters"`
	Name     string `json:"nome" minLength:"1" doc:"Display name"`
	Phone    string `json:"tel,omitempty" doc:"Phone number"`
	GroupID  string `json:"grupoId,omitempty" doc:"Existing group UUID to join, a new group is created when empty"`
}

type SignUpInput struct {
	Body SignUpBody
}

// SignUpUser is the created identity.
type SignUpUser struct {
	ID    string `json:"id" doc:"Identity UUID"`
	Email string `json:"email"`
}

// SignUpProfile is the created profile row.
type SignUpProfile struct {
	ID        string `json:"id" doc:"Profile UUID, equal to the identity UUID"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Role      string `json:"role" enum:"admin,member"`
	GroupID   string `json:"grupo_id"`
	GroupName string `json:"nomeGrupo"`
}

// SignUpResponse is the response body for a successful signup.
type SignUpResponse struct {
	Message string        `json:"message"`
	User    SignUpUser    `json:"user"`
	Created SignUpProfile `json:"cadastro"`
}

type SignUpOutput struct {
	Body SignUpResponse
}

type registrar interface {
	SignUp(ctx context.Context, input service.SignUpInput) (*service.SignUpResult, error)
}

// SignUpHandler handles POST /signup.
type SignUpHandler struct {
	AuthService registrar
}

func NewSignUpHandler(svc registrar) *SignUpHandler {
	return &SignUpHandler{AuthService: svc}
}

func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodPost,
		Path:          "/signup",
		Summary:       "Sign up",
		Description:   "Creates an identity and its profile. Without grupoId the user gets a new group and becomes its admin.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	in := service.SignUpInput{
		Email:    input.Body.Email,
		Password: input.Body.Password,
		Name:     input.Body.Name,
		Phone:    input.Body.Phone,
	}
	if input.Body.GroupID != "" {
		groupID, err := uuid.FromString(input.Body.GroupID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid grupoId", err)
		}
		in.GroupID = uuid.NullUUID{UUID: groupID, Valid: true}
	}

	result, err := h.AuthService.SignUp(ctx, in)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("identityID", result.IdentityID.String())
		logData.AddData("joinedGroup", in.GroupID.Valid)
	}

	return &SignUpOutput{Body: SignUpResponse{
		Message: "cadastro efetuado com sucesso",
		User:    SignUpUser{ID: result.IdentityID.String(), Email: result.Email},
		Created: SignUpProfile{
			ID:        result.Profile.ID.String(),
			Name:      result.Profile.Name,
			Email:     result.Profile.Email,
			Phone:     result.Profile.Phone,
			Role:      result.Profile.Role,
			GroupID:   result.Group.ID.String(),
			GroupName: result.Group.Name,
		},
	}}, nil
}
