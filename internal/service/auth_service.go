package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// AuthService signs users in and up against the identity provider.
type AuthService struct {
	provider  identity.Provider
	processor ActionProcessor
}

func NewAuthService(provider identity.Provider, processor ActionProcessor) *AuthService {
	return &AuthService{provider: provider, processor: processor}
}

// SignUpInput carries the signup form. A nil GroupID creates a new group for the user.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	GroupID  uuid.NullUUID
}

// SignUpResult is the created identity with its group and profile.
type SignUpResult struct {
	IdentityID uuid.UUID
	Email      string
	Group      *sqlconfig.Group
	Profile    *sqlconfig.Profile
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*identity.Session, error) {
	var session *identity.Session
	err := logging.Timed(ctx, "signIn", func() (err error) {
		session, err = s.provider.SignIn(ctx, email, password)
		return err
	})
	if err != nil {
		return nil, providerError(err)
	}
	return session, nil
}

// SignUp creates the identity, then the group and profile in one database transaction.
// When that transaction fails the identity is deleted again.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.BadRequest("nome é obrigatório")
	}

	identityID, err := s.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, providerError(err)
	}

	action := &actions.CreateMembership{
		IdentityID: identityID,
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:      strings.TrimSpace(input.Phone),
		GroupID:    input.GroupID,
	}

	err = logging.Timed(ctx, "createMembership", func() error {
		return s.processor.Process(ctx, action)
	})
	if err != nil {
		if delErr := s.provider.DeleteIdentity(context.WithoutCancel(ctx), identityID); delErr != nil {
			logrus.WithError(delErr).WithField("identityID", identityID.String()).
				Error("AuthService.SignUp.CompensationFailed")
			return nil, apperr.Internal(fmt.Errorf("membership: %w; delete identity: %v", err, delErr))
		}
		return nil, storeError(ctx, err)
	}

	return &SignUpResult{
		IdentityID: identityID,
		Email:      action.Email,
		Group:      action.Group,
		Profile:    action.Profile,
	}, nil
}

// providerError keeps the provider's message for the rejections a client can act on.
func providerError(err error) error {
	for _, known := range []error{
		identity.ErrInvalidCredentials,
		identity.ErrEmailTaken,
		identity.ErrWeakPassword,
		identity.ErrInvalidEmail,
	} {
		if errors.Is(err, known) {
			return apperr.Wrap(apperr.KindBadRequest, known.Error(), err)
		}
	}
	return apperr.Internal(err)
}
