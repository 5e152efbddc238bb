package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const (
	msgNoToken         = "token não fornecido"
	msgInvalidSession  = "Sessão inválida ou expirada"
	msgProfileNotFound = "Usuário não encontrado"
	msgInternal        = "Erro interno no servidor"
)

// SessionResolver exchanges an access token for the identity it belongs to.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
}

// ProfileFinder loads the profile of an identity together with its group name.
type ProfileFinder interface {
	FindWithGroup(ctx context.Context, id uuid.UUID) (*sqlconfig.ProfileWithGroup, error)
}

// Guard authenticates requests before any operation logic runs.
type Guard struct {
	resolver  SessionResolver
	profiles  ProfileFinder
	transport config.AuthTransport
}

func NewGuard(resolver SessionResolver, profiles ProfileFinder, transport config.AuthTransport) *Guard {
	return &Guard{
		resolver:  resolver,
		profiles:  profiles,
		transport: transport,
	}
}

// Middleware returns the huma middleware attached to every authenticated operation.
// On failure the error body is written and next is never called.
func (g *Guard) Middleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		caller, err := g.authenticate(ctx)
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			appErr := &apperr.Error{}
			if !errors.As(err, &appErr) {
				appErr = apperr.Wrap(apperr.KindInternal, msgInternal, err)
			}
			_ = huma.WriteErr(api, ctx, appErr.HTTPStatus(), appErr.Message, err)
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", caller.ID.String())
			logData.AddData("groupID", caller.GroupID.String())
		}

		next(huma.WithValue(ctx, identityKey{}, caller))
	}
}

// authenticate runs the credential, token and profile steps. A panic in any of them is
// reported as an internal error.
func (g *Guard) authenticate(ctx huma.Context) (caller *Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			caller = nil
			err = apperr.Wrap(apperr.KindInternal, msgInternal, fmt.Errorf("session guard panicked: %v", r))
		}
	}()

	token := g.credential(ctx)
	if token == "" {
		return nil, apperr.Unauthenticated(msgNoToken)
	}

	reqCtx := ctx.Context()
	var identityID uuid.UUID
	err = logging.Timed(reqCtx, "resolveSession", func() error {
		identityID, err = g.resolver.ResolveSession(reqCtx, token)
		return err
	})
	if errors.Is(err, identity.ErrInvalidToken) || (err == nil && identityID == uuid.Nil) {
		return nil, apperr.InvalidSession(msgInvalidSession, err)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, msgInternal, fmt.Errorf("resolve session: %w", err))
	}

	var profile *sqlconfig.ProfileWithGroup
	err = logging.Timed(reqCtx, "findProfile", func() error {
		profile, err = g.profiles.FindWithGroup(reqCtx, identityID)
		return err
	})
	if errors.Is(err, sqlconfig.ErrNotFound) || (err == nil && profile == nil) {
		return nil, apperr.ProfileNotFound(msgProfileNotFound)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, msgInternal, fmt.Errorf("find profile %s: %w", identityID, err))
	}

	return &Identity{
		ID:        identityID,
		Name:      profile.Name,
		GroupID:   profile.GroupID,
		Role:      profile.Role,
		Email:     profile.Email,
		Avatar:    profile.AvatarURL,
		GroupName: profile.GroupName,
	}, nil
}

// credential returns the access token from the configured transports, header first.
func (g *Guard) credential(ctx huma.Context) string {
	if g.transport.AcceptsHeader() {
		scheme, token, found := strings.Cut(strings.TrimSpace(ctx.Header("Authorization")), " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}
	if g.transport.AcceptsCookie() {
		if cookie, err := huma.ReadCookie(ctx, CookieName); err == nil {
			return strings.TrimSpace(cookie.Value)
		}
	}
	return ""
}
