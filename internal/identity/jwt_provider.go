package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const uniqueViolation = "23505"

var _ Provider = (*JWTProvider)(nil)

// Claims are the access token claims. Subject carries the identity id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider keeps bcrypt password hashes in the identities table and issues HS256 tokens.
type JWTProvider struct {
	identities sqlconfig.IIdentityTable
	secretKey  []byte
	tokenTTL   time.Duration
	hashCost   int
	now        func() time.Time
}

func NewJWTProvider(identities sqlconfig.IIdentityTable, secretKey string, tokenTTL time.Duration) *JWTProvider {
	return &JWTProvider{
		identities: identities,
		secretKey:  []byte(secretKey),
		tokenTTL:   tokenTTL,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

func (p *JWTProvider) SignUp(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return uuid.Nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return uuid.Nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.hashCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := p.identities.Insert(ctx, email, string(hash))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, fmt.Errorf("insert identity: %w", err)
	}

	return created.ID, nil
}

func (p *JWTProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	found, err := p.identities.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return p.issue(found)
}

func (p *JWTProvider) ResolveSession(ctx context.Context, token string) (uuid.UUID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(token *jwt.Token) (interface{}, error) {
			return p.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	// A token outlives a deleted identity, so the identity must still exist.
	if _, err := p.identities.FindByID(ctx, id); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%w: identity not found", ErrInvalidToken)
		}
		return uuid.Nil, fmt.Errorf("find identity: %w", err)
	}

	return id, nil
}

func (p *JWTProvider) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return p.identities.UpdatePasswordHash(ctx, id, string(hash))
}

func (p *JWTProvider) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	return p.identities.Delete(ctx, id)
}

func (p *JWTProvider) issue(found *sqlconfig.Identity) (*Session, error) {
	now := p.now()
	expiresAt := now.Add(p.tokenTTL)
	claims := &Claims{
		Email: found.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   found.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secretKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{AccessToken: signed, IdentityID: found.ID, ExpiresAt: expiresAt}, nil
}
