package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

// AccountIdentityProvider checks credentials against registered accounts.
type AccountIdentityProvider struct {
	repo ports.AccountRepository
	now  func() time.Time
}

func NewAccountIdentityProvider(repo ports.AccountRepository) *AccountIdentityProvider {
	return &AccountIdentityProvider{repo: repo, now: time.Now}
}

func (p *AccountIdentityProvider) Signup(ctx context.Context, in ports.SignupInput) (*domain.Identity, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := p.now().UTC()
	created, err := p.repo.Create(ctx, &domain.Account{
		Identity: domain.Identity{
			ID:        fmt.Sprintf("user-%d", now.UnixMilli()),
			Email:     email,
			Name:      in.Name,
			Role:      in.Role,
			CreatedAt: now,
		},
		PasswordHash: string(hash),
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	identity := created.Identity
	return &identity, nil
}

func (p *AccountIdentityProvider) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := account.Identity
	return &identity, nil
}

// JWTIssuer signs HS256 bearer tokens carrying the identity claims.
type JWTIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewJWTIssuer(secret string, tokenTTL time.Duration) *JWTIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &JWTIssuer{secret: secret, tokenTTL: tokenTTL}
}

func (i *JWTIssuer) Issue(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"name":  identity.Name,
		"role":  string(identity.Role),
		"exp":   time.Now().Add(i.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
