package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// IdentityService handles accounts and credentials. Uniqueness of email
// and username is enforced by the store's constraints; the repository
// translates violations into domain.ErrEmailTaken / domain.ErrUsernameTaken.
type IdentityService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenProvider
	publisher ports.EventPublisher
}

func NewIdentityService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
	publisher ports.EventPublisher,
) *IdentityService {
	return &IdentityService{users: users, hasher: hasher, tokens: tokens, publisher: publisher}
}

func (s *IdentityService) Register(ctx context.Context, cmd ports.RegisterCmd) (*ports.AuthResponse, error) {
	if len(cmd.Password) < 8 {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := domain.NewUser(cmd.Email, cmd.Username, cmd.DisplayName, hash)
	if err != nil {
		return nil, err
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		// The account exists; the caller can still sign in.
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.publisher.PublishUserRegistered(ctx, user.ID, user.Email); err != nil {
		slog.Error("failed to publish user.registered", "user_id", user.ID, "error", err)
	}

	return &ports.AuthResponse{User: user, AccessToken: token, ExpiresIn: s.tokens.TTL()}, nil
}

func (s *IdentityService) Login(ctx context.Context, cmd ports.LoginCmd) (*ports.AuthResponse, error) {
	// A generic failure either way; callers learn nothing about which part
	// was wrong.
	user, err := s.users.UserByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, cmd.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &ports.AuthResponse{User: user, AccessToken: token, ExpiresIn: s.tokens.TTL()}, nil
}

func (s *IdentityService) ValidateToken(ctx context.Context, token string) (string, error) {
	return s.tokens.Validate(token)
}

func (s *IdentityService) UpdateProfile(ctx context.Context, cmd ports.UpdateProfileCmd) (*domain.User, error) {
	user, err := s.users.UserByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	updated := false
	if cmd.DisplayName != nil {
		if err := user.SetDisplayName(*cmd.DisplayName); err != nil {
			return nil, err
		}
		updated = true
	}
	if cmd.Bio != nil {
		if err := user.SetBio(*cmd.Bio); err != nil {
			return nil, err
		}
		updated = true
	}
	if cmd.Avatar != nil {
		if err := user.SetAvatar(*cmd.Avatar); err != nil {
			return nil, err
		}
		updated = true
	}

	if updated {
		if err := s.users.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *IdentityService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.UserByID(ctx, userID)
}
