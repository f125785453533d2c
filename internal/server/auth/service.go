// Package auth implements the session lifecycle: registration, login and
// access/refresh token issuance and rotation. Every operation is a
// stateless transaction against the credential store and the ledger.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

// Service orchestrates registration and login against the credential store
// and delegates token work to the TokenIssuer.
type Service struct {
	users  storage.UserStorage
	issuer *TokenIssuer
}

// NewService creates a new session service.
func NewService(users storage.UserStorage, issuer *TokenIssuer) *Service {
	return &Service{
		users:  users,
		issuer: issuer,
	}
}

// Register creates the account, its passenger/driver linked rows and the
// default role, then issues the first token pair. The linked-row step is
// compensated: if it fails, the freshly created account is deleted again
// so no partial registration persists.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return failure(MsgUserAlreadyExists), nil
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}

	var reasons []string
	if err := validation.ValidatePassword(req.Password); err != nil {
		reasons = append(reasons, err.Error())
	}
	if err := validation.ValidateFullName(req.FullName); err != nil {
		reasons = append(reasons, err.Error())
	}
	dob, err := validation.ParseDateOfBirth(req.DateOfBirth, time.Now())
	if err != nil {
		reasons = append(reasons, err.Error())
	}
	if len(reasons) > 0 {
		return failure(strings.Join(reasons, ", ")), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		DateOfBirth:  dob,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// A concurrent registration may win the unique constraint
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return failure(MsgUserAlreadyExists), nil
		}
		return nil, err
	}

	if err := s.users.CreateLinkedProfiles(ctx, user.ID); err != nil {
		// Not a database transaction: compensate by deleting the account
		_ = s.users.DeleteUser(ctx, user.ID)
		return failure(MsgLinkedProfilesFailed), nil
	}

	if err := s.users.AddUserRole(ctx, user.ID, models.RoleUser); err != nil {
		return nil, err
	}

	return s.issuer.Issue(ctx, user)
}

// Login verifies the credentials and issues a new token pair. A missing
// account and a wrong password produce the identical message.
func (s *Service) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return failure(MsgInvalidCredentials), nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return failure(MsgInvalidCredentials), nil
	}

	return s.issuer.Issue(ctx, user)
}

// Refresh rotates a token pair.
func (s *Service) Refresh(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error) {
	return s.issuer.Refresh(ctx, req.Token, req.RefreshToken)
}
