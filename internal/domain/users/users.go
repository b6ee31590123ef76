// Package users implements team management: the console user directory,
// login checks, invitations, and role changes.
package users

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/sanitize"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// BcryptCost is the cost factor for the bootstrap admin password hash.
const BcryptCost = 12

// Statuses a console account can be in.
const (
	StatusActive    = "active"
	StatusInvited   = "invited"
	StatusSuspended = "suspended"
)

// User is a console account. PasswordHash is only set for accounts with a
// real credential (the bootstrap admin); demo accounts authenticate by
// email alone, matching the original mock login.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         auth.Role  `json:"role"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	Status       string     `json:"status"`
	LastActive   *time.Time `json:"lastActive,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	PasswordHash string     `json:"-"`
}

// InviteInput is the payload for inviting a team member.
type InviteInput struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// Repository stores the user directory.
type Repository interface {
	All(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Insert(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
}

// InvitationSender delivers invitation email; failures are logged, never
// fatal to the invite itself.
type InvitationSender interface {
	SendInvitation(ctx context.Context, to, inviteLink, invitedBy string) error
}

// Service handles team management operations.
type Service struct {
	repo     Repository
	trail    *audit.Trail
	email    InvitationSender
	baseURL  string
	logger   zerolog.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, trail *audit.Trail, email InvitationSender, baseURL string, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		trail:    trail,
		email:    email,
		baseURL:  baseURL,
		logger:   logger.With().Str("component", "users").Logger(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns all users sorted by name.
// Find returns the account with the given ID.
func (s *Service) Find(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Authenticate looks a user up by email and, when the account carries a
// password hash, verifies the password against it. Accounts without a hash
// accept any password; the console's demo users work that way.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return User{}, ErrInvalidCredentials
		}
	}

	now := s.now().UTC()
	user.LastActive = &now
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user", user.ID).Msg("failed to record last active")
	}
	return user, nil
}

// Invite creates an invited account and sends the invitation email. The
// inviter's identity goes to the audit trail.
func (s *Service) Invite(ctx context.Context, input InviteInput, actor, ip string) (User, error) {
	input.Name = sanitize.Text(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return User{}, fmt.Errorf("validate invite: %w", err)
	}
	if !auth.ValidRole(input.Role) {
		return User{}, fmt.Errorf("validate invite: unknown role %q", input.Role)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	user := User{
		ID:        "user-" + uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      auth.NormalizeRole(input.Role),
		Status:    StatusInvited,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return User{}, err
	}

	s.trail.Success("User Invited", actor, input.Email, ip, map[string]string{"role": string(user.Role)})

	inviteLink := fmt.Sprintf("%s/invite/%s", s.baseURL, user.ID)
	if err := s.email.SendInvitation(ctx, user.Email, inviteLink, actor); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("invitation email failed")
	}

	return user, nil
}

// UpdateRole changes a user's role. Role changes land in the audit trail at
// warning status.
func (s *Service) UpdateRole(ctx context.Context, userID, role, actor, ip string) (User, error) {
	if !auth.ValidRole(role) {
		return User{}, fmt.Errorf("unknown role %q", role)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	user.Role = auth.NormalizeRole(role)
	if user.Status == "" {
		user.Status = StatusActive
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}

	s.trail.Warning("Role Updated", actor, user.Email, ip, map[string]string{"role": string(user.Role)})
	return user, nil
}

// HashPassword returns the bcrypt hash used for the bootstrap admin
// credential.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
