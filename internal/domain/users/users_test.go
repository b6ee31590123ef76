package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
)

type stubRepo struct {
	users map[string]User // keyed by id
}

func newStubRepo(seed ...User) *stubRepo {
	repo := &stubRepo{users: make(map[string]User)}
	for _, user := range seed {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *stubRepo) All(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *stubRepo) FindByEmail(_ context.Context, email string) (User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *stubRepo) FindByID(_ context.Context, id string) (User, error) {
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *stubRepo) Insert(_ context.Context, user User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubRepo) Update(_ context.Context, user User) error {
	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

type stubEmail struct {
	calls int
	to    string
	link  string
}

func (e *stubEmail) SendInvitation(_ context.Context, to, inviteLink, _ string) error {
	e.calls++
	e.to = to
	e.link = inviteLink
	return nil
}

func testService(repo *stubRepo, email *stubEmail) (*Service, *audit.Trail) {
	trail := audit.NewTrail(100, zerolog.Nop())
	svc := NewService(repo, trail, email, "http://console.test", zerolog.Nop())
	return svc, trail
}

func adminUser() User {
	return User{ID: "1", Name: "Admin User", Email: "admin@gmail.com", Role: auth.RoleAdmin, Status: StatusActive}
}

func TestListSortedByName(t *testing.T) {
	repo := newStubRepo(
		User{ID: "1", Name: "Charlie"},
		User{ID: "2", Name: "Alice"},
		User{ID: "3", Name: "Bob"},
	)
	svc, _ := testService(repo, &stubEmail{})

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Bob", "Charlie"}, []string{users[0].Name, users[1].Name, users[2].Name})
}

func TestAuthenticateDemoAccountIgnoresPassword(t *testing.T) {
	repo := newStubRepo(adminUser())
	svc, _ := testService(repo, &stubEmail{})

	user, err := svc.Authenticate(context.Background(), "admin@gmail.com", "anything")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)
	require.NotNil(t, user.LastActive)
}

func TestAuthenticateChecksBcryptWhenHashSet(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	seeded := adminUser()
	seeded.PasswordHash = hash
	repo := newStubRepo(seeded)
	svc, _ := testService(repo, &stubEmail{})

	_, err = svc.Authenticate(context.Background(), "admin@gmail.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Authenticate(context.Background(), "admin@gmail.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := testService(newStubRepo(), &stubEmail{})

	_, err := svc.Authenticate(context.Background(), "ghost@gmail.com", "x")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestInviteCreatesInvitedUser(t *testing.T) {
	repo := newStubRepo(adminUser())
	email := &stubEmail{}
	svc, trail := testService(repo, email)
	svc.WithNow(func() time.Time { return time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC) })

	user, err := svc.Invite(context.Background(), InviteInput{
		Name:  "<i>New Person</i>",
		Email: "new@gmail.com",
		Role:  "staff",
	}, "admin@gmail.com", "10.0.0.1")

	require.NoError(t, err)
	require.Equal(t, "New Person", user.Name)
	require.Equal(t, auth.RoleStaff, user.Role)
	require.Equal(t, StatusInvited, user.Status)
	require.Equal(t, time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC), user.CreatedAt)

	require.Equal(t, 1, email.calls)
	require.Equal(t, "new@gmail.com", email.to)
	require.Contains(t, email.link, "http://console.test/invite/")

	entries := trail.List()
	require.Len(t, entries, 1)
	require.Equal(t, "User Invited", entries[0].Action)
	require.Equal(t, "new@gmail.com", entries[0].Target)
}

func TestInviteDuplicateEmail(t *testing.T) {
	repo := newStubRepo(adminUser())
	svc, _ := testService(repo, &stubEmail{})

	_, err := svc.Invite(context.Background(), InviteInput{
		Name:  "Dup",
		Email: "ADMIN@gmail.com",
		Role:  "viewer",
	}, "admin@gmail.com", "")

	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestInviteRejectsInvalidInput(t *testing.T) {
	svc, _ := testService(newStubRepo(), &stubEmail{})

	_, err := svc.Invite(context.Background(), InviteInput{Name: "", Email: "a@b.c", Role: "viewer"}, "actor", "")
	require.Error(t, err)

	_, err = svc.Invite(context.Background(), InviteInput{Name: "X", Email: "not-email", Role: "viewer"}, "actor", "")
	require.Error(t, err)

	_, err = svc.Invite(context.Background(), InviteInput{Name: "X", Email: "a@b.c", Role: "superuser"}, "actor", "")
	require.Error(t, err)
}

func TestUpdateRole(t *testing.T) {
	repo := newStubRepo(adminUser(), User{ID: "2", Name: "Staff User", Email: "staff@gmail.com", Role: auth.RoleStaff})
	svc, trail := testService(repo, &stubEmail{})

	user, err := svc.UpdateRole(context.Background(), "2", "admin", "admin@gmail.com", "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, user.Role)
	require.Equal(t, StatusActive, user.Status)

	entries := trail.List()
	require.Len(t, entries, 1)
	require.Equal(t, "Role Updated", entries[0].Action)
	require.Equal(t, audit.StatusWarning, entries[0].Status)
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	svc, _ := testService(newStubRepo(), &stubEmail{})

	_, err := svc.UpdateRole(context.Background(), "missing", "admin", "actor", "")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	repo := newStubRepo(adminUser())
	svc, _ := testService(repo, &stubEmail{})

	_, err := svc.UpdateRole(context.Background(), "1", "root", "actor", "")
	require.Error(t, err)
}
