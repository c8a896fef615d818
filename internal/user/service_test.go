package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	users  map[string]*User // by id
	tokens map[string]string // token -> user id
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*User), tokens: make(map[string]string)}
}

func (s *stubRepo) Create(ctx context.Context, u *User) error {
	for _, ex := range s.users {
		if ex.Username == u.Username || ex.Email == u.Email {
			return ErrAlreadyExist
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRepo) GetByToken(ctx context.Context, key string) (*User, error) {
	id, ok := s.tokens[key]
	if !ok {
		return nil, ErrTokenInvalid
	}
	return s.GetByID(ctx, id)
}

func (s *stubRepo) GetOrCreateToken(ctx context.Context, userID string) (string, error) {
	for k, id := range s.tokens {
		if id == userID {
			return k, nil
		}
	}
	key := "tok-" + userID
	s.tokens[key] = userID
	return key, nil
}

func (s *stubRepo) DeleteToken(ctx context.Context, key string) error {
	if _, ok := s.tokens[key]; !ok {
		return ErrTokenInvalid
	}
	delete(s.tokens, key)
	return nil
}

func (s *stubRepo) UpdateProfile(ctx context.Context, u *User) error {
	cur, ok := s.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	if u.Username != "" {
		cur.Username = u.Username
	}
	if u.Email != "" {
		cur.Email = u.Email
	}
	if u.FirstName != "" {
		cur.FirstName = u.FirstName
	}
	if u.LastName != "" {
		cur.LastName = u.LastName
	}
	if u.Gender != "" {
		cur.Gender = u.Gender
	}
	if u.Phone != "" {
		cur.Phone = u.Phone
	}
	if u.Address != "" {
		cur.Address = u.Address
	}
	return nil
}

func (s *stubRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestRegister_IssuesTokenAndDefaultsGender(t *testing.T) {
	svc := NewService(newStubRepo())
	u, token, err := svc.Register(context.Background(), RegisterInput{
		Username: "maggie",
		Email:    "maggie@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Male", u.Gender)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newStubRepo())
	_, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "maggie", Email: "a@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		Username: "maggie", Email: "b@example.com", Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrAlreadyExist)
}

func TestLogin(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	_, regToken, err := svc.Register(context.Background(), RegisterInput{
		Username: "maggie", Email: "maggie@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "maggie", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "maggie", u.Username)
	assert.Equal(t, regToken, token, "one long-lived token per user")

	_, _, err = svc.Login(context.Background(), "maggie", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdatePassword_RequiresCurrent(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	u, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "maggie", Email: "maggie@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(context.Background(), u.ID, "wrong", "another-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.UpdatePassword(context.Background(), u.ID, "s3cret-pass", "another-pass")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "maggie", "another-pass")
	assert.NoError(t, err)
}

func TestDeleteAccount_VerifiesPassword(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	u, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "maggie", Email: "maggie@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	err = svc.DeleteAccount(context.Background(), u.ID, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.DeleteAccount(context.Background(), u.ID, "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
