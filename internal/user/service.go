package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service wraps the repository with validation and password handling.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
	Phone     string
	Address   string
}

// Register creates the user and issues their auth token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, string, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, "", errors.New("username, email and password are required")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	gender := in.Gender
	if gender == "" {
		gender = "Male"
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Gender:       gender,
		Phone:        in.Phone,
		Address:      in.Address,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := s.repo.GetOrCreateToken(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.repo.GetOrCreateToken(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteToken(ctx, token)
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByToken(ctx context.Context, key string) (*User, error) {
	if key == "" {
		return nil, ErrTokenInvalid
	}
	return s.repo.GetByToken(ctx, key)
}

// UpdateProfile applies non-empty fields only; the repo keeps the rest.
func (s *Service) UpdateProfile(ctx context.Context, u *User) (*User, error) {
	if u.ID == "" {
		return nil, ErrNotFound
	}
	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, u.ID)
}

func (s *Service) UpdatePassword(ctx context.Context, id, current, next string) error {
	if current == "" || next == "" {
		return errors.New("both current and new passwords are required")
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CheckPassword(u.PasswordHash, current) {
		return ErrInvalidCredentials
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

// DeleteAccount verifies the password before removing the user; the cart,
// orders, tokens and notifications go with it via ON DELETE CASCADE.
func (s *Service) DeleteAccount(ctx context.Context, id, password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CheckPassword(u.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
