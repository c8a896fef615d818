package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
	ErrTokenInvalid = errors.New("invalid token")
)

const userColumns = `id, username, email, password_hash, first_name, last_name,
	gender, phone, address, is_staff, is_active, created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByToken(ctx context.Context, key string) (*User, error)
	GetOrCreateToken(ctx context.Context, userID string) (string, error)
	DeleteToken(ctx context.Context, key string) error
	UpdateProfile(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Gender, &u.Phone, &u.Address, &u.IsStaff, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, gender, phone, address)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Gender, u.Phone, u.Address)
	if err != nil {
		// UNIQUE on username/email
		return ErrAlreadyExist
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *PGRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username))
}

func (r *PGRepo) GetByToken(ctx context.Context, key string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u JOIN auth_tokens t ON t.user_id = u.id
		WHERE t.key = $1
	`, key))
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return u, nil
}

// GetOrCreateToken mirrors the original token store: one long-lived opaque
// token per user, issued on first login.
func (r *PGRepo) GetOrCreateToken(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var key string
	err := r.db.QueryRow(ctx, `SELECT key FROM auth_tokens WHERE user_id=$1 LIMIT 1`, userID).Scan(&key)
	if err == nil {
		return key, nil
	}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO auth_tokens (user_id) VALUES ($1) RETURNING key
	`, userID).Scan(&key); err != nil {
		return "", err
	}
	return key, nil
}

func (r *PGRepo) DeleteToken(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM auth_tokens WHERE key=$1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTokenInvalid
	}
	return nil
}

// UpdateProfile leaves blank fields unchanged.
func (r *PGRepo) UpdateProfile(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET username   = COALESCE(NULLIF($2,''), username),
		    email      = COALESCE(NULLIF($3,''), email),
		    first_name = COALESCE(NULLIF($4,''), first_name),
		    last_name  = COALESCE(NULLIF($5,''), last_name),
		    gender     = COALESCE(NULLIF($6,''), gender),
		    phone      = COALESCE(NULLIF($7,''), phone),
		    address    = COALESCE(NULLIF($8,''), address),
		    updated_at = NOW()
		WHERE id = $1
	`, u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Gender, u.Phone, u.Address)
	return err
}

func (r *PGRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash=$2, updated_at=NOW() WHERE id=$1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
