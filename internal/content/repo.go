package content

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("content not found")

// Repository serves the informational surfaces: privacy policy, FAQ, contact
// channels and home sliders. Reads return active rows only; writes are
// staff-side admin operations.
type Repository interface {
	ActivePolicy(ctx context.Context) (*PrivacyPolicy, error)
	UpsertPolicy(ctx context.Context, p *PrivacyPolicy) (*PrivacyPolicy, error)

	ListFAQs(ctx context.Context, category string) ([]FAQ, error)
	CreateFAQ(ctx context.Context, f *FAQ) (*FAQ, error)
	UpdateFAQ(ctx context.Context, f *FAQ) (*FAQ, error)
	DeleteFAQ(ctx context.Context, id string) (bool, error)

	ListContacts(ctx context.Context) ([]Contact, error)
	CreateContact(ctx context.Context, c *Contact) (*Contact, error)
	DeleteContact(ctx context.Context, id string) (bool, error)

	ListSliders(ctx context.Context) ([]Slider, error)
	CreateSlider(ctx context.Context, s *Slider) (*Slider, error)
	DeleteSlider(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// ActivePolicy returns the most recently updated active policy.
func (r *PGRepo) ActivePolicy(ctx context.Context) (*PrivacyPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p PrivacyPolicy
	err := r.db.QueryRow(ctx, `
		SELECT id, title, content, is_active, last_updated
		FROM privacy_policies
		WHERE is_active
		ORDER BY last_updated DESC
		LIMIT 1
	`).Scan(&p.ID, &p.Title, &p.Content, &p.IsActive, &p.LastUpdated)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

// UpsertPolicy publishes a new policy version and deactivates prior ones so
// ActivePolicy always resolves to a single document.
func (r *PGRepo) UpsertPolicy(ctx context.Context, p *PrivacyPolicy) (*PrivacyPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE privacy_policies SET is_active = FALSE WHERE is_active`); err != nil {
		return nil, err
	}

	var out PrivacyPolicy
	if err := tx.QueryRow(ctx, `
		INSERT INTO privacy_policies (id, title, content, is_active)
		VALUES ($1,$2,$3,TRUE)
		RETURNING id, title, content, is_active, last_updated
	`, uuid.NewString(), p.Title, p.Content).Scan(
		&out.ID, &out.Title, &out.Content, &out.IsActive, &out.LastUpdated); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFAQs returns active questions, optionally filtered by category. "All"
// and "" both mean no filter.
func (r *PGRepo) ListFAQs(ctx context.Context, category string) ([]FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, question, answer, category, is_active, created_at, updated_at
		FROM faqs
		WHERE is_active AND ($1 = '' OR $1 = 'All' OR category = $1)
		ORDER BY created_at
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FAQ, 0)
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateFAQ(ctx context.Context, f *FAQ) (*FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if f.Category == "" {
		f.Category = "General"
	}
	var out FAQ
	err := r.db.QueryRow(ctx, `
		INSERT INTO faqs (id, question, answer, category, is_active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, question, answer, category, is_active, created_at, updated_at
	`, uuid.NewString(), f.Question, f.Answer, f.Category, f.IsActive).Scan(
		&out.ID, &out.Question, &out.Answer, &out.Category, &out.IsActive, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PGRepo) UpdateFAQ(ctx context.Context, f *FAQ) (*FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out FAQ
	err := r.db.QueryRow(ctx, `
		UPDATE faqs SET
			question = COALESCE(NULLIF($2,''), question),
			answer = COALESCE(NULLIF($3,''), answer),
			category = COALESCE(NULLIF($4,''), category),
			is_active = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, question, answer, category, is_active, created_at, updated_at
	`, f.ID, f.Question, f.Answer, f.Category, f.IsActive).Scan(
		&out.ID, &out.Question, &out.Answer, &out.Category, &out.IsActive, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &out, nil
}

func (r *PGRepo) DeleteFAQ(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) ListContacts(ctx context.Context) ([]Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, contact_type, title, value, is_active, created_at, updated_at
		FROM contacts
		WHERE is_active
		ORDER BY contact_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.ContactType, &c.Title, &c.Value, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateContact(ctx context.Context, c *Contact) (*Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out Contact
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (id, contact_type, title, value, is_active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, contact_type, title, value, is_active, created_at, updated_at
	`, uuid.NewString(), c.ContactType, c.Title, c.Value, c.IsActive).Scan(
		&out.ID, &out.ContactType, &out.Title, &out.Value, &out.IsActive, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PGRepo) DeleteContact(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) ListSliders(ctx context.Context) ([]Slider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, image_url, category_id, is_active, created_at, updated_at
		FROM sliders
		WHERE is_active
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Slider, 0)
	for rows.Next() {
		var s Slider
		var categoryID sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL, &categoryID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.CategoryID = fromNull(categoryID)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateSlider(ctx context.Context, s *Slider) (*Slider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out Slider
	var categoryID sql.NullString
	err := r.db.QueryRow(ctx, `
		INSERT INTO sliders (id, title, description, image_url, category_id, is_active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, title, description, image_url, category_id, is_active, created_at, updated_at
	`, uuid.NewString(), s.Title, s.Description, s.ImageURL, nullable(s.CategoryID), s.IsActive).Scan(
		&out.ID, &out.Title, &out.Description, &out.ImageURL, &categoryID, &out.IsActive, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	out.CategoryID = fromNull(categoryID)
	return &out, nil
}

func (r *PGRepo) DeleteSlider(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM sliders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
