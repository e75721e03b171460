package repo

import (
	"context"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
