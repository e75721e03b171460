package repo

import (
	"context"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoFilter narrows and orders a user's todo list.
// Month/Day apply only when both are set (year-agnostic date match).
// SortBy must be "created_at" or "updated_at"; the service sanitizes it
// before it reaches the repo.
type TodoFilter struct {
	Month  int
	Day    int
	SortBy string
}

// HasDateFilter reports whether both month and day were supplied.
func (f TodoFilter) HasDateFilter() bool { return f.Month > 0 && f.Day > 0 }

// TodoRepo provides todo persistence. Every lookup and mutation is scoped
// by (id, user_id) together; a todo is never reachable through its id alone.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Todo, error)
	List(ctx context.Context, userID int64, f TodoFilter) ([]dom.Todo, error)
	Update(ctx context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
	SetChecked(ctx context.Context, userID, id int64, checked bool) (dom.Todo, error)
	SetEmoji(ctx context.Context, userID, id int64, emoji string) (dom.Todo, error)
	SetOrder(ctx context.Context, userID, id int64, position int) error
}

const todoColumns = `id, user_id, date, content, is_checked, emoji, sort_order, created_at, updated_at`

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (user_id, date, content, is_checked, emoji, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + todoColumns
	row := r.db.QueryRow(ctx, query, t.UserID, t.Date, t.Content, t.IsChecked, t.Emoji, t.Order)
	return scanTodo(row)
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	return scanTodo(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64, f TodoFilter) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1`
	args := []any{userID}
	if f.HasDateFilter() {
		query += ` AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(DAY FROM date) = $3`
		args = append(args, f.Month, f.Day)
	}
	query += ` ORDER BY ` + sortColumn(f.SortBy) + ` ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET date = $3, content = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id, userID, patch.Date, patch.Content))
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTodoRepo) SetChecked(ctx context.Context, userID, id int64, checked bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET is_checked = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id, userID, checked))
}

func (r *PGTodoRepo) SetEmoji(ctx context.Context, userID, id int64, emoji string) (dom.Todo, error) {
	query := `
		UPDATE todos SET emoji = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id, userID, emoji))
}

func (r *PGTodoRepo) SetOrder(ctx context.Context, userID, id int64, position int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE todos SET sort_order = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, position)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// sortColumn whitelists the ORDER BY column; anything unexpected falls
// back to created_at rather than reaching the query string.
func sortColumn(sortBy string) string {
	if sortBy == "updated_at" {
		return "updated_at"
	}
	return "created_at"
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Content, &t.IsChecked, &t.Emoji,
		&t.Order, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
