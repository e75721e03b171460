package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type memTodoRepo struct {
	nextID int64
	todos  map[int64]dom.Todo
}

func (r *memTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = testEpoch.Add(time.Duration(r.nextID) * time.Second)
	t.UpdatedAt = t.CreatedAt
	r.todos[t.ID] = t
	return t, nil
}

func (r *memTodoRepo) GetByID(_ context.Context, userID, id int64) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTodoRepo) List(_ context.Context, userID int64, f repo.TodoFilter) ([]dom.Todo, error) {
	var list []dom.Todo
	for _, t := range r.todos {
		if t.UserID != userID {
			continue
		}
		if f.HasDateFilter() && (int(t.Date.Month()) != f.Month || t.Date.Day() != f.Day) {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if f.SortBy == "updated_at" && !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return list, nil
}

func (r *memTodoRepo) Update(_ context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Date = patch.Date
	t.Content = patch.Content
	t.UpdatedAt = t.UpdatedAt.Add(time.Second)
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) Delete(_ context.Context, userID, id int64) error {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}

func (r *memTodoRepo) SetChecked(_ context.Context, userID, id int64, checked bool) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.IsChecked = checked
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) SetEmoji(_ context.Context, userID, id int64, emoji string) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Emoji = emoji
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) SetOrder(_ context.Context, userID, id int64, position int) error {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	t.Order = position
	r.todos[id] = t
	return nil
}

type memUserRepo struct {
	nextID int64
	users  map[int64]dom.User
}

func (r *memUserRepo) add(username string) dom.User {
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, CreatedAt: testEpoch}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: testEpoch}
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

// newTestRouter wires the real handlers and services over in-memory repos,
// mirroring the route table in internal/app/routes.go.
func newTestRouter() (*gin.Engine, *memTodoRepo, *memUserRepo) {
	gin.SetMode(gin.TestMode)

	todoRepo := &memTodoRepo{todos: map[int64]dom.Todo{}}
	userRepo := &memUserRepo{users: map[int64]dom.User{}}
	todoHandler := NewTodoHandler(service.NewTodoService(todoRepo, userRepo, nil))
	userHandler := NewUserHandler(service.NewUserService(userRepo))

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/register", userHandler.Register)
	api.POST("/login", userHandler.Login)

	todos := api.Group("/users/:user_id/todos")
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.POST("/recurring", todoHandler.CreateRecurring)
	todos.PATCH("/reorder", todoHandler.Reorder)
	todos.PATCH("/:todo_id", todoHandler.Update)
	todos.DELETE("/:todo_id", todoHandler.Delete)
	todos.PATCH("/:todo_id/check", todoHandler.Check)
	todos.PATCH("/:todo_id/review", todoHandler.Review)

	return r, todoRepo, userRepo
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
