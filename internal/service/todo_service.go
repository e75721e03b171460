package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2-Sungyoon/likelion-todolist-BE/internal/cache"
	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTodoNotFound   = errors.New("todo not found")
	ErrUnknownWeekday = errors.New("day_of_week must be a weekday name like Monday")
)

// DefaultRecurringWeeks is how many weekly occurrences are generated when
// the request does not say otherwise.
const DefaultRecurringWeeks = 4

// Names are matched exactly; "monday" or "MON" is an input error.
var weekdayNames = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// ListCache caches list query results. *cache.TodoCache implements it.
type ListCache interface {
	GetList(ctx context.Context, key string) ([]dom.Todo, error)
	SetList(ctx context.Context, key string, list []dom.Todo) error
	InvalidateUser(ctx context.Context, userID int64) error
}

// TodoService owns all todo business rules. Every operation resolves the
// owning user first and touches todos only through (id, user_id) scoped
// repo calls.
type TodoService struct {
	todos repo.TodoRepo
	users repo.UserRepo
	cache ListCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(todos repo.TodoRepo, users repo.UserRepo, c ListCache) *TodoService {
	return &TodoService{todos: todos, users: users, cache: c}
}

// List returns the user's todos. The month/day filter applies only when
// both are set; an unrecognized sort key silently falls back to created_at.
func (s *TodoService) List(ctx context.Context, userID int64, f repo.TodoFilter) ([]dom.Todo, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	f.SortBy = sanitizeSortBy(f.SortBy)

	if s.cache != nil {
		key := cache.ListKey(userID, f)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, key); err == nil && list != nil {
				return list, nil
			}
			list, err := s.todos.List(ctx, userID, f)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, key, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.todos.List(ctx, userID, f)
}

// Create adds a todo for the user with is_checked=false.
func (s *TodoService) Create(ctx context.Context, userID int64, date time.Time, content string) (dom.Todo, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return dom.Todo{}, err
	}
	t, err := s.todos.Create(ctx, dom.Todo{
		UserID:  userID,
		Date:    date,
		Content: strings.TrimSpace(content),
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Update applies a partial update. A nil field is left unchanged; a
// present field is applied even when empty, so content can be cleared.
func (s *TodoService) Update(ctx context.Context, userID, id int64, date *time.Time, content *string) (dom.Todo, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return dom.Todo{}, err
	}
	existing, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Todo{}, todoErr(err)
	}
	patch := existing
	if date != nil {
		patch.Date = *date
	}
	if content != nil {
		patch.Content = strings.TrimSpace(*content)
	}
	t, err := s.todos.Update(ctx, userID, id, patch)
	if err != nil {
		return dom.Todo{}, todoErr(err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Delete removes the todo. Deleting an already-gone id is a not-found.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.resolveUser(ctx, userID); err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, userID, id); err != nil {
		return todoErr(err)
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// SetChecked persists the completion flag.
func (s *TodoService) SetChecked(ctx context.Context, userID, id int64, checked bool) (dom.Todo, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return dom.Todo{}, err
	}
	t, err := s.todos.SetChecked(ctx, userID, id, checked)
	if err != nil {
		return dom.Todo{}, todoErr(err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// SetEmoji persists the review annotation.
func (s *TodoService) SetEmoji(ctx context.Context, userID, id int64, emoji string) (dom.Todo, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return dom.Todo{}, err
	}
	t, err := s.todos.SetEmoji(ctx, userID, id, emoji)
	if err != nil {
		return dom.Todo{}, todoErr(err)
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// CreateRecurring generates one todo per week for the given number of
// weeks, each dated on the first occurrence of dayOfWeek on or after
// start + 7*week days. Returns the created ids in order.
func (s *TodoService) CreateRecurring(ctx context.Context, userID int64, title, dayOfWeek string, start time.Time, weeks int) ([]int64, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	target, ok := weekdayNames[dayOfWeek]
	if !ok {
		return nil, ErrUnknownWeekday
	}
	if weeks <= 0 {
		weeks = DefaultRecurringWeeks
	}

	ids := make([]int64, 0, weeks)
	for i := 0; i < weeks; i++ {
		date := nextWeekday(start.AddDate(0, 0, 7*i), target)
		t, err := s.todos.Create(ctx, dom.Todo{
			UserID:  userID,
			Date:    date,
			Content: strings.TrimSpace(title),
		})
		if err != nil {
			// Occurrences created before the failure are already
			// visible; cached lists must not outlive them.
			if len(ids) > 0 {
				s.invalidateCache(ctx, userID)
			}
			return ids, err
		}
		ids = append(ids, t.ID)
	}
	s.invalidateCache(ctx, userID)
	return ids, nil
}

// Reorder assigns each todo's sort position to its index in ids.
// Writes are independent per row: on the first id that does not resolve
// under the user, earlier updates stand and the error names the id.
// Partial application is the committed contract.
func (s *TodoService) Reorder(ctx context.Context, userID int64, ids []int64) error {
	if err := s.resolveUser(ctx, userID); err != nil {
		return err
	}
	for idx, id := range ids {
		if err := s.todos.SetOrder(ctx, userID, id, idx); err != nil {
			// Rows updated before the failure stay updated, so any
			// cached lists are stale regardless of the error kind.
			if idx > 0 {
				s.invalidateCache(ctx, userID)
			}
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("todo %d: %w", id, ErrTodoNotFound)
			}
			return err
		}
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// nextWeekday steps forward from d to the first day matching target,
// returning d itself when it already matches.
func nextWeekday(d time.Time, target time.Weekday) time.Time {
	for d.Weekday() != target {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func sanitizeSortBy(sortBy string) string {
	switch sortBy {
	case "created_at", "updated_at":
		return sortBy
	default:
		return "created_at"
	}
}

func (s *TodoService) resolveUser(ctx context.Context, userID int64) error {
	_, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func todoErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTodoNotFound
	}
	return err
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
