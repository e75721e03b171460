package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateOnly marshals/unmarshals a calendar date as "2006-01-02".
// Dates are stored as start of day UTC.
type DateOnly struct{ t time.Time }

// NewDateOnly truncates ts to its calendar day in UTC.
func NewDateOnly(ts time.Time) DateOnly {
	return DateOnly{t: time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected a string like YYYY-MM-DD")
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = time.Time{}
		return nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("date: use YYYY-MM-DD")
	}
	d.t = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.t.Format("2006-01-02") + `"`), nil
}

// Time returns the underlying start-of-day UTC time.
func (d DateOnly) Time() time.Time { return d.t }

// IsZero reports whether the date was absent or empty.
func (d DateOnly) IsZero() bool { return d.t.IsZero() }

type CreateTodoRequest struct {
	Date    DateOnly `json:"date" binding:"required"`
	Content string   `json:"content" binding:"required"`
}

// UpdateTodoRequest carries a partial update. A nil field means "leave
// unchanged"; a present field is applied even when empty, so content can
// be cleared deliberately.
type UpdateTodoRequest struct {
	Date    *DateOnly `json:"date"`
	Content *string   `json:"content"`
}

// CheckTodoRequest requires is_checked to be present and exactly boolean.
// A pointer distinguishes an absent field from a present false.
type CheckTodoRequest struct {
	IsChecked *bool `json:"is_checked"`
}

type ReviewTodoRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

type CreateRecurringRequest struct {
	Title     string   `json:"title" binding:"required"`
	DayOfWeek string   `json:"day_of_week" binding:"required"`
	StartDate DateOnly `json:"start_date" binding:"required"`
	Weeks     int      `json:"weeks"` // 0 means the default of 4 weeks
}

type ReorderTodosRequest struct {
	Order []int64 `json:"order"`
}

type TodoResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      DateOnly  `json:"date"`
	Content   string    `json:"content"`
	IsChecked bool      `json:"is_checked"`
	Emoji     string    `json:"emoji"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

type CreateRecurringResponse struct {
	Count int     `json:"count"`
	IDs   []int64 `json:"ids"`
}
