package domain

import "time"

// Todo is the domain entity for a single task.
// It does not depend on Gin, Postgres or Redis.
//
// Date is the calendar day the todo belongs to, stored as midnight UTC.
// Order is the manual sort position assigned by drag-and-drop reorder;
// stable for display but not required to be contiguous.
type Todo struct {
	ID        int64
	UserID    int64
	Date      time.Time
	Content   string
	IsChecked bool
	Emoji     string
	Order     int

	CreatedAt time.Time
	UpdatedAt time.Time
}
