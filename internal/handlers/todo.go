package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/dto"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List a user's todos
// @Description  month and day filter together (year-agnostic); one alone is ignored. sort_by is created_at or updated_at.
// @Tags         todos
// @Produce      json
// @Param        user_id  path   int     true   "User ID"
// @Param        month    query  int     false  "Month (1-12), applies with day"
// @Param        day      query  int     false  "Day of month, applies with month"
// @Param        sort_by  query  string  false  "created_at (default) or updated_at"
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	f, ok := parseListFilter(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), userID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(list)})
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                    true  "User ID"
// @Param        body     body  dto.CreateTodoRequest  true  "Todo body"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	var req dto.CreateTodoRequest
	// The validator does not enforce required on custom struct types, so
	// the date's presence is checked by hand.
	if err := c.ShouldBindJSON(&req); err != nil || req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and content are required"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), userID, req.Date.Time(), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Update a todo's date and/or content
// @Description  Absent fields are left unchanged; a present field is applied as sent.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                    true  "User ID"
// @Param        todo_id  path  int                    true  "Todo ID"
// @Param        body     body  dto.UpdateTodoRequest  true  "Partial update"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/{todo_id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	userID, todoID, ok := parseScopedIDs(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var datePtr *time.Time
	if req.Date != nil && !req.Date.IsZero() {
		d := req.Date.Time()
		datePtr = &d
	}
	t, err := h.svc.Update(c.Request.Context(), userID, todoID, datePtr, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        user_id  path  int  true  "User ID"
// @Param        todo_id  path  int  true  "Todo ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/{todo_id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	userID, todoID, ok := parseScopedIDs(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, todoID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Check godoc
// @Summary      Set a todo's completion flag
// @Description  is_checked must be present and exactly boolean.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                   true  "User ID"
// @Param        todo_id  path  int                   true  "Todo ID"
// @Param        body     body  dto.CheckTodoRequest  true  "Completion flag"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/{todo_id}/check [patch]
func (h *TodoHandler) Check(c *gin.Context) {
	userID, todoID, ok := parseScopedIDs(c)
	if !ok {
		return
	}
	var req dto.CheckTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_checked must be true or false"})
		return
	}
	if req.IsChecked == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_checked is required"})
		return
	}
	t, err := h.svc.SetChecked(c.Request.Context(), userID, todoID, *req.IsChecked)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Review godoc
// @Summary      Set a todo's emoji annotation
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                    true  "User ID"
// @Param        todo_id  path  int                    true  "Todo ID"
// @Param        body     body  dto.ReviewTodoRequest  true  "Emoji"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/{todo_id}/review [patch]
func (h *TodoHandler) Review(c *gin.Context) {
	userID, todoID, ok := parseScopedIDs(c)
	if !ok {
		return
	}
	var req dto.ReviewTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emoji is required"})
		return
	}
	t, err := h.svc.SetEmoji(c.Request.Context(), userID, todoID, req.Emoji)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// CreateRecurring godoc
// @Summary      Create weekly recurring todos
// @Description  One todo per week dated on the first day_of_week on or after start_date + 7*week days.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                         true  "User ID"
// @Param        body     body  dto.CreateRecurringRequest  true  "Recurring schedule"
// @Success      201  {object}  dto.CreateRecurringResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/recurring [post]
func (h *TodoHandler) CreateRecurring(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StartDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, day_of_week and start_date are required"})
		return
	}
	ids, err := h.svc.CreateRecurring(c.Request.Context(), userID, req.Title, req.DayOfWeek, req.StartDate.Time(), req.Weeks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateRecurringResponse{Count: len(ids), IDs: ids})
}

// Reorder godoc
// @Summary      Reorder a user's todos
// @Description  Each todo's order becomes its 0-based position in the list. Writes are per-row; on the first unknown id, earlier updates stand.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        user_id  path  int                      true  "User ID"
// @Param        body     body  dto.ReorderTodosRequest  true  "Ordered todo ids"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id}/todos/reorder [patch]
func (h *TodoHandler) Reorder(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	var req dto.ReorderTodosRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be a list of todo ids"})
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), userID, req.Order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseListFilter reads month/day/sort_by query params. month and day must
// both be present to filter; a lone one is ignored like the no-op it is.
func parseListFilter(c *gin.Context) (repo.TodoFilter, bool) {
	f := repo.TodoFilter{SortBy: c.Query("sort_by")}

	monthRaw, hasMonth := c.GetQuery("month")
	dayRaw, hasDay := c.GetQuery("day")
	if hasMonth && hasDay {
		month, merr := strconv.Atoi(monthRaw)
		day, derr := strconv.Atoi(dayRaw)
		if merr != nil || derr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month and day must be integers"})
			return repo.TodoFilter{}, false
		}
		f.Month, f.Day = month, day
	}
	return f, true
}

func parseScopedIDs(c *gin.Context) (userID, todoID int64, ok bool) {
	userID, ok = parseID(c, "user_id")
	if !ok {
		return 0, 0, false
	}
	todoID, ok = parseID(c, "todo_id")
	if !ok {
		return 0, 0, false
	}
	return userID, todoID, true
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownWeekday):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Date:      dto.NewDateOnly(t.Date),
		Content:   t.Content,
		IsChecked: t.IsChecked,
		Emoji:     t.Emoji,
		Order:     t.Order,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
