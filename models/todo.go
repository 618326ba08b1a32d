package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Priority ranks a todo. The zero value is Normal; new todos default to Medium.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityTop
)

var priorityNames = map[Priority]string{
	PriorityNormal: "Normal",
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityTop:    "Top",
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Todo is a task owned by exactly one user.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"-"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Priority    Priority   `json:"priority"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoCreateRequest is the body of POST /todos/.
type TodoCreateRequest struct {
	Description string     `json:"description" validate:"required,max=1000"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *Priority  `json:"priority" validate:"omitempty,gte=0,lte=4"`
}

// UnmarshalJSON accepts due dates with or without a UTC offset.
func (r *TodoCreateRequest) UnmarshalJSON(b []byte) error {
	type plain TodoCreateRequest
	aux := struct {
		*plain
		DueDate *Timestamp `json:"due_date"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	r.DueDate = nil
	if aux.DueDate != nil {
		due := aux.DueDate.Time
		r.DueDate = &due
	}
	return nil
}

// TodoUpdateRequest is the body of PUT /todos/{id}. Only fields present in
// the request body are applied.
type TodoUpdateRequest struct {
	Description *string      `json:"description" validate:"omitempty,min=1,max=1000"`
	DueDate     OptionalTime `json:"due_date"`
	Priority    *Priority    `json:"priority" validate:"omitempty,gte=0,lte=4"`
}

// Empty reports whether the update carries no field at all.
func (r TodoUpdateRequest) Empty() bool {
	return r.Description == nil && !r.DueDate.Set && r.Priority == nil
}

// OptionalTime distinguishes an absent JSON field from an explicit null:
// Set is true whenever the key was present, Time is nil for null.
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalTime) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Time = nil
		return nil
	}

	var t Timestamp
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	o.Time = &t.Time
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if o.Time == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Time)
}
