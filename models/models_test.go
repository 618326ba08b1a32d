package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTime_Absent(t *testing.T) {
	var req TodoUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"x"}`), &req))

	assert.False(t, req.DueDate.Set)
	assert.False(t, req.Empty())
}

func TestOptionalTime_ExplicitNull(t *testing.T) {
	var req TodoUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":null}`), &req))

	assert.True(t, req.DueDate.Set)
	assert.Nil(t, req.DueDate.Time)
	assert.False(t, req.Empty())
}

func TestOptionalTime_Value(t *testing.T) {
	var req TodoUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2026-03-01T10:00:00Z"}`), &req))

	require.True(t, req.DueDate.Set)
	require.NotNil(t, req.DueDate.Time)
	assert.True(t, req.DueDate.Time.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestTodoUpdateRequest_Empty(t *testing.T) {
	var req TodoUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.Empty())
}

func TestPriority(t *testing.T) {
	assert.Equal(t, "Medium", PriorityMedium.String())
	assert.True(t, PriorityTop.Valid())
	assert.False(t, Priority(7).Valid())
	assert.Equal(t, "Unknown", Priority(-1).String())
}

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringList
		wantErr bool
	}{
		{name: "single string", input: `"hello"`, want: StringList{"hello"}},
		{name: "array", input: `["a","b"]`, want: StringList{"a", "b"}},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_ResponseHidesPasswordHash(t *testing.T) {
	u := User{Email: "a@b.c", FirstName: "A", LastName: "B", PasswordHash: "secret"}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.Equal(t, "a@b.c", u.Response().Email)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 utc", input: "2025-01-01T10:00:00Z", want: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "rfc3339 offset", input: "2025-01-01T12:00:00+02:00", want: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "naive seconds", input: "2025-01-01T10:00:00", want: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "naive fraction", input: "2025-01-01T10:00:00.250", want: time.Date(2025, 1, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{name: "naive minutes", input: "2025-01-01T10:00", want: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "space separator", input: "2025-01-01 10:00:00", want: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}

func TestTodoCreateRequest_NaiveDueDate(t *testing.T) {
	var req TodoCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"naive","due_date":"2025-01-01T10:00:00","priority":3}`), &req))

	assert.Equal(t, "naive", req.Description)
	require.NotNil(t, req.Priority)
	assert.Equal(t, PriorityHigh, *req.Priority)
	require.NotNil(t, req.DueDate)
	assert.True(t, req.DueDate.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, req.DueDate.Location())
}

func TestTodoCreateRequest_DueDateAbsentOrNull(t *testing.T) {
	for _, body := range []string{`{"description":"x"}`, `{"description":"x","due_date":null}`} {
		var req TodoCreateRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Nil(t, req.DueDate, body)
	}
}

func TestTodoCreateRequest_InvalidDueDate(t *testing.T) {
	var req TodoCreateRequest
	assert.Error(t, json.Unmarshal([]byte(`{"description":"x","due_date":"next week"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"description":"x","due_date":20250101}`), &req))
}

func TestOptionalTime_NaiveValue(t *testing.T) {
	var req TodoUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2025-01-01T10:00"}`), &req))

	require.True(t, req.DueDate.Set)
	require.NotNil(t, req.DueDate.Time)
	assert.True(t, req.DueDate.Time.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)))
}
