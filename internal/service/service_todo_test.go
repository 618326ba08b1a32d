package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/mock"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/internal/validators"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestTodoService(t *testing.T) (TodoService, *mock.MockTodoRepository) {
	t.Helper()

	repo := mock.NewMockTodoRepository(gomock.NewController(t))
	inner := NewTodoService(repo, logger.Nop()).(*todoService)
	inner.now = func() time.Time { return fixedNow }

	return NewTodoValidationService().Wrap(inner), repo
}

func returnTodo(_ context.Context, todo models.Todo) (models.Todo, error) {
	return todo, nil
}

// ─────────────────────────────────────────────
// CreateTodo
// ─────────────────────────────────────────────

func TestCreateTodo_DefaultPriority(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID := uuid.New()

	repo.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).DoAndReturn(returnTodo)

	todo, err := svc.CreateTodo(context.Background(), userID, models.TodoCreateRequest{Description: "  pay rent "})

	require.NoError(t, err)
	assert.Equal(t, userID, todo.UserID)
	assert.Equal(t, "pay rent", todo.Description)
	assert.Equal(t, models.PriorityMedium, todo.Priority)
	assert.Equal(t, fixedNow, todo.CreatedAt)
	assert.False(t, todo.IsCompleted)
	assert.Nil(t, todo.CompletedAt)
	assert.Equal(t, uuid.Version(7), todo.ID.Version())
}

func TestCreateTodo_ExplicitPriorityAndDueDate(t *testing.T) {
	svc, repo := newTestTodoService(t)
	priority := models.PriorityNormal
	due := time.Date(2026, 4, 1, 9, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	repo.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).DoAndReturn(returnTodo)

	todo, err := svc.CreateTodo(context.Background(), uuid.New(), models.TodoCreateRequest{
		Description: "file taxes",
		DueDate:     &due,
		Priority:    &priority,
	})

	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, todo.Priority)
	require.NotNil(t, todo.DueDate)
	assert.Equal(t, time.UTC, todo.DueDate.Location())
	assert.True(t, todo.DueDate.Equal(due))
}

func TestCreateTodo_Validation(t *testing.T) {
	tests := []struct {
		name    string
		userID  uuid.UUID
		request models.TodoCreateRequest
		wantErr error
	}{
		{
			name:    "blank description",
			userID:  uuid.New(),
			request: models.TodoCreateRequest{Description: "   "},
			wantErr: validators.ErrEmptyDescription,
		},
		{
			name:    "priority out of range",
			userID:  uuid.New(),
			request: models.TodoCreateRequest{Description: "x", Priority: func() *models.Priority { p := models.Priority(9); return &p }()},
			wantErr: validators.ErrInvalidPriority,
		},
		{
			name:    "no owner",
			userID:  uuid.Nil,
			request: models.TodoCreateRequest{Description: "x"},
			wantErr: ErrNoUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTodoService(t)

			_, err := svc.CreateTodo(context.Background(), tt.userID, tt.request)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// GetTodos / GetTodo
// ─────────────────────────────────────────────

func TestGetTodos(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID := uuid.New()
	want := []models.Todo{{ID: uuid.New(), UserID: userID, Description: "a"}}

	repo.EXPECT().GetTodos(gomock.Any(), userID).Return(want, nil)

	got, err := svc.GetTodos(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetTodo_NotFound(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()

	repo.EXPECT().GetTodo(gomock.Any(), userID, todoID).Return(models.Todo{}, store.ErrTodoNotFound)

	_, err := svc.GetTodo(context.Background(), userID, todoID)

	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestGetTodo_NilTodoID(t *testing.T) {
	svc, _ := newTestTodoService(t)

	_, err := svc.GetTodo(context.Background(), uuid.New(), uuid.Nil)

	assert.ErrorIs(t, err, validators.ErrInvalidTodoID)
}

// ─────────────────────────────────────────────
// UpdateTodo
// ─────────────────────────────────────────────

func TestUpdateTodo_OnlyProvidedFields(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()
	description := " new text "

	repo.EXPECT().UpdateTodo(gomock.Any(), userID, todoID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, update models.TodoUpdateRequest) (models.Todo, error) {
			require.NotNil(t, update.Description)
			assert.Equal(t, "new text", *update.Description)
			assert.Nil(t, update.Priority)
			assert.False(t, update.DueDate.Set)
			return models.Todo{ID: todoID, UserID: userID, Description: *update.Description}, nil
		})

	todo, err := svc.UpdateTodo(context.Background(), userID, todoID, models.TodoUpdateRequest{Description: &description})

	require.NoError(t, err)
	assert.Equal(t, "new text", todo.Description)
}

func TestUpdateTodo_EmptyRequestReturnsCurrent(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()
	current := models.Todo{ID: todoID, UserID: userID, Description: "unchanged"}

	repo.EXPECT().GetTodo(gomock.Any(), userID, todoID).Return(current, nil)

	todo, err := svc.UpdateTodo(context.Background(), userID, todoID, models.TodoUpdateRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, todo)
}

func TestUpdateTodo_BlankDescription(t *testing.T) {
	svc, _ := newTestTodoService(t)
	blank := ""

	_, err := svc.UpdateTodo(context.Background(), uuid.New(), uuid.New(), models.TodoUpdateRequest{Description: &blank})

	assert.ErrorIs(t, err, validators.ErrEmptyDescription)
}

// ─────────────────────────────────────────────
// CompleteTodo / DeleteTodo
// ─────────────────────────────────────────────

func TestCompleteTodo(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()

	repo.EXPECT().CompleteTodo(gomock.Any(), userID, todoID, fixedNow).
		Return(models.Todo{ID: todoID, IsCompleted: true, CompletedAt: &fixedNow}, nil)

	todo, err := svc.CompleteTodo(context.Background(), userID, todoID)

	require.NoError(t, err)
	assert.True(t, todo.IsCompleted)
	assert.Equal(t, &fixedNow, todo.CompletedAt)
}

func TestDeleteTodo(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()

	repo.EXPECT().DeleteTodo(gomock.Any(), userID, todoID).Return(nil)

	require.NoError(t, svc.DeleteTodo(context.Background(), userID, todoID))
}

func TestDeleteTodo_NotFound(t *testing.T) {
	svc, repo := newTestTodoService(t)
	userID, todoID := uuid.New(), uuid.New()

	repo.EXPECT().DeleteTodo(gomock.Any(), userID, todoID).Return(store.ErrTodoNotFound)

	assert.ErrorIs(t, svc.DeleteTodo(context.Background(), userID, todoID), store.ErrTodoNotFound)
}
