package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

// todoRepository is the SQL implementation of [TodoRepository]. Every query
// filters on user_id so a todo of another user behaves as missing.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository].
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner, todo *models.Todo) error {
	var priority int
	err := row.Scan(&todo.ID, &todo.UserID, &todo.Description, &todo.DueDate,
		&todo.IsCompleted, &todo.CreatedAt, &todo.CompletedAt, &priority)
	if err != nil {
		return err
	}
	todo.Priority = models.Priority(priority)

	return nil
}

// CreateTodo inserts todo. ID and CreatedAt are assigned by the caller.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	query, args, err := insertTodoQuery(r.db.builder, todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec(ctx, "*todoRepository.CreateTodo", query, args); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// GetTodos returns all todos of userID ordered by creation time.
func (r *todoRepository) GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTodosQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	r.db.logQuery(ctx, query, args)

	var todos []models.Todo
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		todos = make([]models.Todo, 0)
		for rows.Next() {
			var todo models.Todo
			if err := scanTodo(rows, &todo); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			todos = append(todos, todo)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodos").Msg("error selecting todos")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todos, nil
}

func (r *todoRepository) GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	query, args, err := selectTodoQuery(r.db.builder, userID, todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*todoRepository.GetTodo", query, args)
}

// UpdateTodo applies the fields present in update and returns the stored
// todo. An empty update returns the todo unchanged.
func (r *todoRepository) UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, update models.TodoUpdateRequest) (models.Todo, error) {
	if update.Empty() {
		return r.GetTodo(ctx, userID, todoID)
	}

	query, args, err := updateTodoQuery(r.db.builder, userID, todoID, update)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateAndGet(ctx, "*todoRepository.UpdateTodo", userID, todoID, query, args)
}

// CompleteTodo marks the todo completed. completedAt is stored only on the
// first call.
func (r *todoRepository) CompleteTodo(ctx context.Context, userID, todoID uuid.UUID, completedAt time.Time) (models.Todo, error) {
	query, args, err := completeTodoQuery(r.db.builder, userID, todoID, completedAt)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateAndGet(ctx, "*todoRepository.CompleteTodo", userID, todoID, query, args)
}

func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error {
	query, args, err := deleteTodoQuery(r.db.builder, userID, todoID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*todoRepository.DeleteTodo", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) updateAndGet(ctx context.Context, funcName string, userID, todoID uuid.UUID, query string, args []any) (models.Todo, error) {
	affected, err := r.exec(ctx, funcName, query, args)
	if err != nil {
		return models.Todo{}, err
	}
	if affected == 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	return r.GetTodo(ctx, userID, todoID)
}

// exec runs a DML statement and reports the number of affected rows.
func (r *todoRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	r.db.logQuery(ctx, query, args)

	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// queryOne runs a statement returning at most one todo row.
func (r *todoRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Todo, error) {
	log := logger.FromContext(ctx)
	r.db.logQuery(ctx, query, args)

	var todo models.Todo
	err := r.db.withRetry(ctx, func() error {
		return scanTodo(r.db.QueryRowContext(ctx, query, args...), &todo)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Todo{}, ErrTodoNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error executing todo query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}
