package store

import (
	"time"

	"github.com/MKhiriev/go-finance-advisor/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	userColumns = []string{"id", "email", "first_name", "last_name", "password_hash", "created_at"}
	todoColumns = []string{"id", "user_id", "description", "due_date", "is_completed", "created_at", "completed_at", "priority"}
)

// users

func insertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func selectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func selectUserByIDQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func updatePasswordHashQuery(b sq.StatementBuilderType, userID uuid.UUID, passwordHash string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// todos

func insertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todo.TableName()).
		Columns(todoColumns...).
		Values(todo.ID, todo.UserID, todo.Description, todo.DueDate, todo.IsCompleted, todo.CreatedAt, todo.CompletedAt, int(todo.Priority)).
		ToSql()
}

func selectTodosQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	return b.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func selectTodoQuery(b sq.StatementBuilderType, userID, todoID uuid.UUID) (string, []any, error) {
	return b.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}

// updateTodoQuery sets only the fields present in update. The caller handles
// an empty update without touching the database.
func updateTodoQuery(b sq.StatementBuilderType, userID, todoID uuid.UUID, update models.TodoUpdateRequest) (string, []any, error) {
	q := b.Update(models.Todo{}.TableName())
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}
	if update.DueDate.Set {
		q = q.Set("due_date", update.DueDate.Time)
	}
	if update.Priority != nil {
		q = q.Set("priority", int(*update.Priority))
	}

	return q.Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}

// completeTodoQuery keeps the first completion time on repeated calls.
func completeTodoQuery(b sq.StatementBuilderType, userID, todoID uuid.UUID, completedAt time.Time) (string, []any, error) {
	return b.Update(models.Todo{}.TableName()).
		Set("is_completed", true).
		Set("completed_at", sq.Expr("COALESCE(completed_at, ?)", completedAt)).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}

func deleteTodoQuery(b sq.StatementBuilderType, userID, todoID uuid.UUID) (string, []any, error) {
	return b.Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}
