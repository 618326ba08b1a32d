package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return
	}

	var request models.TodoCreateRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("todo_id", todo.ID.String()).Msg("todo created")
	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return
	}

	todos, err := h.services.TodoService.GetTodos(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(len(todos)))
	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := h.todoRequestIDs(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.GetTodo(r.Context(), userID, todoID)
	if err != nil {
		writeTodoError(w, r, todoID, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := h.todoRequestIDs(w, r)
	if !ok {
		return
	}

	var request models.TodoUpdateRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), userID, todoID, request)
	if err != nil {
		writeTodoError(w, r, todoID, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) completeTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := h.todoRequestIDs(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.CompleteTodo(r.Context(), userID, todoID)
	if err != nil {
		writeTodoError(w, r, todoID, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := h.todoRequestIDs(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.DeleteTodo(r.Context(), userID, todoID); err != nil {
		writeTodoError(w, r, todoID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// todoRequestIDs resolves the caller and the {todoID} path parameter. On
// failure the error response has been written and ok is false.
func (h *Handler) todoRequestIDs(w http.ResponseWriter, r *http.Request) (userID, todoID uuid.UUID, ok bool) {
	userID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return uuid.Nil, uuid.Nil, false
	}

	todoID, err := todoIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, todoID, true
}

func writeTodoError(w http.ResponseWriter, r *http.Request, todoID uuid.UUID, err error) {
	if errors.Is(err, store.ErrTodoNotFound) {
		logger.FromRequest(r).Debug().Err(err).Send()
		writeHTTPError(w, http.StatusNotFound, fmt.Sprintf("Todo with id %s not found", todoID))
		return
	}
	writeError(w, r, err)
}
