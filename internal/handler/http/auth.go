package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterUserRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, ok := h.authenticate(w, r, request)
	if !ok {
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
		User:        user.Response(),
	}, http.StatusOK)
}

// issueToken is the OAuth2 password flow: form fields username and password.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeValidationError(w, "body: invalid form data")
		return
	}

	request := models.LoginRequest{
		Email:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err := h.validator.Validate(r.Context(), &request); err != nil {
		writeError(w, r, err)
		return
	}

	_, token, ok := h.authenticate(w, r, request)
	if !ok {
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// authenticate checks the credentials and issues a token. On failure the
// error response has been written and ok is false.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, request models.LoginRequest) (models.User, models.Token, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, models.Token{}, false
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, models.Token{}, false
	}

	log.Debug().Str("user_id", user.ID.String()).Msg("user successfully logged in")
	return user, token, true
}
