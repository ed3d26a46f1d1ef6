package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService *services.AuthService
	tokens      *auth.TokenManager
}

func newAuthHandler(authService *services.AuthService, tokens *auth.TokenManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
		tokens:      tokens,
	}
}

// RegisterRequest is the JSON body for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated user
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// register creates a new user account
// @Summary Register
// @Description Creates a new user account with a unique username and email. The password is hashed before storing.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerRequest body RegisterRequest true "Registration data"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Failure 409 {object} ErrorResponse "Conflict - Username or email already taken"
// @Router /register [post]
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("register", err))
			return
		}

		user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, user)
	}
}

// login authenticates a user and issues a bearer token
// @Summary Login
// @Description Verifies credentials and returns a signed token. The error message does not reveal whether the username or the password was wrong.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Token and user"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid username or password"
// @Router /login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Issue(user.ID)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to issue token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token, User: *user})
	}
}

// logout acknowledges a logout. Tokens are stateless; the client discards
// its copy.
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Success message"
// @Router /logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}
