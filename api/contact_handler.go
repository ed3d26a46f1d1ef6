package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type contactHandler struct {
	responder      Responder
	logger         zerolog.Logger
	contactService *services.ContactService
}

func newContactHandler(contactService *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		contactService: contactService,
	}
}

// ContactRequest is the JSON body for the public contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact appends a message to the contact inbox
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact form data"
// @Success 201 {object} models.Contact "Stored message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		contact, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, contact)
	}
}
