package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/services"
)

type skillHandler struct {
	responder    Responder
	skillService *services.SkillService
}

func newSkillHandler(skillService *services.SkillService) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:    NewResponder(logger),
		skillService: skillService,
	}
}

// getAllSkills returns the static skills list
// @Summary Get all skills
// @Tags Skills
// @Produce json
// @Success 200 {array} models.Skill "Skills grouped by category"
// @Router /skills [get]
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillService.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}
