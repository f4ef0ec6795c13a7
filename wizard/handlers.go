package wizard

import (
	"encoding/json"
	"errors"
	"net/http"

	"pondilore/middleware"
	"pondilore/models"
	"pondilore/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler owns the HTTP surface of the wizard. The gateway and the trip
// store are injected so the pipeline can be exercised without the network.
type Handler struct {
	Sessions *SessionStore
	Gen      ItineraryGenerator
	Trips    TripCreator
}

func NewHandler(sessions *SessionStore, gen ItineraryGenerator, trips TripCreator) *Handler {
	return &Handler{Sessions: sessions, Gen: gen, Trips: trips}
}

type stateResponse struct {
	Step  string           `json:"step"`
	Draft models.TripDraft `json:"draft"`
	Error string           `json:"error,omitempty"`
}

func state(s *Session) stateResponse {
	return stateResponse{
		Step:  s.Step().String(),
		Draft: s.Draft(),
		Error: s.LastError(),
	}
}

// POST /api/wizard/open
func (h *Handler) Open(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Sign in to plan a trip")
		return
	}
	s := h.Sessions.Open(ident.UserID)
	utils.RespondWithJSON(w, http.StatusCreated, state(s))
}

// PATCH /api/wizard/draft
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var patch DraftPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.Update(patch)
	utils.RespondWithJSON(w, http.StatusOK, state(s))
}

// POST /api/wizard/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := s.Next(); err != nil {
		// dismissible: the step is unchanged, the message rides along
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, state(s))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, state(s))
}

// POST /api/wizard/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Back()
	utils.RespondWithJSON(w, http.StatusOK, state(s))
}

// POST /api/wizard/jump — the review summary's click-to-edit links.
// Forward jumps are silently refused.
func (h *Handler) Jump(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Step string `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	target, ok := stepFromName(req.Step)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown step")
		return
	}
	s.JumpBack(target)
	utils.RespondWithJSON(w, http.StatusOK, state(s))
}

// GET /api/wizard/review
func (h *Handler) Review(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"sections": s.Review(),
		"state":    state(s),
	})
}

// POST /api/wizard/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	trip, err := s.Generate(r.Context(), ident, h.Gen, h.Trips)
	if err != nil {
		var vErr *models.ValidationError
		var authErr *models.AuthRequiredError
		var genErr *models.GenerationError
		switch {
		case errors.Is(err, ErrGenerationInFlight):
			// duplicate click: no second gateway call was made
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrDraftConsumed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &authErr):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &genErr):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.Sessions.Drop(ident.UserID)
	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Sign in to plan a trip")
		return nil, false
	}
	s, ok := h.Sessions.Get(ident.UserID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "No trip in progress; open the wizard first")
		return nil, false
	}
	return s, true
}
