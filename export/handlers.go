package export

import (
	"errors"
	"fmt"
	"net/http"

	"pondilore/middleware"
	"pondilore/models"
	"pondilore/trips"
	"pondilore/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Trips *trips.Store
}

func NewHandler(store *trips.Store) *Handler {
	return &Handler{Trips: store}
}

func (h *Handler) trip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (models.GeneratedTrip, bool) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Sign in to export a trip.")
		return models.GeneratedTrip{}, false
	}
	trip, err := h.Trips.GetTrip(r.Context(), ps.ByName("id"))
	if err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load trip")
		}
		return models.GeneratedTrip{}, false
	}
	if trip.UserID != ident.UserID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this trip")
		return models.GeneratedTrip{}, false
	}
	return trip, true
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := h.trip(w, r, ps)
	if !ok {
		return
	}
	shareURL := fmt.Sprintf("https://%s/trips/%s", r.Host, trip.TripID)
	data, err := TripPDF(trip, shareURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+utils.SanitizeFilename(trip.Draft.Name)+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) ICS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := h.trip(w, r, ps)
	if !ok {
		return
	}
	cal, err := TripICS(trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate calendar")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+utils.SanitizeFilename(trip.Draft.Name)+".ics")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(cal))
}
