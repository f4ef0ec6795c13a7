package trips

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pondilore/middleware"
	"pondilore/models"
	"pondilore/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store  *Store
	Broker *Broker
}

func NewHandler(store *Store, broker *Broker) *Handler {
	return &Handler{Store: store, Broker: broker}
}

// GET /api/trips
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trips, err := h.Store.ListTrips(r.Context(), ident.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/trip/:id
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trip, err := h.Store.GetTrip(r.Context(), ps.ByName("id"))
	if err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}
	if trip.UserID != ident.UserID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// DELETE /api/trips/trip/:id?confirm=true
//
// Deletion is irreversible, so the explicit confirm flag stands in for the
// blocking confirmation prompt; without it nothing is touched.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	if err := h.Store.DeleteTrip(r.Context(), ident.UserID, ps.ByName("id")); err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip deleted"})
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// GET /api/trips/live — live trip list. Each message is the full newest-first
// snapshot; the first arrives immediately after connect.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	sub := h.Broker.Subscribe(ident.UserID)

	// initial snapshot goes only to this connection; a broadcast here would
	// re-deliver it to every other session of the same owner
	if snapshot, err := h.Store.ListTrips(r.Context(), ident.UserID); err == nil {
		sub.C <- snapshot
	}

	// reader: only there to notice the peer going away
	go func() {
		defer sub.Unsubscribe()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer conn.Close()
		for snapshot := range sub.C {
			data, err := json.Marshal(snapshot)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()
}
