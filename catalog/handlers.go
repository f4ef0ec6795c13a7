package catalog

import (
	"net/http"

	"pondilore/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/places
func GetPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, PlacesByCategory("all"))
}

// GET /api/places/category/:category
func GetPlacesByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, PlacesByCategory(ps.ByName("category")))
}

// GET /api/places/place/:id
func GetPlaceByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	place, ok := PlaceByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Place not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, place)
}

// GET /api/places/categories
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}
