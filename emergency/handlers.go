package emergency

import (
	"net/http"
	"pondilore/utils"

	"github.com/julienschmidt/httprouter"
)

func GetEmergencyDirectory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, GetDirectory())
}

func GetHelplines(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, directory.Helplines)
}
