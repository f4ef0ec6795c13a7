package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pondilore/db"
	"pondilore/middleware"
	"pondilore/models"
	"pondilore/rdx"
	"pondilore/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const userPicDir = "./static/userpic"

// GetProfile returns the signed-in user's profile, favoring the Redis
// copy when present.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, err := rdx.RdxGet("profile:" + ident.UserID); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": ident.UserID}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	user.Password = ""

	if body, err := json.Marshal(user); err == nil {
		if err := rdx.SetWithExpiry("profile:"+ident.UserID, string(body), 10*time.Minute); err != nil {
			log.Printf("Failed to cache profile: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile patches name / bio / email.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Bio   *string `json:"bio"`
		Email *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	updates := bson.M{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if len(updates) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	_, err := db.UserCollection.UpdateOne(r.Context(), bson.M{"userid": ident.UserID}, bson.M{"$set": updates})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	invalidateCachedProfile(ident.UserID)
	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}

// EditProfilePic stores a resized avatar under static/userpic.
func EditProfilePic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident := middleware.RequestIdentity(r)
	if !ident.SignedIn() {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing avatar file")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported image")
		return
	}

	if err := os.MkdirAll(userPicDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	avatar := imaging.Resize(img, 300, 0, imaging.Lanczos)
	fileName := ident.UserID + ".jpg"
	if err := imaging.Save(avatar, filepath.Join(userPicDir, fileName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	avatarPath := fmt.Sprintf("/static/userpic/%s", fileName)
	_, err = db.UserCollection.UpdateOne(r.Context(), bson.M{"userid": ident.UserID}, bson.M{"$set": bson.M{"avatar": avatarPath}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}

	invalidateCachedProfile(ident.UserID)
	utils.SendResponse(w, http.StatusOK, map[string]string{"avatar": avatarPath}, "Profile picture updated", nil)
}

func invalidateCachedProfile(userID string) {
	rdx.RdxDel("profile:" + userID)
}
