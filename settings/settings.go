package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"pondilore/db"
	"pondilore/globals"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserSettings represents per-user app preferences.
type UserSettings struct {
	UserID        string `json:"userID,omitempty" bson:"userID"`
	Theme         string `json:"theme" bson:"theme"`
	Notifications bool   `json:"notifications" bson:"notifications"`
	Language      string `json:"language" bson:"language"`
	Currency      string `json:"currency" bson:"currency"`
	DefaultPace   string `json:"default_pace" bson:"default_pace"`
}

// Default settings if user settings don't exist
func getDefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		Language:      "english",
		Currency:      "INR",
		DefaultPace:   "Balanced",
	}
}

// Fetch user settings as an array (frontend expects this format)
func GetUserSettings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var userSettings UserSettings
	err := db.SettingsCollection.FindOne(context.TODO(), bson.M{"userID": userID}).Decode(&userSettings)
	if err == mongo.ErrNoDocuments {
		// Initialize settings if missing
		userSettings = getDefaultSettings(userID)
		_, _ = db.SettingsCollection.InsertOne(context.TODO(), userSettings)
	} else if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	settingsArray := []map[string]any{
		{"type": "theme", "value": userSettings.Theme, "description": "Choose theme mode"},
		{"type": "notifications", "value": userSettings.Notifications, "description": "Enable notifications"},
		{"type": "language", "value": userSettings.Language, "description": "Select language"},
		{"type": "currency", "value": userSettings.Currency, "description": "Currency for cost estimates"},
		{"type": "default_pace", "value": userSettings.DefaultPace, "description": "Default trip pace"},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settingsArray)
}

// Update a specific user setting
func UpdateUserSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	settingType := ps.ByName("type")

	validSettings := map[string]bool{
		"theme":         true,
		"notifications": true,
		"language":      true,
		"currency":      true,
		"default_pace":  true,
	}
	if !validSettings[settingType] {
		http.Error(w, "Invalid setting type", http.StatusBadRequest)
		return
	}

	var update struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	filter := bson.M{"userID": userID}
	updateDoc := bson.M{"$set": bson.M{settingType: update.Value}}

	opts := options.Update().SetUpsert(true)
	_, err := db.SettingsCollection.UpdateOne(context.TODO(), filter, updateDoc, opts)
	if err != nil {
		http.Error(w, "Failed to update setting", http.StatusInternalServerError)
		return
	}

	response := map[string]any{
		"status":  "success",
		"message": "Setting updated successfully",
		"type":    settingType,
		"value":   update.Value,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
