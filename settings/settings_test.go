package settings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pondilore/middleware"

	"github.com/julienschmidt/httprouter"
)

// Websocket-upgrade requests pass through Authenticate without a user in
// the context; the handlers must answer 401, never crash.
func TestGetUserSettingsWithoutIdentity(t *testing.T) {
	h := middleware.Authenticate(GetUserSettings)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	w := httptest.NewRecorder()

	h(w, req, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUpdateUserSettingWithoutIdentity(t *testing.T) {
	h := middleware.Authenticate(UpdateUserSetting)

	req := httptest.NewRequest(http.MethodPut, "/api/settings/theme", strings.NewReader(`{"value":"dark"}`))
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	w := httptest.NewRecorder()

	h(w, req, httprouter.Params{{Key: "type", Value: "theme"}})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
