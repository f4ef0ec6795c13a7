package trips

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pondilore/globals"
	"pondilore/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &middleware.Claims{
		Username: "asha",
		UserID:   userID,
		Role:     []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

// Declining the confirmation leaves everything untouched: the guard runs
// before any store access, so a handler wired to a nil collection must
// still answer 400 without reaching the database.
func TestDeleteRequiresConfirmation(t *testing.T) {
	h := NewHandler(NewStore(nil, nil), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/trips/trip/t1", nil)
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	w := httptest.NewRecorder()

	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "t1"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteRequiresIdentity(t *testing.T) {
	h := NewHandler(NewStore(nil, nil), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/trips/trip/t1?confirm=true", nil)
	w := httptest.NewRecorder()

	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "t1"}})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
