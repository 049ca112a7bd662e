package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/example/school-activities/internal/application"
	"github.com/example/school-activities/internal/catalog"
	"github.com/example/school-activities/internal/testfixtures"
)

// setupIntegration seeds a temporary store from the embedded catalog and
// returns a router wired to the real service stack.
func setupIntegration(t *testing.T) http.Handler {
	t.Helper()

	harness := testfixtures.NewSQLiteHarness(t)

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	idGenerator := testfixtures.NewIDGenerator("it").NextFunc()
	clock := testfixtures.NewClock(time.Time{})

	initializer := application.NewInitializer(harness.Store, harness.Activities, idGenerator, clock.NowFunc(), nil)
	if err := initializer.Initialize(context.Background(), cat); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	service := application.NewSignupService(harness.Activities, harness.Participants, idGenerator, clock.NowFunc())
	return NewRouter(RouterConfig{Activities: NewActivityHandler(service, nil)})
}

func doRequest(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func signupTarget(activity, email string) string {
	return fmt.Sprintf("/activities/%s/signup?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterTarget(activity, email string) string {
	return fmt.Sprintf("/activities/%s/unregister?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func TestIntegration_ListSeededActivities(t *testing.T) {
	router := setupIntegration(t)

	rec := doRequest(t, router, http.MethodGet, "/activities")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var activities map[string]application.ActivityDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(activities) != 9 {
		t.Fatalf("expected 9 seeded activities, got %d", len(activities))
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatalf("expected Chess Club in listing")
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected Chess Club capacity 12, got %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 {
		t.Fatalf("expected 2 seeded Chess Club participants, got %v", chess.Participants)
	}
}

func TestIntegration_SignupLifecycle(t *testing.T) {
	router := setupIntegration(t)
	const email = "mia@mergington.edu"

	rec := doRequest(t, router, http.MethodPost, signupTarget("Chess Club", email))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected signup status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var confirmation map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &confirmation); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if confirmation["message"] != "Signed up mia@mergington.edu for Chess Club" {
		t.Fatalf("unexpected confirmation message: %q", confirmation["message"])
	}

	// The new enrollment shows up in the listing.
	rec = doRequest(t, router, http.MethodGet, "/activities")
	var activities map[string]application.ActivityDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(activities["Chess Club"].Participants) != 3 {
		t.Fatalf("expected 3 Chess Club participants after signup, got %v", activities["Chess Club"].Participants)
	}

	// A repeated signup is rejected before capacity is considered.
	rec = doRequest(t, router, http.MethodPost, signupTarget("Chess Club", email))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected duplicate signup status 400, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, unregisterTarget("Chess Club", email))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected unregister status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &confirmation); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if confirmation["message"] != "Unregistered mia@mergington.edu from Chess Club" {
		t.Fatalf("unexpected confirmation message: %q", confirmation["message"])
	}

	rec = doRequest(t, router, http.MethodDelete, unregisterTarget("Chess Club", email))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected repeated unregister status 400, got %d", rec.Code)
	}
}

func TestIntegration_SignupFillsActivity(t *testing.T) {
	router := setupIntegration(t)

	// Math Club seeds 2 of 10 places; fill the remainder.
	for i := 0; i < 8; i++ {
		email := fmt.Sprintf("student-%d@mergington.edu", i)
		rec := doRequest(t, router, http.MethodPost, signupTarget("Math Club", email))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected signup %d to succeed, got %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	rec := doRequest(t, router, http.MethodPost, signupTarget("Math Club", "late@mergington.edu"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for full activity, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Activity is full" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestIntegration_UnknownActivity(t *testing.T) {
	router := setupIntegration(t)

	rec := doRequest(t, router, http.MethodPost, signupTarget("Knitting Circle", "mia@mergington.edu"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, unregisterTarget("Knitting Circle", "mia@mergington.edu"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
