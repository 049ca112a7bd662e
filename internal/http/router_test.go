package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/school-activities/internal/application"
)

func TestRouter_RootRedirectsToStaticPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected status 307, got %d", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/static/index.html" {
		t.Fatalf("unexpected redirect target: %q", location)
	}
}

func TestRouter_RootRejectsNonGet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestRouter_ServesEmbeddedStaticPage(t *testing.T) {
	// /static/index.html is the root redirect target, so it has to answer
	// with the page itself rather than FileServer's canonical 301 back to
	// the directory.
	for _, target := range []string{"/static/index.html", "/static/"} {
		rec := httptest.NewRecorder()
		newTestRouter(&signupServiceStub{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %q, got %d", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Mergington High School") {
			t.Fatalf("expected landing page content for %q, got %q", target, rec.Body.String())
		}
	}
}

func TestRouter_ActivitiesRejectsNonGet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/activities", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestRouter_SignupRequiresPost(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club/signup?email=mia@mergington.edu", nil)
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestRouter_UnregisterRequiresDelete(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/unregister?email=mia@mergington.edu", nil)
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodDelete {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestRouter_UnknownActivityAction(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/promote", nil)
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_ActivityPathWithoutAction(t *testing.T) {
	for _, target := range []string{"/activities/Chess%20Club", "/activities/Chess%20Club/"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, target, nil)
		newTestRouter(&signupServiceStub{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 for %q, got %d", target, rec.Code)
		}
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&signupServiceStub{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_AppliesMiddlewareInOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	service := &signupServiceStub{
		listActivities: func(context.Context) (map[string]application.ActivityDetail, error) {
			return map[string]application.ActivityDetail{}, nil
		},
	}
	handler := &ActivityHandler{service: service, responder: newResponder(nil)}
	router := NewRouter(RouterConfig{
		Activities: handler,
		Middleware: []func(http.Handler) http.Handler{tag("outer"), tag("inner")},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("unexpected middleware order: %v", order)
	}
}
