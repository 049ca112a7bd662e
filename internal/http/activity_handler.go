package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-activities/internal/application"
)

type signupService interface {
	ListActivities(ctx context.Context) (map[string]application.ActivityDetail, error)
	SignUp(ctx context.Context, activityName, email string) (application.Confirmation, error)
	Unregister(ctx context.Context, activityName, email string) (application.Confirmation, error)
}

// ActivityHandler serves the activity listing and enrollment endpoints.
type ActivityHandler struct {
	service   signupService
	responder responder
	logger    *slog.Logger
}

// NewActivityHandler creates a handler backed by the given service.
func NewActivityHandler(service signupService, logger *slog.Logger) *ActivityHandler {
	base := defaultLogger(logger)
	return &ActivityHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ActivityHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ActivityHandler", operation, attrs...)
}

// List responds with every activity keyed by name.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "activity list failed", "error", err)
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(activities)).InfoContext(r.Context(), "activities listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, activities)
}

// SignUp enrolls the email given as a query parameter in the activity named
// in the path.
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name, email, ok := h.enrollmentParams(w, r, "SignUp")
	if !ok {
		return
	}

	logger := h.log(r.Context(), "SignUp", "activity", name, "email", email)

	confirmation, err := h.service.SignUp(r.Context(), name, email)
	if err != nil {
		logger.ErrorContext(r.Context(), "signup failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "signup confirmed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", confirmation.Email, confirmation.ActivityName),
	})
}

// Unregister removes the email given as a query parameter from the activity
// named in the path.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name, email, ok := h.enrollmentParams(w, r, "Unregister")
	if !ok {
		return
	}

	logger := h.log(r.Context(), "Unregister", "activity", name, "email", email)

	confirmation, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		logger.ErrorContext(r.Context(), "unregister failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "unregister confirmed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", confirmation.Email, confirmation.ActivityName),
	})
}

func (h *ActivityHandler) enrollmentParams(w http.ResponseWriter, r *http.Request, operation string) (name, email string, ok bool) {
	name, found := ActivityNameFromContext(r.Context())
	if !found || strings.TrimSpace(name) == "" {
		h.log(r.Context(), operation, "error_kind", "bad_request").ErrorContext(r.Context(), "missing activity name in path")
		http.NotFound(w, r)
		return "", "", false
	}

	email = strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.log(r.Context(), operation, "activity", name, "error_kind", "bad_request").ErrorContext(r.Context(), "missing email parameter")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingEmail)
		return "", "", false
	}

	return name, email, true
}

type messageResponse struct {
	Message string `json:"message"`
}
