package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voxlabs/chirp/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/voices", h.handleVoices)

	r.Post("/tts", h.handleSpeech)
	r.Post("/tts/stream", h.handleSpeechChunked)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, HealthResponse{
		Status:  "healthy",
		Service: "chirp",
	})
}

type validationError struct {
	err error
}

func (e *validationError) Error() string {
	return e.err.Error()
}

func (e *validationError) Unwrap() error {
	return e.err
}

func newValidationError(message string) error {
	return &validationError{
		err: errors.New(message),
	}
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

// writeError maps the error taxonomy to a status code at the handler
// boundary: validation faults are 400, everything else (provider and
// storage faults) is 500.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError

	var v *validationError

	if errors.As(err, &v) {
		code = http.StatusBadRequest
	}

	if code >= 500 {
		slog.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(ErrorResponse{
		Error: err.Error(),
	})
}
