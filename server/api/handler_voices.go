package api

import (
	"net/http"

	"github.com/voxlabs/chirp/pkg/provider/google"
)

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	writeJson(w, VoicesResponse{
		AvailableVoices: google.PrebuiltVoices,
	})
}
