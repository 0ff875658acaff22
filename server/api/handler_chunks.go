package api

import (
	"encoding/json"
	"net/http"

	"github.com/voxlabs/chirp/pkg/provider"
	"github.com/voxlabs/chirp/pkg/storage"
)

func (h *Handler) handleSpeechChunked(w http.ResponseWriter, r *http.Request) {
	var req ChunkedRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &validationError{err: err})
		return
	}

	if len(req.Chunks) == 0 {
		writeError(w, newValidationError("missing 'chunks' in request body"))
		return
	}

	synthesizer, err := h.Synthesizer(req.Model)

	if err != nil {
		writeError(w, &validationError{err: err})
		return
	}

	options := &provider.SynthesizeOptions{
		Speakers: convertSpeakers(req.Speakers),
	}

	// Chunks are synthesized sequentially, one provider round trip each.
	// A failure aborts the request; files already written stay on disk.
	files := make([]ChunkFile, 0, len(req.Chunks))

	for i, chunk := range req.Chunks {
		synthesis, err := synthesizer.Synthesize(r.Context(), chunk, options)

		if err != nil {
			writeError(w, err)
			return
		}

		file, err := h.Store.Save(storage.ChunkFileName(i), convertAudio(synthesis))

		if err != nil {
			writeError(w, err)
			return
		}

		files = append(files, ChunkFile{
			ChunkIndex: i,

			Filename: file.Name,
			Path:     file.Path,
			Size:     file.Size,
		})
	}

	writeJson(w, ChunkedResponse{
		Message: "All chunks processed successfully",

		AudioFiles:  files,
		TotalChunks: len(req.Chunks),
	})
}
