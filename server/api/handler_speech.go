package api

import (
	"encoding/json"
	"net/http"

	"github.com/voxlabs/chirp/pkg/audio"
	"github.com/voxlabs/chirp/pkg/provider"
	"github.com/voxlabs/chirp/pkg/storage"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &validationError{err: err})
		return
	}

	if req.Text == "" {
		writeError(w, newValidationError("missing 'text' in request body"))
		return
	}

	synthesizer, err := h.Synthesizer(req.Model)

	if err != nil {
		writeError(w, &validationError{err: err})
		return
	}

	options := &provider.SynthesizeOptions{
		Voice:    req.Voice,
		Speakers: convertSpeakers(req.Speakers),
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), req.Text, options)

	if err != nil {
		writeError(w, err)
		return
	}

	data := convertAudio(synthesis)

	if !req.SaveToDisk {
		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("Content-Disposition", `attachment; filename="tts_output.wav"`)

		w.Write(data)
		return
	}

	filename := req.Filename

	if filename == "" {
		filename = storage.FileName()
	}

	file, err := h.Store.Save(filename, data)

	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, FileResponse{
		Message: "Audio saved successfully",

		Filename: file.Name,
		Path:     file.Path,
		Size:     file.Size,
	})
}

func convertSpeakers(speakers []Speaker) []provider.Speaker {
	var result []provider.Speaker

	for _, s := range speakers {
		result = append(result, provider.Speaker{
			Name:  s.Name,
			Voice: s.Voice,
		})
	}

	return result
}

// convertAudio frames raw PCM responses as WAV. Providers that already
// return containerized audio pass through unchanged.
func convertAudio(synthesis *provider.Synthesis) []byte {
	if synthesis.ContentType != "audio/l16" {
		return synthesis.Content
	}

	format := audio.DefaultFormat()

	if synthesis.SampleRate > 0 {
		format.SampleRate = synthesis.SampleRate
	}

	if synthesis.Channels > 0 {
		format.Channels = synthesis.Channels
	}

	return audio.EncodeWAV(synthesis.Content, format)
}
