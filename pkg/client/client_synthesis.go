package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type Speaker struct {
	Name  string `json:"name"`
	Voice string `json:"voice"`
}

type SynthesizeRequest struct {
	Text string `json:"text"`

	Speakers []Speaker `json:"speakers,omitempty"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`
}

type Synthesis struct {
	Content     []byte
	ContentType string
}

type SavedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

type ChunkFile struct {
	ChunkIndex int    `json:"chunk_index"`
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
}

// New synthesizes input and returns the framed audio.
func (r *SynthesisService) New(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	cfg := newRequestConfig(append(r.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodPost, "/tts", input)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Synthesis{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// NewFile synthesizes input and stores the result on the server.
func (r *SynthesisService) NewFile(ctx context.Context, input SynthesizeRequest, filename string, opts ...RequestOption) (*SavedFile, error) {
	cfg := newRequestConfig(append(r.Options, opts...)...)

	body := struct {
		SynthesizeRequest

		SaveToDisk bool   `json:"save_to_disk"`
		Filename   string `json:"filename,omitempty"`
	}{
		SynthesizeRequest: input,

		SaveToDisk: true,
		Filename:   filename,
	}

	resp, err := cfg.do(ctx, http.MethodPost, "/tts", body)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result SavedFile

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// NewChunked synthesizes each chunk independently; every chunk is stored
// as its own file on the server.
func (r *SynthesisService) NewChunked(ctx context.Context, chunks []string, speakers []Speaker, opts ...RequestOption) ([]ChunkFile, error) {
	cfg := newRequestConfig(append(r.Options, opts...)...)

	body := struct {
		Chunks   []string  `json:"chunks"`
		Speakers []Speaker `json:"speakers,omitempty"`
	}{
		Chunks:   chunks,
		Speakers: speakers,
	}

	resp, err := cfg.do(ctx, http.MethodPost, "/tts/stream", body)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result struct {
		AudioFiles []ChunkFile `json:"audio_files"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.AudioFiles, nil
}
