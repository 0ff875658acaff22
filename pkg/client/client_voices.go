package client

import (
	"context"
	"encoding/json"
	"net/http"
)

type VoiceService struct {
	Options []RequestOption
}

func NewVoiceService(opts ...RequestOption) VoiceService {
	return VoiceService{
		Options: opts,
	}
}

func (r *VoiceService) List(ctx context.Context, opts ...RequestOption) ([]string, error) {
	cfg := newRequestConfig(append(r.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodGet, "/voices", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result struct {
		AvailableVoices []string `json:"available_voices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.AvailableVoices, nil
}
