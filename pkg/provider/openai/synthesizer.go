package openai

import (
	"context"
	"errors"
	"io"

	"github.com/voxlabs/chirp/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := openai.AudioSpeechNewParamsVoiceAlloy

	if options.Voice != "" {
		voice = openai.AudioSpeechNewParamsVoice(options.Voice)
	}

	params := openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(s.model),
		Input: content,

		Voice: voice,

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
	}

	if options.Instructions != "" {
		params.Instructions = openai.String(options.Instructions)
	}

	result, err := s.speech.New(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: "audio/wav",
	}, nil
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.Error{
			Status:  apierr.StatusCode,
			Message: apierr.Message,
		}
	}

	return err
}
