package google

import (
	"context"
	"errors"

	"github.com/voxlabs/chirp/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// The TTS models return raw 16-bit linear PCM at 24 kHz, mono. The response
// carries no format metadata, so these are contract constants.
const (
	sampleRate = 24000
	channels   = 1
)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	if model == "" {
		model = DefaultModel
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	client, err := s.newClient(ctx)

	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(input, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, convertConfig(options))

	if err != nil {
		return nil, convertError(err)
	}

	blob, err := toInlineData(resp)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     blob.Data,
		ContentType: "audio/l16",

		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// convertConfig requests audio-modality output and, when speakers are given,
// binds each speaker name to a prebuilt voice in request order. Voice names
// are not validated locally; an unknown name is surfaced by the provider.
func convertConfig(options *provider.SynthesizeOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
	}

	if len(options.Speakers) > 0 {
		var configs []*genai.SpeakerVoiceConfig

		for _, s := range options.Speakers {
			configs = append(configs, &genai.SpeakerVoiceConfig{
				Speaker: s.Name,

				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: s.Voice,
					},
				},
			})
		}

		config.SpeechConfig = &genai.SpeechConfig{
			MultiSpeakerVoiceConfig: &genai.MultiSpeakerVoiceConfig{
				SpeakerVoiceConfigs: configs,
			},
		}

		return config
	}

	if options.Voice != "" {
		config.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: options.Voice,
				},
			},
		}
	}

	return config
}

func toInlineData(resp *genai.GenerateContentResponse) (*genai.Blob, error) {
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}

		for _, p := range c.Content.Parts {
			if p.InlineData == nil {
				continue
			}

			return p.InlineData, nil
		}
	}

	return nil, errors.New("no audio data in response")
}

func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		return &provider.Error{
			Status:  apierr.Code,
			Message: apierr.Message,
		}
	}

	return err
}
