package config

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/voxlabs/chirp/pkg/limiter"
	"github.com/voxlabs/chirp/pkg/otel"
	"github.com/voxlabs/chirp/pkg/provider"
	"github.com/voxlabs/chirp/pkg/provider/google"
	"github.com/voxlabs/chirp/pkg/provider/openai"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`

	Proxy *proxyConfig `yaml:"proxy"`
}

type synthesizerContext struct {
	Client *http.Client

	Limiter *rate.Limiter
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	if f.Synthesizers.IsZero() {
		return cfg.registerDefaultSynthesizer()
	}

	var configs map[string]synthesizerConfig

	if err := f.Synthesizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Synthesizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := synthesizerContext{
			Limiter: createLimiter(config.Limit),
		}

		if config.Proxy != nil {
			client, err := config.Proxy.proxyClient()

			if err != nil {
				return err
			}

			context.Client = client
		}

		synthesizer, err := createSynthesizer(config, context)

		if err != nil {
			return err
		}

		synthesizer = limiter.NewSynthesizer(context.Limiter, synthesizer)
		synthesizer = otel.NewSynthesizer(config.Type, config.Model, synthesizer)

		cfg.RegisterSynthesizer(id, synthesizer)
	}

	return nil
}

func (cfg *Config) registerDefaultSynthesizer() error {
	token := os.Getenv("GEMINI_API_KEY")

	if token == "" {
		return errMissingKey
	}

	synthesizer, err := google.NewSynthesizer(google.DefaultModel, google.WithToken(token))

	if err != nil {
		return err
	}

	cfg.RegisterSynthesizer(google.DefaultModel, otel.NewSynthesizer("google", google.DefaultModel, synthesizer))

	return nil
}

func createSynthesizer(cfg synthesizerConfig, context synthesizerContext) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		return googleSynthesizer(cfg, context)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg, context)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func googleSynthesizer(cfg synthesizerConfig, context synthesizerContext) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if context.Client != nil {
		options = append(options, google.WithClient(context.Client))
	}

	return google.NewSynthesizer(cfg.Model, options...)
}

func openaiSynthesizer(cfg synthesizerConfig, context synthesizerContext) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if context.Client != nil {
		options = append(options, openai.WithClient(context.Client))
	}

	return openai.NewSynthesizer(cfg.URL, cfg.Model, options...)
}

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyClient() (*http.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyURL(proxyURL)

	return &http.Client{
		Transport: tr,
	}, nil
}
