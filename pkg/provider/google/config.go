package google

import (
	"context"
	"net/http"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash-preview-tts"

// PrebuiltVoices is a static catalog of known prebuilt voice names. The
// provider has no listing endpoint, so the list is maintained by hand and
// may lag behind what the API accepts.
var PrebuiltVoices = []string{
	"Kore", "Puck", "Charon", "Krypton", "Fenrir",
	"Aoede", "Orpheus", "Pegasus", "Sage", "Tamara",
}

type Config struct {
	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) newClient(ctx context.Context) (*genai.Client, error) {
	config := &genai.ClientConfig{
		APIKey:  c.token,
		Backend: genai.BackendGeminiAPI,

		HTTPClient: c.client,
	}

	return genai.NewClient(ctx, config)
}
