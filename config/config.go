package config

import (
	"bytes"
	"errors"
	"os"

	"github.com/voxlabs/chirp/pkg/auth"
	"github.com/voxlabs/chirp/pkg/auth/static"
	"github.com/voxlabs/chirp/pkg/provider"
	"github.com/voxlabs/chirp/pkg/storage"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort      = "5000"
	DefaultOutputDir = "/app/audio_output"
)

type Config struct {
	Address string

	Authorizer auth.Provider

	Store *storage.Store

	synthesizer map[string]provider.Synthesizer
}

// Parse loads the optional YAML configuration at path and fills the gaps
// from the environment (GEMINI_API_KEY, AUDIO_OUTPUT_DIR, PORT, API_TOKEN).
// When no synthesizers are configured, a Gemini synthesizer is built from
// GEMINI_API_KEY; a missing key is a startup error.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: parseAddress(file),
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerStore(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Token string `yaml:"token"`

	Output string `yaml:"output"`

	Synthesizers yaml.Node `yaml:"synthesizers"`
}

func parseFile(path string) (*configFile, error) {
	if path == "" {
		path = "config.yaml"

		if _, err := os.Stat(path); err != nil {
			return &configFile{}, nil
		}
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func parseAddress(f *configFile) string {
	if f.Address != "" {
		return f.Address
	}

	port := os.Getenv("PORT")

	if port == "" {
		port = DefaultPort
	}

	return ":" + port
}

func (c *Config) registerAuthorizer(f *configFile) error {
	token := f.Token

	if token == "" {
		token = os.Getenv("API_TOKEN")
	}

	if token == "" {
		return nil
	}

	p, err := static.New(token)

	if err != nil {
		return err
	}

	c.Authorizer = p

	return nil
}

func (c *Config) registerStore(f *configFile) error {
	dir := f.Output

	if dir == "" {
		dir = os.Getenv("AUDIO_OUTPUT_DIR")
	}

	if dir == "" {
		dir = DefaultOutputDir
	}

	store, err := storage.New(dir)

	if err != nil {
		return err
	}

	c.Store = store

	return nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

var errMissingKey = errors.New("GEMINI_API_KEY environment variable is not set")
