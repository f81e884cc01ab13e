package nlp_fx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"tripy/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideUtteranceParser,
	ProvideGeocoder,
)

// NLPConfig holds configuration for the utterance extraction client
type NLPConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideUtteranceParser creates an extraction client based on environment variables
func ProvideUtteranceParser() (utils.UtteranceParserInterface, error) {
	config := getNLPConfig()

	log.Printf("Initializing %s utterance parser with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIUtteranceParser(config.APIKey, os.Getenv("OPENAI_BASE_URL"), config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiUtteranceParser(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported NLP provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideGeocoder() utils.GeocoderInterface {
	return utils.NewNominatimGeocoder(os.Getenv("NOMINATIM_BASE_URL"))
}

// getNLPConfig reads configuration from environment variables
func getNLPConfig() NLPConfig {
	provider := getEnvWithDefault("NLP_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return NLPConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
