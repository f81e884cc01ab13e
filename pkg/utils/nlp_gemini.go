package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiUtteranceParser is the free-tier alternative to the OpenAI parser,
// selected with NLP_PROVIDER=gemini.
type GeminiUtteranceParser struct {
	client *genai.Client
	model  string
}

func NewGeminiUtteranceParser(apiKey, model string) (UtteranceParserInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiUtteranceParser{client: client, model: model}, nil
}

func (p *GeminiUtteranceParser) ParseTripUtterance(ctx context.Context, message string) (ParsedTripDetails, error) {
	m := p.client.GenerativeModel(p.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0)

	resp, err := m.GenerateContent(ctx,
		genai.Text(extractionPrompt),
		genai.Text("User message: "+message))
	if err != nil {
		log.Printf("Gemini NLP extraction failed: %v", err)
		return ParsedTripDetails{}, nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ParsedTripDetails{}, nil
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw += string(text)
		}
	}
	return decodeParsedDetails(raw), nil
}
