package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ParsedTripDetails is the best-effort structured guess extracted from a free
// text utterance. Zero values mean "not mentioned"; IsRoundTrip is a pointer
// because "not mentioned" and "one way" are different answers.
type ParsedTripDetails struct {
	Intent        string `json:"intent"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	TravelDate    string `json:"travel_date"`
	ReturnDate    string `json:"return_date"`
	BudgetTier    string `json:"budget_tier"`
	TransportMode string `json:"transport_mode"`
	PartySize     int    `json:"party_size"`
	IsRoundTrip   *bool  `json:"is_round_trip"`
}

// UtteranceParserInterface is the NLP extraction collaborator. A normal
// "could not parse" case returns an all-zero ParsedTripDetails and a nil
// error; errors are reserved for transport-level failures, and callers treat
// those as a miss too.
type UtteranceParserInterface interface {
	ParseTripUtterance(ctx context.Context, message string) (ParsedTripDetails, error)
}

const extractionPrompt = `You are a travel assistant API. Extract structured trip information from the user's message.

Reply ONLY with a single valid JSON object in this exact format:
{
  "intent": "book_trip",
  "origin": "Departure city",
  "destination": "Destination city",
  "travel_date": "Date in natural language (e.g. '30 August', 'tomorrow')",
  "return_date": "Return date if mentioned",
  "budget_tier": "Luxury, Medium or Budget-friendly",
  "transport_mode": "Train, Bus or Flight",
  "party_size": 2,
  "is_round_trip": false
}

Use null for every field the message does not mention. Do not make up information. No extra text.`

// OpenAIUtteranceParser extracts trip details with a chat completion.
type OpenAIUtteranceParser struct {
	client *openai.Client
	model  string
}

func NewOpenAIUtteranceParser(apiKey, baseURL, model string) UtteranceParserInterface {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIUtteranceParser{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIUtteranceParser) ParseTripUtterance(ctx context.Context, message string) (ParsedTripDetails, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		log.Printf("NLP extraction failed: %v", err)
		return ParsedTripDetails{}, nil
	}
	if len(resp.Choices) == 0 {
		return ParsedTripDetails{}, nil
	}
	return decodeParsedDetails(resp.Choices[0].Message.Content), nil
}

// decodeParsedDetails tolerates markdown fences and malformed JSON: anything
// unusable degrades to an empty extraction rather than an error.
func decodeParsedDetails(raw string) ParsedTripDetails {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed ParsedTripDetails
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("NLP response is not valid JSON: %v", err)
		return ParsedTripDetails{}
	}
	return parsed
}
