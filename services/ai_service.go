package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TripMitra/trip-mitra-backend/config"
	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/types"
	openai "github.com/sashabaranov/go-openai"
)

// AIServiceInterface defines the contract for AI itinerary augmentation.
// Implementations must honor the fallback contract: on any failure the caller
// keeps the deterministic template itinerary, so errors here never surface to
// the end user.
type AIServiceInterface interface {
	Enabled() bool
	GenerateItinerary(ctx context.Context, intent types.TripIntent) ([]types.AIDayPlan, error)
}

const systemPrompt = "You generate travel itineraries. Output valid JSON only. " +
	"Be specific with place names, activities, and food. " +
	"Use time blocks (Morning/Afternoon/Evening). No markdown, no filler text."

// AIService generates destination-specific itineraries via OpenAI chat
// completions. A nil client (no API key configured) disables the service.
type AIService struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

func NewAIService(cfg config.OpenAIConfig) *AIService {
	var client *openai.Client
	if cfg.APIKey != "" {
		client = openai.NewClient(cfg.APIKey)
	}
	return &AIService{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// Enabled reports whether an API key was configured.
func (s *AIService) Enabled() bool {
	return s.client != nil
}

// GenerateItinerary asks the model for a day-wise itinerary matching the
// AIDayPlan contract. The response must be valid JSON with a contiguous,
// fully-populated itinerary array; anything else is rejected so the caller
// falls back to the template output.
func (s *AIService) GenerateItinerary(ctx context.Context, intent types.TripIntent) ([]types.AIDayPlan, error) {
	log := logger.GetLogger()
	if s.client == nil {
		return nil, fmt.Errorf("ai service is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildItineraryPrompt(intent)},
		},
	})
	if err != nil {
		log.Warnw("AI itinerary request failed, falling back to templates", "error", err)
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Warn("AI itinerary response empty, falling back to templates")
		return nil, fmt.Errorf("empty completion response")
	}

	itinerary, err := parseItineraryResponse(resp.Choices[0].Message.Content, intent.NumberOfDays)
	if err != nil {
		log.Warnw("AI itinerary response invalid, falling back to templates", "error", err)
		return nil, err
	}
	return itinerary, nil
}

// buildItineraryPrompt renders the user prompt for the completion request.
// The traveler-type note steers tone and activity selection.
func buildItineraryPrompt(intent types.TripIntent) string {
	var note string
	switch intent.TravelType {
	case types.TravelTypeFamily:
		note = "This is a family trip - keep activities family-friendly, safe, and suitable for all ages. " +
			"Include kid-friendly spots and avoid late-night or intense activities."
	case types.TravelTypeCouple:
		note = "This is a couple trip - include romantic spots, leisure activities, and experiences for two."
	case types.TravelTypeSolo:
		note = "This is a solo trip - include flexible activities, social opportunities, and safe exploration options."
	default:
		note = "Keep activities practical and enjoyable for general travelers."
	}

	return fmt.Sprintf(`Generate a %d-day itinerary for %s to %s.

%s

Grounding requirements (no exceptions):
- Each time block must name real, destination-specific landmarks, attractions, neighborhoods, or famous experiences. No generic placeholders.
- Always include well-known, iconic, must-visit places for the destination city across the trip.
- Balance sightseeing, food, culture, and downtime; keep a relaxed, realistic pace.

Trip flow rules:
- Day 1: Arrival logistics, light exploration near stay, one iconic/easy nearby highlight.
- Middle days: Cover top landmarks + a local cultural/food experience each day.
- Last day: One meaningful stop, checkout, and departure prep.

Respond with ONLY valid JSON. No markdown, no explanations.

{
  "itinerary": [
    {
      "day": 1,
      "title": "Arrival & First Impressions",
      "plan": "Morning: ... Afternoon: ... Evening: ..."
    }
  ]
}`,
		intent.NumberOfDays, intent.SourceCity, intent.DestinationCity, note)
}

// parseItineraryResponse validates the completion content against the
// AIDayPlan contract: a JSON object with an itinerary array whose entries all
// carry a positive day number, a title, and a plan. expectedDays of 0 skips
// the length check.
func parseItineraryResponse(content string, expectedDays int) ([]types.AIDayPlan, error) {
	var parsed struct {
		Itinerary []types.AIDayPlan `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON in completion: %w", err)
	}

	if len(parsed.Itinerary) == 0 {
		return nil, fmt.Errorf("completion has no itinerary entries")
	}
	if expectedDays > 0 && len(parsed.Itinerary) != expectedDays {
		return nil, fmt.Errorf("completion has %d days, expected %d", len(parsed.Itinerary), expectedDays)
	}

	for i, day := range parsed.Itinerary {
		if day.Day <= 0 || day.Title == "" || day.Plan == "" {
			return nil, fmt.Errorf("itinerary entry %d is missing required fields", i)
		}
	}
	return parsed.Itinerary, nil
}
