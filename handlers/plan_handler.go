package handlers

import (
	"fmt"
	"net/http"

	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/planner"
	"github.com/TripMitra/trip-mitra-backend/services"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/gin-gonic/gin"
)

// PlanHandler serves trip planning requests: free-text input goes in, either
// follow-up questions or a complete plan comes out.
type PlanHandler struct {
	planCache services.PlanCacheInterface
	aiService services.AIServiceInterface
}

func NewPlanHandler(planCache services.PlanCacheInterface, aiService services.AIServiceInterface) *PlanHandler {
	return &PlanHandler{
		planCache: planCache,
		aiService: aiService,
	}
}

// CreatePlanRequest is the request body for plan generation.
type CreatePlanRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
	UseAI    bool   `json:"useAI"`
}

// CreatePlanHandler godoc
// @Summary Generate a trip plan from free-text input
// @Description Parses the travel description and returns either follow-up questions for missing details or a complete plan with itinerary, flight and hotel recommendations
// @Tags plans
// @Accept json
// @Produce json
// @Param request body CreatePlanRequest true "Travel description, response language, and optional AI augmentation flag"
// @Success 200 {object} types.PlanResult "Follow-up questions or a complete plan"
// @Failure 400 {object} types.ErrorResponse "Bad request - Invalid input data"
// @Failure 429 {object} types.ErrorResponse "Too many requests"
// @Router /v1/plans [post]
func (h *PlanHandler) CreatePlanHandler(c *gin.Context) {
	var req CreatePlanRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	language := parseLanguage(req.Language)

	// The deterministic pipeline is cacheable; AI-augmented output is not.
	if !req.UseAI {
		if cached, ok := h.planCache.Get(c.Request.Context(), req.Text, language); ok {
			planCacheHitsTotal.Inc()
			planRequestsTotal.WithLabelValues(outcomeLabel(*cached)).Inc()
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result := planner.CreateTripPlan(req.Text, language)

	if !result.NeedsFollowUp() && req.UseAI {
		h.augmentItinerary(c, &result)
	}

	if !req.UseAI {
		h.planCache.Set(c.Request.Context(), req.Text, language, result)
	}

	planRequestsTotal.WithLabelValues(outcomeLabel(result)).Inc()
	c.JSON(http.StatusOK, result)
}

// augmentItinerary replaces the template day activities with AI-generated
// ones. Any failure keeps the template itinerary; the user never sees AI
// errors.
func (h *PlanHandler) augmentItinerary(c *gin.Context, result *types.PlanResult) {
	if h.aiService == nil || !h.aiService.Enabled() {
		return
	}

	log := logger.GetLogger()

	aiPlans, err := h.aiService.GenerateItinerary(c.Request.Context(), result.Plan.Parsed)
	if err != nil {
		log.Warnw("AI itinerary generation failed, keeping template output",
			"destination", result.Plan.Parsed.DestinationCity,
			"error", err)
		aiAugmentationsTotal.WithLabelValues("fallback").Inc()
		return
	}

	byDay := make(map[int]types.AIDayPlan, len(aiPlans))
	for _, p := range aiPlans {
		byDay[p.Day] = p
	}

	for i, day := range result.Plan.Itinerary.Plan {
		if aiDay, ok := byDay[day.Day]; ok {
			result.Plan.Itinerary.Plan[i].Activity = fmt.Sprintf("%s: %s", aiDay.Title, aiDay.Plan)
		}
	}
	aiAugmentationsTotal.WithLabelValues("success").Inc()
}

// GetQuestionsHandler godoc
// @Summary List trip planning guidance questions
// @Description Returns the fixed catalog of questions a travel assistant can walk a user through
// @Tags plans
// @Produce json
// @Param language query string false "Response language (english, hinglish, hindi)"
// @Success 200 {object} map[string]interface{} "Language and question catalog"
// @Router /v1/plans/questions [get]
func (h *PlanHandler) GetQuestionsHandler(c *gin.Context) {
	language := parseLanguage(c.Query("language"))
	c.JSON(http.StatusOK, gin.H{
		"language":  language,
		"questions": planner.TravelQuestions,
	})
}

// GetOptionsHandler godoc
// @Summary List flight and hotel options for a route
// @Description Returns mock bookable flight options between the two cities and hotel suggestions for the destination, themed by traveler type
// @Tags plans
// @Produce json
// @Param source query string false "Source city"
// @Param destination query string false "Destination city"
// @Param travelType query string false "Traveler type (family, solo, couple)"
// @Success 200 {object} map[string]interface{} "Flight and hotel options"
// @Router /v1/plans/options [get]
func (h *PlanHandler) GetOptionsHandler(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	travelType := parseTravelType(c.Query("travelType"))

	c.JSON(http.StatusOK, gin.H{
		"flights": planner.RecommendFlightOptions(source, destination),
		"hotels":  planner.RecommendHotels(destination, travelType),
	})
}

// parseTravelType maps a request traveler-type string to a known type,
// defaulting to unknown.
func parseTravelType(s string) types.TravelType {
	switch types.TravelType(s) {
	case types.TravelTypeFamily, types.TravelTypeSolo, types.TravelTypeCouple:
		return types.TravelType(s)
	default:
		return types.TravelTypeUnknown
	}
}

// parseLanguage maps a request language string to a supported language,
// defaulting to English.
func parseLanguage(s string) types.Language {
	switch types.Language(s) {
	case types.LanguageHinglish:
		return types.LanguageHinglish
	case types.LanguageHindi:
		return types.LanguageHindi
	default:
		return types.LanguageEnglish
	}
}

func outcomeLabel(result types.PlanResult) string {
	if result.NeedsFollowUp() {
		return "follow_up"
	}
	return "plan"
}
