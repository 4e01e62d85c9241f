package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/TripMitra/trip-mitra-backend/errors"
	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/store"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/gin-gonic/gin"
)

// TripHandler handles the My Trips surface: saving generated plans and
// retrieving them later.
type TripHandler struct {
	tripStore store.TripStore
}

func NewTripHandler(tripStore store.TripStore) *TripHandler {
	return &TripHandler{tripStore: tripStore}
}

// SaveTripRequest is the request body for saving a plan.
type SaveTripRequest struct {
	Name      string         `json:"name" binding:"required"`
	InputText string         `json:"inputText"`
	Language  string         `json:"language"`
	Plan      types.TripPlan `json:"plan" binding:"required"`
}

// SaveTripHandler godoc
// @Summary Save a generated trip plan
// @Description Persists a plan under a user-chosen name so it can be retrieved later
// @Tags trips
// @Accept json
// @Produce json
// @Param request body SaveTripRequest true "Trip name and plan payload"
// @Success 201 {object} types.SavedTrip "Saved trip"
// @Failure 400 {object} types.ErrorResponse "Bad request - Invalid input data"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /v1/trips [post]
func (h *TripHandler) SaveTripHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req SaveTripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	trip := types.SavedTrip{
		Name:      req.Name,
		InputText: req.InputText,
		Language:  parseLanguage(req.Language),
		Plan:      req.Plan,
	}

	id, err := h.tripStore.Create(c.Request.Context(), trip)
	if err != nil {
		log.Errorw("Failed to save trip", "name", req.Name, "error", err)
		_ = c.Error(apperrors.NewDatabaseError(err))
		c.Abort()
		return
	}

	saved, err := h.tripStore.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Errorw("Failed to load trip after save", "tripID", id, "error", err)
		_ = c.Error(apperrors.NewDatabaseError(err))
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListTripsHandler godoc
// @Summary List saved trips
// @Description Returns all saved trips, newest first
// @Tags trips
// @Produce json
// @Success 200 {array} types.SavedTrip "Saved trips"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /v1/trips [get]
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	trips, err := h.tripStore.List(c.Request.Context())
	if err != nil {
		logger.GetLogger().Errorw("Failed to list trips", "error", err)
		_ = c.Error(apperrors.NewDatabaseError(err))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, trips)
}

// GetTripHandler godoc
// @Summary Get a saved trip
// @Description Returns a single saved trip by its ID
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} types.SavedTrip "Saved trip"
// @Failure 404 {object} types.ErrorResponse "Trip not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /v1/trips/{id} [get]
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	id := c.Param("id")

	trip, err := h.tripStore.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.TripNotFound(id))
		} else {
			logger.GetLogger().Errorw("Failed to get trip", "tripID", id, "error", err)
			_ = c.Error(apperrors.NewDatabaseError(err))
		}
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTripHandler godoc
// @Summary Delete a saved trip
// @Description Removes a saved trip by its ID
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 204 "Trip deleted"
// @Failure 404 {object} types.ErrorResponse "Trip not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /v1/trips/{id} [delete]
func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.tripStore.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.TripNotFound(id))
		} else {
			logger.GetLogger().Errorw("Failed to delete trip", "tripID", id, "error", err)
			_ = c.Error(apperrors.NewDatabaseError(err))
		}
		c.Abort()
		return
	}

	c.Status(http.StatusNoContent)
}

// bindJSONOrError binds the request body, reporting a validation error on
// failure. Returns true when binding succeeded.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		c.Abort()
		return false
	}
	return true
}
