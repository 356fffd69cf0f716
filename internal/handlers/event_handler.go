package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kellyb9/kiro-test/internal/config"
	"github.com/kellyb9/kiro-test/internal/models"
	"github.com/kellyb9/kiro-test/internal/services"
)

const (
	minListLimit = 1
	maxListLimit = 1000
)

func CreateEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		ev, err := es.CreateEvent(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "create event", err, cfg.Debug)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(ev, "event created successfully"))
	}
}

func GetEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, err := es.GetEvent(c.Request.Context(), eventIDParam(c))
		if err != nil {
			respondError(c, "get event", err, cfg.Debug)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(ev, ""))
	}
}

func ListEvents(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(models.DefaultListLimit)))
		if err != nil || limit < minListLimit || limit > maxListLimit {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("limit must be between 1 and 1000"))
			return
		}

		filter := models.ListFilter{
			Status:    resolveStatusFilter(c),
			Organizer: c.Query("organizer"),
			Limit:     limit,
		}

		events, err := es.ListEvents(c.Request.Context(), filter)
		if err != nil {
			respondError(c, "list events", err, cfg.Debug)
			return
		}
		if events == nil {
			events = []*models.Event{}
		}

		c.JSON(http.StatusOK, models.ListResponse(events, len(events)))
	}
}

func UpdateEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		ev, err := es.UpdateEvent(c.Request.Context(), eventIDParam(c), &input)
		if err != nil {
			respondError(c, "update event", err, cfg.Debug)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(ev, "event updated successfully"))
	}
}

func DeleteEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := es.DeleteEvent(c.Request.Context(), eventIDParam(c)); err != nil {
			respondError(c, "delete event", err, cfg.Debug)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// eventIDParam returns the path id verbatim. Any non-blank string is a legal
// identifier, including ones that contain quote characters.
func eventIDParam(c *gin.Context) string {
	return c.Param("id")
}

// resolveStatusFilter folds the two accepted query parameter names into one
// filter value. "status" takes precedence over the legacy "status_filter"
// when both are supplied.
func resolveStatusFilter(c *gin.Context) string {
	if status := c.Query("status"); status != "" {
		return status
	}
	return c.Query("status_filter")
}

// respondError maps the error taxonomy to the HTTP contract. Internal store
// detail is only exposed when debug is enabled, and then only alongside the
// structured error, never in place of it.
func respondError(c *gin.Context, op string, err error, debug bool) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(verr.Fields))
	case errors.Is(err, models.ErrInvalidEventID), errors.Is(err, models.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrStoreUnavailable):
		res := models.ErrorResponse("service temporarily unavailable, please retry")
		if debug {
			res.Detail = err.Error()
		}
		c.Error(err)
		c.JSON(http.StatusServiceUnavailable, res)
	default:
		res := models.ErrorResponse("failed to " + op)
		if debug {
			res.Detail = err.Error()
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, res)
	}
}
