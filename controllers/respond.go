package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the authenticated caller set by the auth
// middleware.
func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			actor.UserID = id
		}
	}
	if v, ok := c.Get(middleware.ContextRole); ok {
		if role, ok2 := v.(string); ok2 {
			actor.Role = role
		}
	}
	return actor
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses with
// user-displayable messages. Unknown errors are logged and stay generic.
func respondServiceError(c *gin.Context, err error) {
	var blocked *services.DependencyBlockedError
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "end date must be after start date")
	case errors.Is(err, services.ErrPastStartDate):
		utils.JSONError(c, http.StatusBadRequest, "start date cannot be in the past")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status value")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "this room is not available for these dates")
	case errors.Is(err, services.ErrAlreadyProcessed):
		utils.JSONError(c, http.StatusConflict, "this reservation has already been processed")
	case errors.Is(err, services.ErrAlreadyPaid):
		utils.JSONError(c, http.StatusConflict, "a paid reservation cannot be cancelled; please contact support")
	case errors.Is(err, services.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, "this reservation is already cancelled")
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "this email is already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden")
	case errors.As(err, &blocked):
		utils.JSONError(c, http.StatusConflict,
			fmt.Sprintf("cannot delete this %s: %d %s(s) depend on it; cancel or deactivate instead",
				blocked.Entity, blocked.Count, blocked.Blocker))
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error, please retry later")
	}
}
