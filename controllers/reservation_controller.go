package controllers

import (
	"net/http"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

type createReservationPayload struct {
	HotelID   uint   `json:"hotel_id" binding:"required"`
	RoomID    uint   `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	res, err := ctrl.Reservations.Create(actorFromContext(c), payload.HotelID, payload.RoomID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (ctrl *ReservationController) ListMyReservations(c *gin.Context) {
	list, err := ctrl.Reservations.ListByClient(actorFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := ctrl.Reservations.Get(actorFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Reservations.Cancel(actorFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.ReservationCancelled})
}

// ---- back office ----

type adminReservationPayload struct {
	Status    string `json:"status" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (ctrl *ReservationController) AdminListReservations(c *gin.Context) {
	list, err := ctrl.Reservations.AdminList(actorFromContext(c), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// AdminUpdateReservation overwrites status and dates directly; availability is
// not re-checked on manual back-office edits.
func (ctrl *ReservationController) AdminUpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload adminReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	res, err := ctrl.Reservations.AdminUpdate(actorFromContext(c), id,
		models.ReservationStatus(payload.Status), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) AdminDeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Reservations.AdminDelete(actorFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
