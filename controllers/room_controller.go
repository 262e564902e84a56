package controllers

import (
	"net/http"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomPayload struct {
	HotelID       uint    `json:"hotel_id" binding:"required"`
	Code          string  `json:"code" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	IsActive      *bool   `json:"is_active"`
}

func (p *roomPayload) toModel() models.Room {
	r := models.Room{
		HotelID:       p.HotelID,
		Code:          p.Code,
		Type:          p.Type,
		Capacity:      p.Capacity,
		PricePerNight: p.PricePerNight,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		IsActive:      true,
	}
	if r.Capacity == 0 {
		r.Capacity = 2
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	return r
}

func (ctrl *RoomController) ListByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rooms, err := ctrl.Rooms.ListByHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room := payload.toModel()
	if err := ctrl.Rooms.Create(actorFromContext(c), &room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room := payload.toModel()
	updated, err := ctrl.Rooms.Update(actorFromContext(c), id, &room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Rooms.Delete(actorFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
