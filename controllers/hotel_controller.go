package controllers

import (
	"net/http"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels       *services.HotelService
	Availability *services.AvailabilityService
}

func NewHotelController(hotels *services.HotelService, availability *services.AvailabilityService) *HotelController {
	return &HotelController{Hotels: hotels, Availability: availability}
}

// ListHotels is the public browse page: active hotels with optional
// ?search= and ?city= filters, plus the distinct city list for the filter UI.
func (ctrl *HotelController) ListHotels(c *gin.Context) {
	hotels, err := ctrl.Hotels.List(c.Query("search"), c.Query("city"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	cities, err := ctrl.Hotels.Cities()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotels": hotels, "cities": cities})
}

// GetHotel returns an active hotel with its active rooms. With ?start=&end=
// (YYYY-MM-DD) the room list is narrowed to rooms free over that range.
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := ctrl.Hotels.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if c.Query("start") != "" || c.Query("end") != "" {
		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}
		rooms, err := ctrl.Availability.ListAvailableRooms(id, start, end)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		hotel.Rooms = rooms
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// CheckAvailability answers GET /rooms/:id/availability?start=&end=.
func (ctrl *HotelController) CheckAvailability(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	available, err := ctrl.Availability.IsAvailable(roomID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":   roomID,
		"start":     start.Format("2006-01-02"),
		"end":       end.Format("2006-01-02"),
		"available": available,
	})
}

// parseDateRange reads ?start= and ?end= as dates and rejects empty or
// inverted ranges before any availability query runs.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		utils.JSONError(c, http.StatusBadRequest, "end date must be after start date")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ---- back office ----

type hotelPayload struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Stars       int    `json:"stars"`
	IsActive    *bool  `json:"is_active"`
}

func (p *hotelPayload) toModel() models.Hotel {
	h := models.Hotel{
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Stars:       p.Stars,
		IsActive:    true,
	}
	if h.Stars == 0 {
		h.Stars = 3
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	return h
}

func (ctrl *HotelController) AdminListHotels(c *gin.Context) {
	hotels, err := ctrl.Hotels.AdminList(actorFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (ctrl *HotelController) AdminGetHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := ctrl.Hotels.AdminGet(actorFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel := payload.toModel()
	if err := ctrl.Hotels.Create(actorFromContext(c), &hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel := payload.toModel()
	updated, err := ctrl.Hotels.Update(actorFromContext(c), id, &hotel)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Hotels.Delete(actorFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
