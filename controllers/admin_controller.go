package controllers

import (
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController covers the back-office pieces that have no public
// counterpart: the dashboard and user management.
type AdminController struct {
	Users     *services.UserService
	Dashboard *services.DashboardService
}

func NewAdminController(users *services.UserService, dashboard *services.DashboardService) *AdminController {
	return &AdminController{Users: users, Dashboard: dashboard}
}

func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.Dashboard.Stats(actorFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.Users.AdminList(actorFromContext(c), c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

type adminUserPayload struct {
	Role     string `json:"role" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload adminUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	user, err := ctrl.Users.AdminUpdate(actorFromContext(c), id, payload.Role, *payload.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Users.AdminDelete(actorFromContext(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
