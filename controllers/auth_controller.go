package controllers

import (
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users       *services.UserService
	JWTSecret   string
	TokenTTLMin int
}

func NewAuthController(users *services.UserService, jwtSecret string, tokenTTLMin int) *AuthController {
	return &AuthController{Users: users, JWTSecret: jwtSecret, TokenTTLMin: tokenTTLMin}
}

type registerPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	user, err := ctrl.Users.Register(payload.FirstName, payload.LastName, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.NewAccessToken(ctrl.JWTSecret, user.ID, user.Role, ctrl.TokenTTLMin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":      token.Token,
		"expires_at": token.Exp,
		"user":       user,
	})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	actor := actorFromContext(c)
	user, err := ctrl.Users.Get(actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
