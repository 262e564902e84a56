package controllers

import (
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// PayReservation runs the simulated payment for a pending reservation and
// returns the generated invoice.
func (ctrl *PaymentController) PayReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := ctrl.Payments.Pay(actorFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *PaymentController) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := ctrl.Payments.GetInvoice(actorFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *PaymentController) DownloadInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	path, name, err := ctrl.Payments.InvoiceFile(actorFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, name)
}

// AdminListPayments is the back-office payment list with ?status= and ?mode=
// filters.
func (ctrl *PaymentController) AdminListPayments(c *gin.Context) {
	list, err := ctrl.Payments.ListPayments(actorFromContext(c), c.Query("status"), c.Query("mode"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
