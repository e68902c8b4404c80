package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"subly/internal/models/request_models"
	"subly/internal/services"
	"subly/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Checkout godoc
// @Summary Purchase a product through the mocked gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Checkout Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) Checkout(c *gin.Context) {

	var request request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	checkout, err := p.paymentService.Checkout(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout processed")
}

// Refund godoc
// @Summary Refund the caller's latest paid payment through the mocked gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.RefundRequest true "Refund Request"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/refund [post]
func (p *PaymentController) Refund(c *gin.Context) {

	var request request_models.RefundRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	refund, err := p.paymentService.Refund(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, refund, "Refund processed")
}
