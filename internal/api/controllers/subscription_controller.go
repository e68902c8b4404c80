package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"subly/internal/models/response_models"
	"subly/internal/services"
	"subly/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionController(subscriptionService services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// ReissueSubscription godoc
// @Summary Reissue a subscription for the caller's latest payment
// @Description Used when a payment succeeded but subscription issuance did not happen
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/reissue [post]
func (s *SubscriptionController) ReissueSubscription(c *gin.Context) {

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	subscription, err := s.subscriptionService.ReissueSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subscription, "Subscription issued successfully")
}

// GetCurrentSubscription godoc
// @Summary Get the caller's current subscription
// @Description Returns null data when the caller has no unexpired subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/current [get]
func (s *SubscriptionController) GetCurrentSubscription(c *gin.Context) {

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	subscription, err := s.subscriptionService.GetCurrentSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if subscription == nil {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}

	utils.RespondSuccess(c, response_models.SubscriptionOutput{
		ID:            subscription.ID,
		ExpiredAt:     subscription.ExpiredAt,
		ExpiredAtText: utils.FormatRFC3339KST(utils.FromUnixSecondsKST(subscription.ExpiredAt)),
		Product: response_models.ProductOutput{
			ID:    subscription.Product.ID,
			Name:  subscription.Product.Name,
			Type:  string(subscription.Product.Type),
			Price: subscription.Product.PriceMinor,
		},
	}, "Current subscription")
}
