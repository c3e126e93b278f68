package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (p *PaymentController) ListPlans(c *gin.Context) {
	plans, err := p.paymentService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PaymentController) GetPlan(c *gin.Context) {
	plan, err := p.paymentService.GetPlan(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := p.paymentService.CreateCheckoutForPlan(c.Request.Context(), c.GetString("user_id"), req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout session created")
}

// Webhook speaks Stripe's envelope directly; the APIResponse wrapper is
// deliberately not used here.
func (p *PaymentController) Webhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
