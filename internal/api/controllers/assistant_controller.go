package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

func (a *AssistantController) Concierge(c *gin.Context) {
	var req request_models.ConciergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	answer, err := a.assistantService.Concierge(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answer, "Concierge answered")
}

func (a *AssistantController) Planner(c *gin.Context) {
	var req request_models.PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := a.assistantService.Planner(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated")
}

func (a *AssistantController) Translate(c *gin.Context) {
	var req request_models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	translation, err := a.assistantService.Translate(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, translation, "Translation generated")
}

func (a *AssistantController) PackingList(c *gin.Context) {
	var req request_models.PackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := a.assistantService.PackingList(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Packing list generated")
}
