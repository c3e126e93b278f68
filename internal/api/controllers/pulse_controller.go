package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type PulseController struct {
	pulseService services.PulseServiceInterface
}

func NewPulseController(pulseService services.PulseServiceInterface) *PulseController {
	return &PulseController{
		pulseService: pulseService,
	}
}

func (p *PulseController) CreateTip(c *gin.Context) {
	var req request_models.CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tip, err := p.pulseService.CreateTip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tip, "Tip shared")
}

func (p *PulseController) ListTips(c *gin.Context) {
	countryName := c.Param("name")
	if countryName == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country name is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	tips, err := p.pulseService.ListTips(c.Request.Context(), countryName, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tips, "Tips fetched successfully")
}

func (p *PulseController) UpvoteTip(c *gin.Context) {
	tipID := c.Param("id")
	if tipID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tip ID is required")
		return
	}

	if err := p.pulseService.UpvoteTip(c.Request.Context(), c.GetString("user_id"), tipID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tip upvoted")
}

func (p *PulseController) ReportTip(c *gin.Context) {
	tipID := c.Param("id")
	if tipID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tip ID is required")
		return
	}

	var req request_models.ReportTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.pulseService.ReportTip(c.Request.Context(), c.GetString("user_id"), tipID, req.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tip reported for review")
}
