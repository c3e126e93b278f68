package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type AchievementsController struct {
	badgeService services.BadgeServiceInterface
}

func NewAchievementsController(badgeService services.BadgeServiceInterface) *AchievementsController {
	return &AchievementsController{
		badgeService: badgeService,
	}
}

func (a *AchievementsController) GetAchievements(c *gin.Context) {
	achievements, err := a.badgeService.GetAchievements(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, achievements, "Achievements fetched successfully")
}
