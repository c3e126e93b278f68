package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type OfflineController struct {
	offlineService services.OfflineServiceInterface
}

func NewOfflineController(offlineService services.OfflineServiceInterface) *OfflineController {
	return &OfflineController{
		offlineService: offlineService,
	}
}

func (o *OfflineController) DownloadPack(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country name is required")
		return
	}

	pack, err := o.offlineService.DownloadPack(c.Request.Context(), c.GetString("user_id"), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pack, "Offline pack downloaded")
}

func (o *OfflineController) GetPack(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country name is required")
		return
	}

	pack, err := o.offlineService.GetPack(c.Request.Context(), c.GetString("user_id"), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pack, "Offline pack fetched successfully")
}
