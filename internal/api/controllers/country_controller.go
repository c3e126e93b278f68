package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
	phraseService  services.PhraseServiceInterface
}

func NewCountryController(
	countryService services.CountryServiceInterface,
	phraseService services.PhraseServiceInterface,
) *CountryController {
	return &CountryController{
		countryService: countryService,
		phraseService:  phraseService,
	}
}

func (cc *CountryController) ListCountries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "50")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	countries, err := cc.countryService.ListCountries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (cc *CountryController) SearchCountries(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search keyword is required")
		return
	}

	countries, err := cc.countryService.SearchCountries(c.Request.Context(), keyword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

// GetCountryGuide serves the full etiquette guide. Anonymous visitors get
// free countries only; signed-in travelers need an entitlement for the rest.
func (cc *CountryController) GetCountryGuide(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country name is required")
		return
	}

	guide, err := cc.countryService.GetCountryGuide(c.Request.Context(), c.GetString("user_id"), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Country guide fetched successfully")
}

func (cc *CountryController) ListPhrases(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country name is required")
		return
	}

	phrases, err := cc.phraseService.ListByCountry(c.Request.Context(), name, c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, phrases, "Phrases fetched successfully")
}
