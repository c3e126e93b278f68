package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type BookmarkController struct {
	bookmarkService services.BookmarkServiceInterface
}

func NewBookmarkController(bookmarkService services.BookmarkServiceInterface) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
	}
}

func (b *BookmarkController) CreateBookmark(c *gin.Context) {
	var req request_models.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bookmark, err := b.bookmarkService.CreateBookmark(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookmark, "Phrase bookmarked")
}

func (b *BookmarkController) ListBookmarks(c *gin.Context) {
	bookmarks, err := b.bookmarkService.ListBookmarks(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookmarks, "Bookmarks fetched successfully")
}

func (b *BookmarkController) DeleteBookmark(c *gin.Context) {
	bookmarkID := c.Param("id")
	if bookmarkID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Bookmark ID is required")
		return
	}

	if err := b.bookmarkService.DeleteBookmark(c.Request.Context(), c.GetString("user_id"), bookmarkID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Bookmark removed")
}

func (b *BookmarkController) CreateFavorite(c *gin.Context) {
	var req request_models.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	favorite, err := b.bookmarkService.CreateFavorite(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorite, "Country added to favorites")
}

func (b *BookmarkController) ListFavorites(c *gin.Context) {
	favorites, err := b.bookmarkService.ListFavorites(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

func (b *BookmarkController) DeleteFavorite(c *gin.Context) {
	favoriteID := c.Param("id")
	if favoriteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Favorite ID is required")
		return
	}

	if err := b.bookmarkService.DeleteFavorite(c.Request.Context(), c.GetString("user_id"), favoriteID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed")
}
