package handlers

import (
	"net/http"

	"temanikan/internal/repository"

	"github.com/gin-gonic/gin"
)

// @Summary      Fish encyclopedia
// @Description  Filters by case-insensitive name or scientific name; "all" or empty means no category/difficulty filter.
// @Tags         catalog
// @Produce      json
// @Param        search      query     string  false  "Name substring"
// @Param        category    query     string  false  "Category"    example(Air Tawar)
// @Param        difficulty  query     string  false  "Difficulty"  example(Pemula)
// @Success      200         {object}  service.EncyclopediaPage
// @Failure      403         {object}  map[string]string
// @Router       /api/v1/encyclopedia [get]
// @Security     BearerAuth
func (h *Handler) getEncyclopedia(c *gin.Context) {
	f := repository.FishFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	page, err := h.services.Encyclopedia(c.Request.Context(), f)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load encyclopedia", "catalog_encyclopedia_failed", err, "search", f.Search)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary      Forum overview
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  service.ForumPage
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/forum [get]
// @Security     BearerAuth
func (h *Handler) getForum(c *gin.Context) {
	page, err := h.services.Forum(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load forum", "catalog_forum_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary      Shop overview
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  service.ShopPage
// @Router       /api/v1/shop [get]
// @Security     BearerAuth
func (h *Handler) getShop(c *gin.Context) {
	page, err := h.services.Shop(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load shop", "catalog_shop_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary      Care guides
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  service.GuidePage
// @Router       /api/v1/guides [get]
// @Security     BearerAuth
func (h *Handler) getGuides(c *gin.Context) {
	page, err := h.services.Guides(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load guides", "catalog_guides_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.AdminPage
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/admin [get]
// @Security     BearerAuth
func (h *Handler) getAdmin(c *gin.Context) {
	page, err := h.services.Admin(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load admin dashboard", "catalog_admin_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}
