package handlers

import (
	"net/http"

	catalogRepo "framelight/database/repository/catalog"
	"framelight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the read-only site content endpoints.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// HandleGetPortfolio returns published portfolio items.
func (h *CatalogHandler) HandleGetPortfolio(c *gin.Context) {
	items, err := h.Repo.Portfolio(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to load portfolio", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load portfolio", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// HandleGetPackages returns the package list.
func (h *CatalogHandler) HandleGetPackages(c *gin.Context) {
	pkgs, err := h.Repo.Packages(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to load packages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load packages", "")
		return
	}
	c.JSON(http.StatusOK, pkgs)
}
