// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/wizard"
	"salonbook/utils"
)

// CatalogHandler serves the read-only collaborator views: services,
// stylists, and the outlet's working hours.
type CatalogHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(service wizard.WizardService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: service, Logger: logger}
}

// ListServices returns the active service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListStylists returns the bookable staff roster.
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.Service.ListStylists(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list stylists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list stylists", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}

// OutletHours returns the weekly operating-hours configuration.
func (h *CatalogHandler) OutletHours(c *gin.Context) {
	hours, err := h.Service.OutletHours(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load outlet hours", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load outlet hours", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workingHours": hours})
}
