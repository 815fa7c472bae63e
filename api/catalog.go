package api

import (
	"net/http"

	"github.com/dreamsourcil/booking/config"
	"github.com/dreamsourcil/booking/internal/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	salon   config.SalonConfig
}

func NewCatalogHandler(cat *catalog.Catalog, salon config.SalonConfig) *CatalogHandler {
	return &CatalogHandler{catalog: cat, salon: salon}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/services", h.services)
	router.GET("/info", h.info)
}

func (h *CatalogHandler) services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.catalog.Groups})
}

func (h *CatalogHandler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": h.salon.Name, "address": h.salon.Address})
}
