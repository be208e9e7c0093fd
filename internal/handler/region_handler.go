package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"paralympics-api-go/internal/schema"
	"paralympics-api-go/internal/store"
)

// RegionHandler handles region-related HTTP requests
type RegionHandler struct {
	store *store.Store
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(st *store.Store) *RegionHandler {
	return &RegionHandler{store: st}
}

// GetRegions handles GET /regions
func (h *RegionHandler) GetRegions(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	defer session.Rollback()

	regions, err := session.ListRegions(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	c.JSON(http.StatusOK, regions)
}

// GetRegion handles GET /regions/:code
func (h *RegionHandler) GetRegion(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	defer session.Rollback()

	region, err := session.GetRegion(ctx, c.Param("code"))
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	c.JSON(http.StatusOK, region)
}

// AddRegion handles POST /regions
func (h *RegionHandler) AddRegion(c *gin.Context) {
	ctx := c.Request.Context()
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	region, err := schema.DecodeRegion(ctx, raw)
	if err != nil {
		respondError(c, err, "Region")
		return
	}

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	defer session.Rollback()

	if err := session.InsertRegion(ctx, region); err != nil {
		respondError(c, err, "Region")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Region")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Region added with NOC= %s", region.NOC)})
}

// UpdateRegion handles PATCH /regions/:code. Existence is checked before
// the patch is applied; fields omitted from the body are left unchanged.
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	defer session.Rollback()

	region, found, err := session.GetRegionOptional(ctx, c.Param("code"))
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	if !found {
		notFound(c, "Region")
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := schema.DecodeRegionPatch(ctx, raw, region); err != nil {
		respondError(c, err, "Region")
		return
	}

	if err := session.UpdateRegion(ctx, region); err != nil {
		respondError(c, err, "Region")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Region")
		return
	}
	c.JSON(http.StatusOK, region)
}

// DeleteRegion handles DELETE /regions/:code
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	ctx := c.Request.Context()
	noc := c.Param("code")

	session, err := h.store.Begin(ctx)
	if err != nil {
		respondError(c, err, "Region")
		return
	}
	defer session.Rollback()

	if _, err := session.GetRegion(ctx, noc); err != nil {
		respondError(c, err, "Region")
		return
	}
	if err := session.DeleteRegion(ctx, noc); err != nil {
		respondError(c, err, "Region")
		return
	}
	if err := session.Commit(); err != nil {
		respondError(c, err, "Region")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Region %s deleted", noc)})
}
