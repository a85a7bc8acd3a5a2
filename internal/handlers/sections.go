package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/pantryhq/shoplist/api/v1"
)

// ListSections returns the sections of a store in display order
// (GET /stores/{id}/sections)
func (h *Handler) ListSections(c *gin.Context, id int64) {
	sections, err := h.sectionSrv.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, "section_handler", "failed to list sections", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSectionsFromModel(sections))
}

// CreateSection appends a section to a store
// (POST /stores/{id}/sections)
func (h *Handler) CreateSection(c *gin.Context, id int64) {
	var req v1.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	section, err := h.sectionSrv.Create(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, "section_handler", "failed to create section", err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewSectionFromModel(*section))
}

// ReorderSections sets the order of all sections of a store
// (PUT /stores/{id}/sections/reorder)
func (h *Handler) ReorderSections(c *gin.Context, id int64) {
	var req v1.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sections, err := h.sectionSrv.Reorder(c.Request.Context(), id, req.Ids)
	if err != nil {
		respondError(c, "section_handler", "failed to reorder sections", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSectionsFromModel(sections))
}

// RenameSection
// (PUT /sections/{id})
func (h *Handler) RenameSection(c *gin.Context, id int64) {
	var req v1.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	section, err := h.sectionSrv.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, "section_handler", "failed to rename section", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSectionFromModel(*section))
}

// DeleteSection removes a section; its items go to the store's unassigned pool
// (DELETE /sections/{id})
func (h *Handler) DeleteSection(c *gin.Context, id int64) {
	if err := h.sectionSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "section_handler", "failed to delete section", err)
		return
	}

	c.Status(http.StatusNoContent)
}
