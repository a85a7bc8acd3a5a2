package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/pantryhq/shoplist/api/v1"
)

// ListStores returns the stores sorted by name
// (GET /stores)
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.shopSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, "store_handler", "failed to list stores", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewStoresFromModel(stores))
}

// CreateStore
// (POST /stores)
func (h *Handler) CreateStore(c *gin.Context) {
	var req v1.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store, err := h.shopSrv.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, "store_handler", "failed to create store", err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewStoreFromModel(*store))
}

// RenameStore
// (PUT /stores/{id})
func (h *Handler) RenameStore(c *gin.Context, id int64) {
	var req v1.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store, err := h.shopSrv.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, "store_handler", "failed to rename store", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewStoreFromModel(*store))
}

// DeleteStore removes a store; its items go back to the global unassigned pool
// (DELETE /stores/{id})
func (h *Handler) DeleteStore(c *gin.Context, id int64) {
	if err := h.shopSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "store_handler", "failed to delete store", err)
		return
	}

	c.Status(http.StatusNoContent)
}
