package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/pantryhq/shoplist/api/v1"
)

// ListItems returns the unchecked items grouped by store and section
// (GET /items)
func (h *Handler) ListItems(c *gin.Context) {
	list, err := h.itemSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, "item_handler", "failed to list items", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewItemListFromModel(*list))
}

// CreateItem appends a new item to its container
// (POST /items)
func (h *Handler) CreateItem(c *gin.Context) {
	var req v1.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.itemSrv.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, "item_handler", "failed to create item", err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewItemFromModel(*item))
}

// MoveItem places an item at an index of a container
// (PUT /items/{id}/move)
func (h *Handler) MoveItem(c *gin.Context, id int64) {
	var req v1.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.itemSrv.Move(c.Request.Context(), id, req.ToModel())
	if err != nil {
		respondError(c, "item_handler", "failed to move item", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewItemFromModel(*item))
}

// SetItemChecked checks or unchecks an item
// (PUT /items/{id}/checked)
func (h *Handler) SetItemChecked(c *gin.Context, id int64) {
	var req v1.SetCheckedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	checked := true
	if req.Checked != nil {
		checked = *req.Checked
	}

	if err := h.itemSrv.SetChecked(c.Request.Context(), id, checked); err != nil {
		respondError(c, "item_handler", "failed to update item", err)
		return
	}

	c.Status(http.StatusNoContent)
}
