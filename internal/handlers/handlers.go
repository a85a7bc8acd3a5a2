package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/pantryhq/shoplist/api/v1"
	"github.com/pantryhq/shoplist/internal/services"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

type Handler struct {
	itemSrv    *services.ItemService
	shopSrv    *services.ShopService
	sectionSrv *services.SectionService
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(itemSrv *services.ItemService, shopSrv *services.ShopService, sectionSrv *services.SectionService) *Handler {
	return &Handler{
		itemSrv:    itemSrv,
		shopSrv:    shopSrv,
		sectionSrv: sectionSrv,
	}
}

// respondError maps service errors to status codes. Unknown errors are logged
// and reported as msg.
func respondError(c *gin.Context, logger string, msg string, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsConflictError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		zap.S().Named(logger).Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
