package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /items)
	ListItems(c *gin.Context)
	// (POST /items)
	CreateItem(c *gin.Context)
	// (PUT /items/{id}/move)
	MoveItem(c *gin.Context, id int64)
	// (PUT /items/{id}/checked)
	SetItemChecked(c *gin.Context, id int64)
	// (GET /stores)
	ListStores(c *gin.Context)
	// (POST /stores)
	CreateStore(c *gin.Context)
	// (PUT /stores/{id})
	RenameStore(c *gin.Context, id int64)
	// (DELETE /stores/{id})
	DeleteStore(c *gin.Context, id int64)
	// (GET /stores/{id}/sections)
	ListSections(c *gin.Context, id int64)
	// (POST /stores/{id}/sections)
	CreateSection(c *gin.Context, id int64)
	// (PUT /stores/{id}/sections/reorder)
	ReorderSections(c *gin.Context, id int64)
	// (PUT /sections/{id})
	RenameSection(c *gin.Context, id int64)
	// (DELETE /sections/{id})
	DeleteSection(c *gin.Context, id int64)
}

// ServerInterfaceWrapper converts gin contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

func (siw *ServerInterfaceWrapper) plain(fn func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !siw.runMiddlewares(c) {
			return
		}
		fn(c)
	}
}

func (siw *ServerInterfaceWrapper) withID(fn func(c *gin.Context, id int64)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id int64

		err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter id: %w", err), http.StatusBadRequest)
			return
		}

		if !siw.runMiddlewares(c) {
			return
		}
		fn(c, id)
	}
}

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, Error{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/items", wrapper.plain(si.ListItems))
	router.POST(base+"/items", wrapper.plain(si.CreateItem))
	router.PUT(base+"/items/:id/move", wrapper.withID(si.MoveItem))
	router.PUT(base+"/items/:id/checked", wrapper.withID(si.SetItemChecked))
	router.GET(base+"/stores", wrapper.plain(si.ListStores))
	router.POST(base+"/stores", wrapper.plain(si.CreateStore))
	router.PUT(base+"/stores/:id", wrapper.withID(si.RenameStore))
	router.DELETE(base+"/stores/:id", wrapper.withID(si.DeleteStore))
	router.GET(base+"/stores/:id/sections", wrapper.withID(si.ListSections))
	router.POST(base+"/stores/:id/sections", wrapper.withID(si.CreateSection))
	router.PUT(base+"/stores/:id/sections/reorder", wrapper.withID(si.ReorderSections))
	router.PUT(base+"/sections/:id", wrapper.withID(si.RenameSection))
	router.DELETE(base+"/sections/:id", wrapper.withID(si.DeleteSection))
}
