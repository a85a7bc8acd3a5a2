// Package server provides the HTTP server of shoplist.
//
// The server uses the Gin web framework and runs in one of two modes. Both
// serve plain HTTP.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                                                               │
//	│  Production Mode                Development Mode              │
//	│  ┌─────────────────────┐        ┌─────────────────────┐       │
//	│  │ HTTP :8000          │        │ HTTP :8000          │       │
//	│  │ Gin release mode    │        │ API only            │       │
//	│  │ Static file serving │        │ JSON 404 elsewhere  │       │
//	│  │ SPA fallback        │        │                     │       │
//	│  └─────────────────────┘        └─────────────────────┘       │
//	│                                                               │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics          Prometheus registry (board and Go metrics) │
//	├───────────────────────────────────────────────────────────────┤
//	│  /api/v1           Logger + RecoveryWithZap                   │
//	│                    handlers registered via callback           │
//	└───────────────────────────────────────────────────────────────┘
//
// # Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go srv.Start(ctx) // blocks, nil after a graceful stop
//	<-shutdownCh
//	srv.Stop(ctx)     // waits up to 10s for in-flight requests
//
// # Middleware
//
// middlewares.Logger logs every request on the "http" logger: method, path,
// query, client ip and user agent when it starts, then status and latency.
// ginzap.RecoveryWithZap turns handler panics into 500 responses and logs the stack.
//
// # Static Files (prod only)
//
//	/static/*     → StaticsFolder/
//	/             → StaticsFolder/index.html
//	/favicon.ico  → StaticsFolder/favicon.ico
//	/any/path     → StaticsFolder/index.html (SPA fallback)
//	/api/*        → 404 JSON error
//
// NewServer fails when StaticsFolder has no index.html.
package server
