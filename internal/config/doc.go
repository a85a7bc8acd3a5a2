// Package config defines the configuration of the shoplist binary.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Store          - DuckDB location
//	├── Client         - How CLI commands reach a running server
//	├── Board          - Drag and drop engine settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// Defaults come from `default` struct tags applied with creasty/defaults.
//
// # Server Configuration
//
//	┌──────────────────┬───────────┬────────────────────────────────────────┐
//	│ Field            │ Default   │ Description                            │
//	├──────────────────┼───────────┼────────────────────────────────────────┤
//	│ Mode             │ "dev"     │ Server mode: "prod" or "dev"           │
//	│ Address          │ "0.0.0.0" │ Listen address                         │
//	│ HTTPPort         │ 8000      │ HTTP server listen port                │
//	│ StaticsFolder    │ ""        │ Path to static files for UI            │
//	└──────────────────┴───────────┴────────────────────────────────────────┘
//
// # Store, Client and Board Configuration
//
//	┌───────────────────────────┬─────────────────────────┬────────────────────────────────┐
//	│ Field                     │ Default                 │ Description                    │
//	├───────────────────────────┼─────────────────────────┼────────────────────────────────┤
//	│ Store.DataFolder          │ ""                      │ DuckDB folder, "" = in memory  │
//	│ Client.URL                │ "http://localhost:8000" │ Server base URL                │
//	│ Client.Timeout            │ 10s                     │ Per request timeout            │
//	│ Client.MaxRetries         │ 3                       │ Attempts on 5xx / network      │
//	│ Board.NumWorkers          │ 2                       │ Scheduler workers              │
//	│ Board.CheckDelay          │ 1500ms                  │ Delay before a check commits   │
//	│ Board.RollbackOnFailure   │ true                    │ Restore list on failed move    │
//	└───────────────────────────┴─────────────────────────┴────────────────────────────────┘
//
// # Sources
//
// Values are resolved in this order, last wins:
//
//	struct defaults ─► config file (--config) ─► SHOPLIST_* env ─► command line flags
//
// Flags are registered with AddGlobalFlags, AddServerFlags and AddClientFlags.
// LoadFile reads the config file with viper; keys are flag names:
//
//	http-port: 9000
//	data-folder: /var/lib/shoplist
//
// # Debug Logging
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
