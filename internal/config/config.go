package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const dbFile = "shoplist.duckdb"

type Configuration struct {
	Server    Server
	Store     Store
	Client    Client
	Board     Board
	LogFormat string `default:"console"`
	LogLevel  string `default:"info"`
}

type Server struct {
	Mode          string `default:"dev"`
	Address       string `default:"0.0.0.0"`
	HTTPPort      int    `default:"8000"`
	StaticsFolder string
}

type Store struct {
	// empty keeps the database in memory
	DataFolder string
}

type Client struct {
	URL        string        `default:"http://localhost:8000"`
	Timeout    time.Duration `default:"10s"`
	MaxRetries uint          `default:"3"`
}

type Board struct {
	NumWorkers        int           `default:"2"`
	CheckDelay        time.Duration `default:"1500ms"`
	RollbackOnFailure bool          `default:"true"`
}

type ConfigurationOption func(*Configuration)

func NewConfigurationWithOptionsAndDefaults(opts ...ConfigurationOption) *Configuration {
	c := &Configuration{}
	defaults.MustSet(c)
	for _, o := range opts {
		o(c)
	}
	return c
}

func WithServer(s Server) ConfigurationOption {
	return func(c *Configuration) { c.Server = s }
}

func WithStore(s Store) ConfigurationOption {
	return func(c *Configuration) { c.Store = s }
}

func WithClient(cl Client) ConfigurationOption {
	return func(c *Configuration) { c.Client = cl }
}

func WithBoard(b Board) ConfigurationOption {
	return func(c *Configuration) { c.Board = b }
}

func WithLogFormat(format string) ConfigurationOption {
	return func(c *Configuration) { c.LogFormat = format }
}

func WithLogLevel(level string) ConfigurationOption {
	return func(c *Configuration) { c.LogLevel = level }
}

// AddGlobalFlags registers the flags shared by every command.
func (c *Configuration) AddGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: console or json")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&c.Board.NumWorkers, "workers", c.Board.NumWorkers, "number of workers running backend commits")
}

// AddServerFlags registers the flags of the serve command.
func (c *Configuration) AddServerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Server.Mode, "server-mode", c.Server.Mode, "server mode: dev or prod")
	fs.StringVar(&c.Server.Address, "address", c.Server.Address, "address to listen on")
	fs.IntVar(&c.Server.HTTPPort, "http-port", c.Server.HTTPPort, "port to listen on")
	fs.StringVar(&c.Server.StaticsFolder, "statics-folder", c.Server.StaticsFolder, "folder with the UI files served in prod mode")
	fs.StringVar(&c.Store.DataFolder, "data-folder", c.Store.DataFolder, "folder holding the database; empty keeps it in memory")
}

// AddClientFlags registers the flags of the commands talking to a running server.
func (c *Configuration) AddClientFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Client.URL, "server-url", c.Client.URL, "base URL of the shoplist server")
	fs.DurationVar(&c.Client.Timeout, "timeout", c.Client.Timeout, "timeout of a single request")
	fs.UintVar(&c.Client.MaxRetries, "max-retries", c.Client.MaxRetries, "attempts for requests failing with a server error")
	fs.DurationVar(&c.Board.CheckDelay, "check-delay", c.Board.CheckDelay, "delay before a check is committed")
	fs.BoolVar(&c.Board.RollbackOnFailure, "rollback", c.Board.RollbackOnFailure, "restore the list when a move commit fails")
}

// LoadFile sets every flag of fs not given on the command line from the
// config file at path. Keys are flag names.
func LoadFile(fs *pflag.FlagSet, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid config file %q: %v", path, errs)
	}
	return nil
}

func (c *Configuration) Validate() error {
	if !slices.Contains([]string{"dev", "prod"}, c.Server.Mode) {
		return fmt.Errorf("invalid server mode %q", c.Server.Mode)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	if !slices.Contains([]string{"console", "json"}, c.LogFormat) {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.Board.NumWorkers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// DBPath is the DuckDB file under DataFolder, or "" for an in-memory database.
func (s Store) DBPath() string {
	if s.DataFolder == "" {
		return ""
	}
	return filepath.Join(s.DataFolder, dbFile)
}

// DebugMap returns the configuration as a map suitable for structured logging.
func (c *Configuration) DebugMap() map[string]any {
	return map[string]any{
		"Server": map[string]any{
			"Mode":          c.Server.Mode,
			"Address":       c.Server.Address,
			"HTTPPort":      c.Server.HTTPPort,
			"StaticsFolder": c.Server.StaticsFolder,
		},
		"Store": map[string]any{
			"DataFolder": c.Store.DataFolder,
		},
		"Client": map[string]any{
			"URL":        c.Client.URL,
			"Timeout":    c.Client.Timeout.String(),
			"MaxRetries": c.Client.MaxRetries,
		},
		"Board": map[string]any{
			"NumWorkers":        c.Board.NumWorkers,
			"CheckDelay":        c.Board.CheckDelay.String(),
			"RollbackOnFailure": c.Board.RollbackOnFailure,
		},
		"LogFormat": c.LogFormat,
		"LogLevel":  c.LogLevel,
	}
}
