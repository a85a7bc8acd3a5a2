package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/pantryhq/shoplist/internal/config"
)

var _ = Describe("Configuration", func() {
	It("should apply defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Client.URL).To(Equal("http://localhost:8000"))
		Expect(cfg.Client.Timeout).To(Equal(10 * time.Second))
		Expect(cfg.Client.MaxRetries).To(Equal(uint(3)))
		Expect(cfg.Board.CheckDelay).To(Equal(1500 * time.Millisecond))
		Expect(cfg.Board.RollbackOnFailure).To(BeTrue())
		Expect(cfg.Store.DBPath()).To(BeEmpty())
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should apply options over defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithLogLevel("debug"),
			config.WithStore(config.Store{DataFolder: "/data"}),
		)

		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Store.DBPath()).To(Equal("/data/shoplist.duckdb"))
	})

	DescribeTable("should reject invalid values",
		func(opt config.ConfigurationOption) {
			cfg := config.NewConfigurationWithOptionsAndDefaults(opt)
			Expect(cfg.Validate()).NotTo(Succeed())
		},
		Entry("server mode", config.WithServer(config.Server{Mode: "test", HTTPPort: 8000})),
		Entry("port", config.WithServer(config.Server{Mode: "dev", HTTPPort: 70000})),
		Entry("log format", config.WithLogFormat("xml")),
		Entry("workers", config.WithBoard(config.Board{NumWorkers: 0})),
	)

	Context("flags", func() {
		var (
			cfg *config.Configuration
			fs  *pflag.FlagSet
		)

		BeforeEach(func() {
			cfg = config.NewConfigurationWithOptionsAndDefaults()
			fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.AddGlobalFlags(fs)
			cfg.AddServerFlags(fs)
			cfg.AddClientFlags(fs)
		})

		It("should bind flags to the configuration", func() {
			Expect(fs.Parse([]string{"--http-port=9000", "--check-delay=2s", "--rollback=false"})).To(Succeed())

			Expect(cfg.Server.HTTPPort).To(Equal(9000))
			Expect(cfg.Board.CheckDelay).To(Equal(2 * time.Second))
			Expect(cfg.Board.RollbackOnFailure).To(BeFalse())
		})

		It("should fill unset flags from a config file", func() {
			// Arrange
			path := filepath.Join(GinkgoT().TempDir(), "shoplist.yaml")
			Expect(os.WriteFile(path, []byte("http-port: 9100\nlog-level: debug\n"), 0o600)).To(Succeed())
			Expect(fs.Parse([]string{"--log-level=warn"})).To(Succeed())

			// Act
			err := config.LoadFile(fs, path)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.HTTPPort).To(Equal(9100))
			Expect(cfg.LogLevel).To(Equal("warn"))
		})

		It("should fail on a missing file", func() {
			Expect(config.LoadFile(fs, "/does/not/exist.yaml")).To(HaveOccurred())
		})
	})
})
