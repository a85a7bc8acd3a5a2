package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryhq/shoplist/internal/config"
	"github.com/pantryhq/shoplist/internal/server"
	"github.com/pantryhq/shoplist/internal/server/middlewares"
)

var _ = Describe("Server", func() {
	ping := func(router *gin.RouterGroup) {
		router.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"pong": true})
		})
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})
	}

	get := func(s *server.Server, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	Context("dev mode", func() {
		var s *server.Server

		BeforeEach(func() {
			var err error
			s, err = server.NewServer(config.NewConfigurationWithOptionsAndDefaults(), ping)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should mount handlers under /api/v1", func() {
			w := get(s, "/api/v1/ping")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("pong"))
		})

		It("should tag responses with a request id", func() {
			w := get(s, "/api/v1/ping")
			Expect(w.Header().Get(middlewares.RequestIDHeader)).NotTo(BeEmpty())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
			req.Header.Set(middlewares.RequestIDHeader, "abc")
			w = httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)
			Expect(w.Header().Get(middlewares.RequestIDHeader)).To(Equal("abc"))
		})

		It("should recover from panics", func() {
			Expect(get(s, "/api/v1/panic").Code).To(Equal(http.StatusInternalServerError))
		})

		It("should answer unknown routes with a JSON error", func() {
			w := get(s, "/api/v1/nope")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("error"))
		})

		It("should expose metrics", func() {
			w := get(s, "/metrics")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("go_goroutines"))
		})
	})

	Context("prod mode", func() {
		var (
			s      *server.Server
			folder string
		)

		BeforeEach(func() {
			folder = GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(folder, "index.html"), []byte("<html>shoplist</html>"), 0o600)).To(Succeed())

			cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithServer(config.Server{
				Mode:          "prod",
				Address:       "127.0.0.1",
				HTTPPort:      8000,
				StaticsFolder: folder,
			}))

			var err error
			s, err = server.NewServer(cfg, ping)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			gin.SetMode(gin.TestMode)
		})

		It("should fall back to index.html for UI routes", func() {
			w := get(s, "/lists/groceries")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("shoplist"))
		})

		It("should keep JSON 404 for the api", func() {
			w := get(s, "/api/v1/nope")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		})

		It("should refuse a statics folder without index.html", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithServer(config.Server{
				Mode:          "prod",
				HTTPPort:      8000,
				StaticsFolder: GinkgoT().TempDir(),
			}))
			_, err := server.NewServer(cfg, ping)
			Expect(err).To(HaveOccurred())
		})
	})

	It("should stop gracefully", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithServer(config.Server{
			Mode:     "dev",
			Address:  "127.0.0.1",
			HTTPPort: 18765,
		}))
		s, err := server.NewServer(cfg, ping)
		Expect(err).NotTo(HaveOccurred())

		done := make(chan error, 1)
		go func() { done <- s.Start(context.Background()) }()

		Eventually(func() error {
			resp, err := http.Get("http://127.0.0.1:18765/api/v1/ping")
			if err == nil {
				resp.Body.Close()
			}
			return err
		}, 2*time.Second, 20*time.Millisecond).Should(Succeed())

		Expect(s.Stop(context.Background())).To(Succeed())
		Eventually(done).Should(Receive(BeNil()))
	})
})
