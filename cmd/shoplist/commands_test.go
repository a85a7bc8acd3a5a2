package main

import (
	"bytes"
	"context"
	"database/sql"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/pantryhq/shoplist/api/v1"
	"github.com/pantryhq/shoplist/internal/handlers"
	"github.com/pantryhq/shoplist/internal/services"
	"github.com/pantryhq/shoplist/internal/store"
	"github.com/pantryhq/shoplist/internal/store/migrations"
)

var _ = Describe("commands", func() {
	var (
		db  *sql.DB
		srv *httptest.Server
	)

	BeforeEach(func() {
		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(context.Background(), db)).To(Succeed())

		st := store.NewStore(db)
		router := gin.New()
		v1.RegisterHandlers(router.Group("/api/v1"), handlers.New(
			services.NewItemService(st),
			services.NewShopService(st),
			services.NewSectionService(st),
		))
		srv = httptest.NewServer(router)
	})

	AfterEach(func() {
		srv.Close()
		db.Close()
	})

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := newRootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append(args, "--server-url", srv.URL, "--log-level", "error"))
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	It("should add, move, reorder and check items", func() {
		_, err := run("stores", "add", "Market")
		Expect(err).NotTo(HaveOccurred())
		_, err = run("sections", "add", "1", "Bakery")
		Expect(err).NotTo(HaveOccurred())
		_, err = run("sections", "add", "1", "Dairy")
		Expect(err).NotTo(HaveOccurred())
		_, err = run("add", "bread")
		Expect(err).NotTo(HaveOccurred())

		out, err := run("move", "1", "--store", "1", "--section", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("store:1/section:1[0]"))

		out, err = run("sections", "reorder", "1", "2", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("[2 1]"))

		out, err = run("items")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("bread"))
		Expect(out).To(ContainSubstring("1 items"))

		out, err = run("check", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("0 left"))
	})

	It("should reject a section without a store", func() {
		_, err := run("move", "1", "--section", "3")
		Expect(err).To(MatchError(ContainSubstring("--section needs --store")))
	})

	It("should reject an invalid id", func() {
		_, err := run("check", "abc")
		Expect(err).To(MatchError(ContainSubstring("invalid id")))
	})

	It("should reject a reorder that is not a permutation", func() {
		_, err := run("stores", "add", "Market")
		Expect(err).NotTo(HaveOccurred())
		_, err = run("sections", "add", "1", "Bakery")
		Expect(err).NotTo(HaveOccurred())

		_, err = run("sections", "reorder", "1", "1", "99")
		Expect(err).To(HaveOccurred())
	})
})
