package store_test

import (
	"context"
	"database/sql"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/store"
	"github.com/pantryhq/shoplist/internal/store/migrations"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

func ids(items []models.Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

var _ = Describe("Store", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("ShopStore", func() {
		It("should list stores sorted by name", func() {
			// Arrange
			_, err := s.Shops().Create(ctx, "market")
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Shops().Create(ctx, "bakery")
			Expect(err).NotTo(HaveOccurred())

			// Act
			shops, err := s.Shops().List(ctx)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(shops).To(HaveLen(2))
			Expect(shops[0].Name).To(Equal("bakery"))
			Expect(shops[1].Name).To(Equal("market"))
		})

		It("should rename and delete a store", func() {
			shop, err := s.Shops().Create(ctx, "market")
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Shops().Rename(ctx, shop.ID, "farmers market")).To(Succeed())
			got, err := s.Shops().Get(ctx, shop.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("farmers market"))

			Expect(s.Shops().Delete(ctx, shop.ID)).To(Succeed())
			_, err = s.Shops().Get(ctx, shop.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return ResourceNotFoundError for unknown stores", func() {
			Expect(srvErrors.IsResourceNotFoundError(s.Shops().Rename(ctx, 42, "x"))).To(BeTrue())
			Expect(srvErrors.IsResourceNotFoundError(s.Shops().Delete(ctx, 42))).To(BeTrue())
		})
	})

	Context("SectionStore", func() {
		var shop *models.Store

		BeforeEach(func() {
			var err error
			shop, err = s.Shops().Create(ctx, "market")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should append new sections and reorder them", func() {
			// Arrange
			a, err := s.Sections().Create(ctx, shop.ID, "dairy")
			Expect(err).NotTo(HaveOccurred())
			b, err := s.Sections().Create(ctx, shop.ID, "bakery")
			Expect(err).NotTo(HaveOccurred())
			c, err := s.Sections().Create(ctx, shop.ID, "produce")
			Expect(err).NotTo(HaveOccurred())

			sections, err := s.Sections().List(ctx, store.ByStore(shop.ID))
			Expect(err).NotTo(HaveOccurred())
			Expect(sections).To(HaveLen(3))
			Expect(sections[0].ID).To(Equal(a.ID))

			// Act
			err = s.Sections().Reorder(ctx, shop.ID, []int64{c.ID, a.ID, b.ID})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			sections, err = s.Sections().List(ctx, store.ByStore(shop.ID))
			Expect(err).NotTo(HaveOccurred())
			Expect([]int64{sections[0].ID, sections[1].ID, sections[2].ID}).To(Equal([]int64{c.ID, a.ID, b.ID}))
		})

		It("should refuse to reorder a section of another store", func() {
			other, err := s.Shops().Create(ctx, "other")
			Expect(err).NotTo(HaveOccurred())
			sec, err := s.Sections().Create(ctx, other.ID, "dairy")
			Expect(err).NotTo(HaveOccurred())

			err = s.Sections().Reorder(ctx, shop.ID, []int64{sec.ID})
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should delete every section of a store", func() {
			_, err := s.Sections().Create(ctx, shop.ID, "dairy")
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Sections().DeleteByShop(ctx, shop.ID)).To(Succeed())
			sections, err := s.Sections().List(ctx, store.ByStore(shop.ID))
			Expect(err).NotTo(HaveOccurred())
			Expect(sections).To(BeEmpty())
		})
	})

	Context("ItemStore", func() {
		var (
			shop    *models.Store
			section *models.Section
		)

		BeforeEach(func() {
			var err error
			shop, err = s.Shops().Create(ctx, "market")
			Expect(err).NotTo(HaveOccurred())
			section, err = s.Sections().Create(ctx, shop.ID, "dairy")
			Expect(err).NotTo(HaveOccurred())
		})

		create := func(storeID, sectionID *int64, name string) *models.Item {
			item, err := s.Items().Create(ctx, storeID, sectionID, name)
			Expect(err).NotTo(HaveOccurred())
			return item
		}

		It("should append items to their container", func() {
			// Arrange
			milk := create(&shop.ID, &section.ID, "milk")
			cheese := create(&shop.ID, &section.ID, "cheese")
			bread := create(nil, nil, "bread")

			// Act
			inSection, err := s.Items().ContainerIDs(ctx, &shop.ID, &section.ID)
			Expect(err).NotTo(HaveOccurred())
			global, err := s.Items().ContainerIDs(ctx, nil, nil)
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(inSection).To(Equal([]int64{milk.ID, cheese.ID}))
			Expect(global).To(Equal([]int64{bread.ID}))

			got, err := s.Items().Get(ctx, milk.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.StoreID).To(Equal(&shop.ID))
			Expect(got.SectionID).To(Equal(&section.ID))
			Expect(got.Checked).To(BeFalse())
		})

		It("should place an item and renumber its new container", func() {
			milk := create(&shop.ID, &section.ID, "milk")
			cheese := create(&shop.ID, &section.ID, "cheese")
			bread := create(nil, nil, "bread")

			err := s.Items().Place(ctx, bread.ID, &shop.ID, &section.ID, []int64{milk.ID, bread.ID, cheese.ID})
			Expect(err).NotTo(HaveOccurred())

			inSection, err := s.Items().List(ctx, store.InContainer(&shop.ID, &section.ID))
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(inSection)).To(Equal([]int64{milk.ID, bread.ID, cheese.ID}))

			global, err := s.Items().List(ctx, store.InContainer(nil, nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(global).To(BeEmpty())
		})

		It("should append every item of a store to the global pool", func() {
			existing := create(nil, nil, "bread")
			milk := create(&shop.ID, &section.ID, "milk")
			eggs := create(&shop.ID, nil, "eggs")

			err := s.Items().MoveAll(ctx, &shop.ID, nil, nil, nil)
			Expect(err).NotTo(HaveOccurred())

			global, err := s.Items().List(ctx, store.InContainer(nil, nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(global)[0]).To(Equal(existing.ID))
			Expect(ids(global)).To(ConsistOf(existing.ID, milk.ID, eggs.ID))
		})

		It("should append the items of a section to the store pool", func() {
			eggs := create(&shop.ID, nil, "eggs")
			milk := create(&shop.ID, &section.ID, "milk")

			err := s.Items().MoveAll(ctx, &shop.ID, &section.ID, &shop.ID, nil)
			Expect(err).NotTo(HaveOccurred())

			pool, err := s.Items().ContainerIDs(ctx, &shop.ID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pool).To(Equal([]int64{eggs.ID, milk.ID}))
		})

		It("should hide checked items from containers", func() {
			milk := create(&shop.ID, &section.ID, "milk")

			Expect(s.Items().SetChecked(ctx, milk.ID, true)).To(Succeed())

			inSection, err := s.Items().ContainerIDs(ctx, &shop.ID, &section.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(inSection).To(BeEmpty())

			unchecked, err := s.Items().List(ctx, store.ByChecked(false))
			Expect(err).NotTo(HaveOccurred())
			Expect(unchecked).To(BeEmpty())
		})

		It("should return ResourceNotFoundError for unknown items", func() {
			_, err := s.Items().Get(ctx, 99)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			Expect(srvErrors.IsResourceNotFoundError(s.Items().SetChecked(ctx, 99, true))).To(BeTrue())
		})

		It("should limit listed items", func() {
			create(nil, nil, "a")
			create(nil, nil, "b")

			items, err := s.Items().List(ctx, store.WithLimit(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})
	})

	Context("WithTx", func() {
		It("should commit every change", func() {
			err := s.WithTx(ctx, func(tx *store.Store) error {
				shop, err := tx.Shops().Create(ctx, "market")
				if err != nil {
					return err
				}
				_, err = tx.Items().Create(ctx, &shop.ID, nil, "eggs")
				return err
			})
			Expect(err).NotTo(HaveOccurred())

			items, err := s.Items().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})

		It("should roll back when fn fails", func() {
			err := s.WithTx(ctx, func(tx *store.Store) error {
				if _, err := tx.Items().Create(ctx, nil, nil, "eggs"); err != nil {
					return err
				}
				return errors.New("abort")
			})
			Expect(err).To(MatchError("abort"))

			items, err := s.Items().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})
})
