package board_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/util"
	"github.com/pantryhq/shoplist/pkg/board"
)

const sectionKey = board.ContainerKey("store:1/section:1")

// row is a 100x50 item rect at the given top.
func row(top float64) board.Rect {
	return board.Rect{Left: 0, Top: top, Width: 100, Height: 50}
}

var _ = Describe("DetectCollision", func() {
	var (
		registry   *board.Registry
		droppables []board.Droppable
	)

	BeforeEach(func() {
		// section holds A=1, B=2, C=3 stacked at y 0, 50, 100; X=9 is unassigned
		store := util.Int64Ptr(1)
		section := util.Int64Ptr(1)
		registry = board.BuildRegistry(models.ItemList{
			Unassigned: []models.Item{newItem(9, nil, nil)},
			Stores: []models.ItemListStore{{
				Store: models.Store{ID: 1},
				Sections: []models.ItemListSection{{
					Section: models.Section{ID: 1, StoreID: 1},
					Items:   []models.Item{newItem(1, store, section), newItem(2, store, section), newItem(3, store, section)},
				}},
			}},
		})

		droppables = []board.Droppable{
			{Target: board.ContainerTarget(board.GlobalKey), Rect: board.Rect{Left: 0, Top: 400, Width: 100, Height: 100}},
			{Target: board.ContainerTarget(sectionKey), Rect: board.Rect{Left: 0, Top: 0, Width: 100, Height: 300}},
			{Target: board.ItemTarget(1, sectionKey), Rect: row(0)},
			{Target: board.ItemTarget(2, sectionKey), Rect: row(50)},
			{Target: board.ItemTarget(3, sectionKey), Rect: row(100)},
			{Target: board.ItemTarget(9, board.GlobalKey), Rect: row(400)},
		}
	})

	It("returns nothing when no container overlaps", func() {
		_, ok := board.DetectCollision(board.Draggable{Item: 9, Rect: row(1000)}, droppables, registry)
		Expect(ok).To(BeFalse())
	})

	It("picks the container with the largest overlap", func() {
		// 20px inside the section, 30px inside the global container
		dragged := board.Draggable{Item: 2, Rect: board.Rect{Left: 0, Top: 280, Width: 100, Height: 150}}
		target, ok := board.DetectCollision(dragged, droppables, registry)

		Expect(ok).To(BeTrue())
		Expect(target.Container).To(Equal(board.GlobalKey))
	})

	It("picks the closest item inside the winning container", func() {
		// Given X dragged with its center between A and B, closer to B
		dragged := board.Draggable{Item: 9, Rect: row(40)}

		// When the collision is resolved
		target, ok := board.DetectCollision(dragged, droppables, registry)

		// Then B is the target
		Expect(ok).To(BeTrue())
		Expect(target).To(Equal(board.ItemTarget(2, sectionKey)))
	})

	It("ignores item droppables of other containers", func() {
		droppables = append(droppables, board.Droppable{Target: board.ItemTarget(9, board.GlobalKey), Rect: row(45)})

		target, _ := board.DetectCollision(board.Draggable{Item: 9, Rect: row(40)}, droppables, registry)
		Expect(target).To(Equal(board.ItemTarget(2, sectionKey)))
	})

	It("targets an empty container itself", func() {
		registry = board.BuildRegistry(models.ItemList{Stores: []models.ItemListStore{{
			Store:    models.Store{ID: 1},
			Sections: []models.ItemListSection{{Section: models.Section{ID: 1, StoreID: 1}}},
		}}})

		target, ok := board.DetectCollision(board.Draggable{Item: 9, Rect: row(40)}, droppables, registry)
		Expect(ok).To(BeTrue())
		Expect(target).To(Equal(board.ContainerTarget(sectionKey)))
	})

	Context("below the last item", func() {
		It("appends an item coming from another container", func() {
			// Given [A, B, C] and X hovering below C's center
			dragged := board.Draggable{Item: 9, Rect: row(140)}

			// When resolved and applied
			target, ok := board.DetectCollision(dragged, droppables, registry)
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(board.ContainerTarget(sectionKey)))

			board.NewMover(registry).Move(9, target, false)

			// Then X lands after C
			Expect(registry.Items(sectionKey)).To(Equal([]int64{1, 2, 3, 9}))
		})

		It("keeps the item target when reordering inside the same container", func() {
			dragged := board.Draggable{Item: 1, Rect: row(140)}

			target, ok := board.DetectCollision(dragged, droppables, registry)
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(board.ItemTarget(3, sectionKey)))
		})

		It("inserts before the last item when above its center", func() {
			dragged := board.Draggable{Item: 9, Rect: row(90)}

			target, _ := board.DetectCollision(dragged, droppables, registry)
			Expect(target).To(Equal(board.ItemTarget(3, sectionKey)))

			board.NewMover(registry).Move(9, target, false)
			Expect(registry.Items(sectionKey)).To(Equal([]int64{1, 2, 9, 3}))
		})
	})

	It("breaks ties in favor of the first candidate", func() {
		droppables = []board.Droppable{
			{Target: board.ContainerTarget(sectionKey), Rect: row(0)},
			{Target: board.ContainerTarget(board.GlobalKey), Rect: row(0)},
		}
		registry = board.BuildRegistry(models.ItemList{Stores: []models.ItemListStore{{
			Store:    models.Store{ID: 1},
			Sections: []models.ItemListSection{{Section: models.Section{ID: 1, StoreID: 1}}},
		}}})

		target, _ := board.DetectCollision(board.Draggable{Item: 9, Rect: row(0)}, droppables, registry)
		Expect(target.Container).To(Equal(sectionKey))
	})
})

var _ = Describe("Rect", func() {
	It("computes the intersection area", func() {
		a := board.Rect{Left: 0, Top: 0, Width: 10, Height: 10}
		Expect(a.Overlap(board.Rect{Left: 5, Top: 5, Width: 10, Height: 10})).To(Equal(25.0))
		Expect(a.Overlap(board.Rect{Left: 10, Top: 0, Width: 10, Height: 10})).To(Equal(0.0))
		Expect(a.Center()).To(Equal(board.Point{X: 5, Y: 5}))
	})
})
