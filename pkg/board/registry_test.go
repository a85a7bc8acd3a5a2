package board_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/util"
	"github.com/pantryhq/shoplist/pkg/board"
)

var _ = Describe("Registry", func() {
	var (
		list     models.ItemList
		registry *board.Registry
		mover    *board.Mover
	)

	BeforeEach(func() {
		list = twoStoreList()
		registry = board.BuildRegistry(list)
		mover = board.NewMover(registry)
	})

	It("partitions items by their own placement", func() {
		Expect(registry.OrderedKeys()).To(Equal([]board.ContainerKey{
			board.GlobalKey, "store:7", "store:7/section:30",
		}))
		Expect(registry.Items(board.GlobalKey)).To(Equal([]int64{1, 2}))
		Expect(registry.Items("store:7")).To(Equal([]int64{3}))
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 11, 12}))
		Expect(registry.Total()).To(Equal(6))
	})

	It("creates empty containers for stores without items", func() {
		list.Stores = append(list.Stores, models.ItemListStore{Store: models.Store{ID: 8}})
		registry = board.BuildRegistry(list)

		Expect(registry.Has("store:8")).To(BeTrue())
		Expect(registry.Items("store:8")).To(BeEmpty())
	})

	It("keeps the first occurrence of a duplicated item", func() {
		list.Unassigned = append(list.Unassigned, newItem(3, util.Int64Ptr(7), nil))
		registry = board.BuildRegistry(list)

		Expect(registry.Items(board.GlobalKey)).To(Equal([]int64{1, 2}))
		Expect(registry.Items("store:7")).To(Equal([]int64{3}))
		Expect(registry.Verify(sets.New[int64](1, 2, 3, 10, 11, 12))).To(Succeed())
	})

	It("holds every item exactly once after any sequence of moves", func() {
		ids := sets.New[int64](1, 2, 3, 10, 11, 12)

		mover.Move(1, board.ContainerTarget("store:7"), false)
		mover.Move(12, board.ItemTarget(2, board.GlobalKey), false)
		mover.MoveToIndex(3, "store:7/section:30", 0)
		mover.Move(10, board.ContainerTarget("nowhere"), false)

		Expect(registry.Verify(ids)).To(Succeed())
		Expect(registry.Total()).To(Equal(6))
	})

	It("reports drift from the expected item set", func() {
		Expect(registry.Verify(sets.New[int64](1, 2, 3))).To(MatchError(ContainSubstring("unknown items held")))
		Expect(registry.Verify(sets.New[int64](1, 2, 3, 10, 11, 12, 99))).To(MatchError(ContainSubstring("not held")))
	})

	It("notifies subscribers once per change and bumps the version", func() {
		calls := 0
		unsubscribe := registry.Subscribe(func() { calls++ })
		version := registry.Version()

		Expect(mover.Move(1, board.ContainerTarget("store:7"), false)).To(BeTrue())
		Expect(calls).To(Equal(1))
		Expect(registry.Version()).To(Equal(version + 1))

		// no-op moves are silent
		Expect(mover.Move(1, board.ContainerTarget("store:7"), false)).To(BeFalse())
		Expect(calls).To(Equal(1))

		unsubscribe()
		mover.Move(2, board.ContainerTarget("store:7"), false)
		Expect(calls).To(Equal(1))
	})

	It("returns copies that callers cannot mutate", func() {
		items := registry.Items(board.GlobalKey)
		items[0] = 99

		Expect(registry.Items(board.GlobalKey)).To(Equal([]int64{1, 2}))
	})

	Describe("Restore", func() {
		It("rolls back to a snapshot while the version is unchanged", func() {
			snap := registry.Snapshot()
			mover.Move(1, board.ContainerTarget("store:7"), false)

			Expect(mover.Restore(snap, registry.Version())).To(BeTrue())
			Expect(registry.Items(board.GlobalKey)).To(Equal([]int64{1, 2}))
			Expect(registry.Items("store:7")).To(Equal([]int64{3}))
		})

		It("refuses when the registry moved on", func() {
			snap := registry.Snapshot()
			mover.Move(1, board.ContainerTarget("store:7"), false)
			version := registry.Version()
			mover.Move(2, board.ContainerTarget("store:7"), false)

			Expect(mover.Restore(snap, version)).To(BeFalse())
			Expect(registry.Items("store:7")).To(Equal([]int64{3, 1, 2}))
		})

		It("refuses a snapshot taken before a rebuild", func() {
			// Given a snapshot, then a rebuild from a list without item 2
			snap := registry.Snapshot()
			list := twoStoreList()
			list.Unassigned = []models.Item{newItem(1, nil, nil)}
			mover.Rebuild(list)
			Expect(registry.Generation()).To(Equal(snap.Generation() + 1))

			// When a move happens on the rebuilt registry
			mover.Move(1, board.ContainerTarget("store:7"), false)

			// Then restoring the old snapshot is refused even at the current version
			Expect(mover.Restore(snap, registry.Version())).To(BeFalse())
			Expect(registry.Verify(sets.New[int64](1, 3, 10, 11, 12))).To(Succeed())
		})
	})
})

var _ = Describe("Mover", func() {
	var (
		registry *board.Registry
		mover    *board.Mover
	)

	BeforeEach(func() {
		registry = board.BuildRegistry(twoStoreList())
		mover = board.NewMover(registry)
	})

	It("inserts before the target item", func() {
		Expect(mover.Move(1, board.ItemTarget(11, "store:7/section:30"), false)).To(BeTrue())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 1, 11, 12}))
		Expect(registry.Items(board.GlobalKey)).To(Equal([]int64{2}))
	})

	It("is idempotent", func() {
		target := board.ItemTarget(11, "store:7/section:30")
		Expect(mover.Move(1, target, false)).To(BeTrue())
		after := registry.Snapshot()

		Expect(mover.Move(1, board.ContainerTarget("store:7/section:30"), false)).To(BeTrue())
		Expect(mover.Move(1, board.ContainerTarget("store:7/section:30"), false)).To(BeFalse())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 11, 12, 1}))
		Expect(after.Items("store:7/section:30")).To(Equal([]int64{10, 1, 11, 12}))
	})

	It("resolves the destination from the target item's current container", func() {
		// target claims the global container but 11 lives in the section
		Expect(mover.Move(1, board.ItemTarget(11, board.GlobalKey), false)).To(BeTrue())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 1, 11, 12}))
	})

	It("skips same container moves when only container changes are allowed", func() {
		Expect(mover.Move(12, board.ItemTarget(10, "store:7/section:30"), true)).To(BeFalse())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 11, 12}))
	})

	It("ignores unknown containers and items", func() {
		version := registry.Version()
		Expect(mover.Move(1, board.ContainerTarget("store:99"), false)).To(BeFalse())
		Expect(mover.Move(99, board.ContainerTarget("store:7"), false)).To(BeFalse())
		Expect(mover.MoveToIndex(1, "store:99", 0)).To(BeFalse())
		Expect(registry.Version()).To(Equal(version))
	})

	It("clamps MoveToIndex to the container bounds", func() {
		Expect(mover.MoveToIndex(1, "store:7/section:30", 42)).To(BeTrue())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{10, 11, 12, 1}))

		Expect(mover.MoveToIndex(1, "store:7/section:30", -3)).To(BeTrue())
		Expect(registry.Items("store:7/section:30")).To(Equal([]int64{1, 10, 11, 12}))
	})
})
