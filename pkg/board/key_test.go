package board_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryhq/shoplist/internal/util"
	"github.com/pantryhq/shoplist/pkg/board"
)

var _ = Describe("ContainerKey", func() {
	DescribeTable("round trips every placement",
		func(storeID, sectionID *int64, expected board.ContainerKey) {
			key := board.EncodeKey(storeID, sectionID)
			Expect(key).To(Equal(expected))

			p := board.DecodeKey(key)
			Expect(p.StoreID).To(Equal(storeID))
			Expect(p.SectionID).To(Equal(sectionID))
			Expect(p.Key()).To(Equal(key))
		},
		Entry("global", nil, nil, board.GlobalKey),
		Entry("store", util.Int64Ptr(7), nil, board.ContainerKey("store:7")),
		Entry("section", util.Int64Ptr(7), util.Int64Ptr(30), board.ContainerKey("store:7/section:30")),
	)

	It("maps a section without its store to the global container", func() {
		Expect(board.EncodeKey(nil, util.Int64Ptr(3))).To(Equal(board.GlobalKey))
	})

	DescribeTable("decodes unrecognized keys to the global placement",
		func(key string) {
			// Given a malformed key
			// When it is decoded
			p := board.DecodeKey(board.ContainerKey(key))

			// Then no error surfaces and the placement is global
			Expect(p.IsGlobal()).To(BeTrue())

			_, err := board.ParseKey(board.ContainerKey(key))
			Expect(err).To(HaveOccurred())
		},
		Entry("garbage", "bogus"),
		Entry("non numeric store", "store:abc"),
		Entry("empty section", "store:7/section:"),
		Entry("padded id", "store:007"),
		Entry("signed id", "store:+7"),
		Entry("empty", ""),
	)
})
