package indexing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BitwiseIndex", func() {
	It("should XOR the masked higher bits into the index", func() {
		// (0b1010 & 0b111) ^ 0b001 = 0b011.
		Expect(BitwiseIndex(0b1010, 0b01, 8)).To(Equal(uint32(3)))
	})

	It("should equal index ^ (higherBits & (bankSetNum-1)) exactly", func() {
		for _, bankSetNum := range []uint32{2, 4, 8, 16, 32, 64, 128, 256} {
			for _, higherBits := range sampleHigherBits {
				for index := uint32(0); index < bankSetNum; index++ {
					want := index ^ (uint32(higherBits) & (bankSetNum - 1))
					Expect(BitwiseIndex(higherBits, index, bankSetNum)).
						To(Equal(want))
				}
			}
		}
	})

	It("should stay within a power-of-two bank count", func() {
		for _, bankSetNum := range []uint32{8, 32, 256} {
			for _, higherBits := range sampleHigherBits {
				newIndex := BitwiseIndex(higherBits, 0, bankSetNum)
				Expect(newIndex).To(BeNumerically("<", bankSetNum))
			}
		}
	})
})
