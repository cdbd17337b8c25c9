package indexing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PAEIndex", func() {
	It("should return zero when all inputs are zero", func() {
		Expect(PAEIndex(0, 0, 32)).To(Equal(uint32(0)))
	})

	It("should flip output bits 0 and 1 through index bit 3", func() {
		Expect(PAEIndex(0, 0b1000, 32)).To(Equal(uint32(0b00011)))
	})

	It("should map single higher bits through the table", func() {
		// Bit 13 feeds only output bit 0, bit 14 only output bit 2.
		Expect(PAEIndex(1<<13, 0, 32)).To(Equal(uint32(1)))
		Expect(PAEIndex(1<<14, 0, 32)).To(Equal(uint32(4)))

		// Bit 9 feeds output bits 0, 2, and 4.
		Expect(PAEIndex(1<<9, 0, 32)).To(Equal(uint32(0b10101)))
	})

	It("should map single index bits through the table", func() {
		// The self-canceling duplicate terms of the published equations
		// mean index bit 0 only reaches output bit 4, and index bit 3
		// never reaches output bit 3.
		Expect(PAEIndex(0, 0b00001, 32)).To(Equal(uint32(0b10000)))
		Expect(PAEIndex(0, 0b00010, 32)).To(Equal(uint32(0b10100)))
		Expect(PAEIndex(0, 0b00100, 32)).To(Equal(uint32(0b01110)))
		Expect(PAEIndex(0, 0b10000, 32)).To(Equal(uint32(0b10000)))
	})

	It("should always produce an index within the bank count", func() {
		for _, higherBits := range sampleHigherBits {
			for index := uint32(0); index < 32; index++ {
				Expect(PAEIndex(higherBits, index, 32)).
					To(BeNumerically("<", 32))
			}
		}
	})

	It("should be deterministic", func() {
		for _, higherBits := range sampleHigherBits {
			first := PAEIndex(higherBits, 21, 32)
			Expect(PAEIndex(higherBits, 21, 32)).To(Equal(first))
		}
	})

	It("should panic on any bank count other than 32", func() {
		Expect(func() { PAEIndex(0, 0, 7) }).To(Panic())
		Expect(func() { PAEIndex(0, 0, 16) }).To(Panic())
		Expect(func() { PAEIndex(0, 0, 64) }).To(Panic())
		Expect(func() { PAEIndex(0, 0, 100) }).To(Panic())
	})
})
