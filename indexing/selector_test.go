package indexing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ModuloBankSelector", func() {
	var selector ModuloBankSelector

	BeforeEach(func() {
		selector = ModuloBankSelector{
			Log2InterleaveSize: 7,
			NumBanks:           8,
		}
	})

	It("should interleave consecutive lines over the banks", func() {
		Expect(selector.Select(0)).To(Equal(0))
		Expect(selector.Select(128)).To(Equal(1))
		Expect(selector.Select(129)).To(Equal(1))
		Expect(selector.Select(7 * 128)).To(Equal(7))
		Expect(selector.Select(8 * 128)).To(Equal(0))
	})

	It("should degenerate on a bank-count stride", func() {
		for i := uint64(0); i < 16; i++ {
			Expect(selector.Select(i * 8 * 128)).To(Equal(0))
		}
	})
})

var _ = Describe("HashedBankSelector", func() {
	var selector *HashedBankSelector

	BeforeEach(func() {
		selector = NewHashedBankSelector(Ipoly, 8, 7)
	})

	It("should map address zero to bank zero", func() {
		Expect(selector.Select(0)).To(Equal(0))
	})

	It("should pass the split address fields to the hash", func() {
		// With 128 B interleaving and 8 banks, address bit 21 is higher
		// bit 11, which flips output bit 0 of the 8-bank IPOLY hash.
		Expect(selector.Select(1 << 21)).To(Equal(1))

		// Offset bits within an interleave unit do not matter.
		Expect(selector.Select(1<<21 | 0x5F)).To(Equal(1))
	})

	It("should cover all banks across one row of lines", func() {
		seen := make(map[int]bool)
		for i := uint64(0); i < 8; i++ {
			seen[selector.Select(0xABC00000 + i*128)] = true
		}

		Expect(seen).To(HaveLen(8))
	})

	It("should spread a bank-count stride over all banks", func() {
		seen := make(map[int]bool)
		for i := uint64(0); i < 8; i++ {
			seen[selector.Select(i * 8 * 128)] = true
		}

		Expect(seen).To(HaveLen(8))
	})

	It("should panic on a non-power-of-two bank count", func() {
		Expect(func() { NewHashedBankSelector(Ipoly, 7, 7) }).To(Panic())
		Expect(func() { NewHashedBankSelector(Ipoly, 0, 7) }).To(Panic())
	})

	It("should panic when the strategy rejects the bank count", func() {
		Expect(func() { NewHashedBankSelector(Ipoly, 4, 7) }).To(Panic())
		Expect(func() { NewHashedBankSelector(PAE, 8, 7) }).To(Panic())
	})

	It("should support PAE with 32 banks", func() {
		paeSelector := NewHashedBankSelector(PAE, 32, 7)
		Expect(paeSelector.Select(0)).To(Equal(0))

		// Address bit 25 is higher bit 13, the sole feeder of output bit 0.
		Expect(paeSelector.Select(1 << 25)).To(Equal(1))
	})
})
