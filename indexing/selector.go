package indexing

import (
	"fmt"
	"math/bits"
)

// A BankSelector decides which bank a physical address maps to. All
// implementations in this package are stateless and safe for concurrent use.
type BankSelector interface {
	Select(address uint64) int
}

// ModuloBankSelector assigns addresses to banks in a plainly interleaved
// fashion. It is the naive scheme the hashed selectors are measured against:
// a stride of NumBanks interleave units maps every access to the same bank.
type ModuloBankSelector struct {
	Log2InterleaveSize uint64
	NumBanks           int
}

// Select returns the bank index for the given address.
func (s ModuloBankSelector) Select(address uint64) int {
	return int((address >> s.Log2InterleaveSize) % uint64(s.NumBanks))
}

// HashedBankSelector splits an address into an interleave offset, a naive
// index field, and higher bits, then maps the naive index through one of the
// index hash functions.
type HashedBankSelector struct {
	strategy       Strategy
	numBanks       uint32
	log2Interleave uint64
	log2NumBanks   uint64
}

// NewHashedBankSelector creates a selector that distributes numBanks banks
// interleaved at 2^log2InterleaveSize bytes, hashed with the given strategy.
// It panics if numBanks is not a power of two, or if the strategy does not
// support numBanks.
func NewHashedBankSelector(
	strategy Strategy,
	numBanks int,
	log2InterleaveSize uint64,
) *HashedBankSelector {
	if numBanks <= 0 || numBanks&(numBanks-1) != 0 {
		panic(fmt.Sprintf(
			"indexing: bank count must be a positive power of two, not %d",
			numBanks))
	}

	s := &HashedBankSelector{
		strategy:       strategy,
		numBanks:       uint32(numBanks),
		log2Interleave: log2InterleaveSize,
		log2NumBanks:   uint64(bits.TrailingZeros32(uint32(numBanks))),
	}

	// Fail on an unsupported strategy/bank-count pair at construction time
	// rather than on the first access.
	strategy.Index(0, 0, s.numBanks)

	return s
}

// Select returns the bank index for the given address.
func (s *HashedBankSelector) Select(address uint64) int {
	naiveIndex := uint32(address>>s.log2Interleave) & (s.numBanks - 1)
	higherBits := address >> (s.log2Interleave + s.log2NumBanks)

	return int(s.strategy.Index(higherBits, naiveIndex, s.numBanks))
}
