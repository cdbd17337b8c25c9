// Package indexing provides the set/bank index hash functions that map
// addresses onto the banks of a partitioned memory or a set-associative
// cache. Instead of selecting a bank with a plain modulo over the low
// address bits, the functions here mix the higher address bits into the
// naive index so that power-of-two access strides do not all land on the
// same bank.
package indexing

import "fmt"

// A Strategy names one of the supported index hash functions.
type Strategy int

const (
	// Ipoly selects the GF(2)-polynomial-based hash. See IpolyIndex.
	Ipoly Strategy = iota

	// Bitwise selects the masked-XOR hash. See BitwiseIndex.
	Bitwise

	// PAE selects the Page-Address-Entropy hash. See PAEIndex.
	PAE
)

// ParseStrategy converts a strategy name, as used in configuration files and
// command-line flags, into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "ipoly":
		return Ipoly, nil
	case "bitwise":
		return Bitwise, nil
	case "pae":
		return PAE, nil
	}

	return 0, fmt.Errorf(
		"unknown index hash strategy %q, must be ipoly, bitwise, or pae",
		name)
}

func (s Strategy) String() string {
	switch s {
	case Ipoly:
		return "ipoly"
	case Bitwise:
		return "bitwise"
	case PAE:
		return "pae"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Index applies the hash function that the strategy names. It panics if the
// strategy is not one of the defined constants.
func (s Strategy) Index(higherBits uint64, index, bankSetNum uint32) uint32 {
	switch s {
	case Ipoly:
		return IpolyIndex(higherBits, index, bankSetNum)
	case Bitwise:
		return BitwiseIndex(higherBits, index, bankSetNum)
	case PAE:
		return PAEIndex(higherBits, index, bankSetNum)
	}

	panic("unknown index hash strategy: " + s.String())
}

func bit(value uint64, pos int) uint32 {
	return uint32(value>>pos) & 1
}
