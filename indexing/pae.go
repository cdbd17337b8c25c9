package indexing

import "fmt"

// paeTable32 lists, per output bit, the higher-bit positions (a) and naive
// index bit positions (b) that are XORed together for the 32-bank
// Page-Address-Entropy hash.
//
// The published equations contain self-canceling duplicate index terms
// (b0^b0, b1^b1, b3^b3). The duplicates XOR to zero, so they are dropped
// here; the observable output is unchanged.
var paeTable32 = [5]struct {
	a []int
	b []int
}{
	{a: []int{13, 10, 9, 5, 0}, b: []int{3}},
	{a: []int{12, 11, 6, 1}, b: []int{3, 2}},
	{a: []int{14, 9, 8, 7, 2}, b: []int{1, 2}},
	{a: []int{11, 10, 8, 3}, b: []int{2}},
	{a: []int{12, 9, 8, 5, 4}, b: []int{1, 0, 4}},
}

// PAEIndex computes a bank index from randomly selected page address and
// naive index bits (Page Address Entropy). It trades the strict
// conflict-freedom of IpolyIndex for a simpler bit selection. The result is
// always in [0, bankSetNum).
//
// Only a 32-bank configuration is defined; any other count panics for the
// same reason IpolyIndex does.
func PAEIndex(higherBits uint64, index, bankSetNum uint32) uint32 {
	if bankSetNum != 32 {
		panic(fmt.Sprintf(
			"indexing: the PAE index function supports 32 banks, not %d",
			bankSetNum))
	}

	newIndex := uint32(0)
	for k, row := range paeTable32 {
		b := uint32(0)
		for _, p := range row.a {
			b ^= bit(higherBits, p)
		}
		for _, p := range row.b {
			b ^= bit(uint64(index), p)
		}

		newIndex |= b << k
	}

	return newIndex
}
