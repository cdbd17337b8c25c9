package indexing

import "fmt"

// ipolyTables holds, for each supported bank count, the higher-bit positions
// that are XORed into each output bit. Row k lists the positions of
// higherBits that feed output bit k; naive index bit k is always XORed in as
// well.
//
// The rows come from the H-matrices of "Pseudo-randomly Interleaved Memory"
// (Rau, ISCA 1991), derived by GF(2) modular arithmetic over the irreducible
// polynomials IPOLY(19), IPOLY(37), IPOLY(67), IPOLY(131), and IPOLY(283)
// for 16 through 256 banks. They guarantee a conflict-free bank sequence for
// every power-of-two stride. The positions are fixed offline; do not
// re-derive them, as a different (even equivalent-looking) coefficient set
// is a different hash.
var ipolyTables = map[uint32][][]int{
	8: {
		{11, 10, 9, 7, 4, 3, 2, 0},
		{12, 9, 8, 7, 5, 2, 1, 0},
		{13, 10, 9, 8, 6, 3, 2, 1},
	},
	16: {
		{11, 10, 9, 8, 6, 4, 3, 0},
		{12, 8, 7, 6, 5, 3, 1, 0},
		{9, 8, 7, 6, 4, 2, 1},
		{10, 9, 8, 7, 5, 3, 2},
	},
	32: {
		{13, 12, 11, 10, 9, 6, 5, 3, 0},
		{14, 13, 12, 11, 10, 7, 6, 4, 1},
		{14, 10, 9, 8, 7, 6, 3, 2, 0},
		{11, 10, 9, 8, 7, 4, 3, 1},
		{12, 11, 10, 9, 8, 5, 4, 2},
	},
	64: {
		{18, 17, 16, 15, 12, 10, 6, 5, 0},
		{15, 13, 12, 11, 10, 7, 5, 1, 0},
		{16, 14, 13, 12, 11, 8, 6, 2, 1},
		{17, 15, 14, 13, 12, 9, 7, 3, 2},
		{18, 16, 15, 14, 13, 10, 8, 4, 3},
		{17, 16, 15, 14, 11, 9, 5, 4},
	},
	128: {
		{21, 20, 19, 18, 14, 12, 7, 6, 0},
		{22, 18, 15, 14, 13, 12, 8, 6, 1, 0},
		{19, 16, 15, 14, 13, 9, 7, 2, 1},
		{20, 17, 16, 15, 14, 10, 8, 3, 2},
		{21, 18, 17, 16, 15, 11, 9, 4, 3},
		{22, 19, 18, 17, 16, 12, 10, 5, 4},
		{20, 19, 18, 17, 13, 11, 6, 5},
	},
	256: {
		{21, 20, 19, 17, 16, 13, 12, 10, 7, 5, 4, 0},
		{19, 18, 16, 14, 12, 11, 10, 8, 7, 6, 4, 1, 0},
		{20, 19, 17, 15, 13, 12, 11, 9, 8, 7, 5, 2, 1},
		{19, 18, 17, 14, 9, 8, 7, 6, 5, 4, 3, 2, 0},
		{21, 18, 17, 16, 15, 13, 12, 9, 8, 6, 3, 1, 0},
		{19, 18, 17, 16, 14, 13, 10, 9, 7, 4, 2, 1},
		{20, 19, 18, 17, 15, 14, 11, 10, 8, 5, 3, 2},
		{21, 20, 19, 18, 16, 15, 12, 11, 9, 6, 4, 3},
	},
}

// IpolyIndex computes a bank index by XOR-folding fixed subsets of the
// higher address bits into each bit of the naive index. The subsets come
// from ipolyTables. The result is always in [0, bankSetNum).
//
// bankSetNum must be 8, 16, 32, 64, 128, or 256. Any other count panics:
// silently returning a wrong bank index would corrupt the caller's bank
// addressing, so a bad count must stop the run.
func IpolyIndex(higherBits uint64, index, bankSetNum uint32) uint32 {
	rows, ok := ipolyTables[bankSetNum]
	if !ok {
		panic(fmt.Sprintf(
			"indexing: the IPOLY index function supports "+
				"8, 16, 32, 64, 128, or 256 banks, not %d",
			bankSetNum))
	}

	newIndex := uint32(0)
	for k, positions := range rows {
		b := bit(uint64(index), k)
		for _, p := range positions {
			b ^= bit(higherBits, p)
		}

		newIndex |= b << k
	}

	return newIndex
}
