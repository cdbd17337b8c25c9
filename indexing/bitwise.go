package indexing

// BitwiseIndex XORs the naive index with the low bits of the higher address
// bits: index ^ (higherBits & (bankSetNum - 1)).
//
// bankSetNum is expected to be a power of two so that the mask isolates
// exactly log2(bankSetNum) bits. The function does not validate this; with a
// non-power-of-two count the mask covers the wrong bit pattern and the
// result is meaningless. Keeping the count sane is the caller's job.
func BitwiseIndex(higherBits uint64, index, bankSetNum uint32) uint32 {
	return index ^ (uint32(higherBits) & (bankSetNum - 1))
}
