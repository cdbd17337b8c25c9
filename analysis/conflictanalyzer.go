// Package analysis measures how evenly a bank selection scheme spreads
// synthetic access patterns over the banks.
package analysis

import (
	"github.com/sarchlab/bankindex/datarecording"
	"github.com/sarchlab/bankindex/indexing"
)

// An AccessPattern describes a strided sequence of addresses.
type AccessPattern struct {
	BaseAddress uint64
	Stride      uint64
	NumAccesses int
}

// A StrideReport summarizes the bank distribution of one access pattern.
// Imbalance is MaxHits divided by the hits a perfectly even distribution
// would give each bank; 1.0 means conflict-free.
type StrideReport struct {
	Scheme      string
	Stride      uint64
	NumBanks    int
	NumAccesses int
	MaxHits     int
	MinHits     int
	Imbalance   float64
}

// A BankHitEntry is one bank's hit count for one access pattern.
type BankHitEntry struct {
	Scheme string
	Stride uint64
	Bank   int
	Hits   int
}

// A ConflictAnalyzer replays access patterns through a bank selector and
// reports per-bank hit distributions.
type ConflictAnalyzer struct {
	selector indexing.BankSelector
	numBanks int
	scheme   string

	recorder      datarecording.DataRecorder
	tablesCreated bool
}

// NewConflictAnalyzer creates an analyzer for the given selector. The scheme
// label tags the rows this analyzer produces.
func NewConflictAnalyzer(
	selector indexing.BankSelector,
	numBanks int,
	scheme string,
) *ConflictAnalyzer {
	return &ConflictAnalyzer{
		selector: selector,
		numBanks: numBanks,
		scheme:   scheme,
	}
}

// WithRecorder makes the analyzer persist per-bank hit counts and stride
// reports through the recorder.
func (a *ConflictAnalyzer) WithRecorder(
	recorder datarecording.DataRecorder,
) *ConflictAnalyzer {
	a.recorder = recorder
	return a
}

// Analyze replays one access pattern and returns its report.
func (a *ConflictAnalyzer) Analyze(pattern AccessPattern) StrideReport {
	hits := make([]int, a.numBanks)

	address := pattern.BaseAddress
	for i := 0; i < pattern.NumAccesses; i++ {
		hits[a.selector.Select(address)]++
		address += pattern.Stride
	}

	report := a.summarize(pattern, hits)
	a.record(report, hits)

	return report
}

// SweepPow2Strides analyzes one pattern per power-of-two stride from
// 2^minLog2 to 2^maxLog2, the stride family the IPOLY coefficients are
// derived for.
func (a *ConflictAnalyzer) SweepPow2Strides(
	minLog2, maxLog2 uint,
	accessesPerStride int,
) []StrideReport {
	reports := make([]StrideReport, 0, maxLog2-minLog2+1)

	for l := minLog2; l <= maxLog2; l++ {
		reports = append(reports, a.Analyze(AccessPattern{
			Stride:      1 << l,
			NumAccesses: accessesPerStride,
		}))
	}

	return reports
}

func (a *ConflictAnalyzer) summarize(
	pattern AccessPattern,
	hits []int,
) StrideReport {
	maxHits, minHits := hits[0], hits[0]
	for _, h := range hits[1:] {
		if h > maxHits {
			maxHits = h
		}
		if h < minHits {
			minHits = h
		}
	}

	ideal := float64(pattern.NumAccesses) / float64(a.numBanks)

	return StrideReport{
		Scheme:      a.scheme,
		Stride:      pattern.Stride,
		NumBanks:    a.numBanks,
		NumAccesses: pattern.NumAccesses,
		MaxHits:     maxHits,
		MinHits:     minHits,
		Imbalance:   float64(maxHits) / ideal,
	}
}

func (a *ConflictAnalyzer) record(report StrideReport, hits []int) {
	if a.recorder == nil {
		return
	}

	if !a.tablesCreated {
		a.recorder.CreateTable("stride_reports", StrideReport{})
		a.recorder.CreateTable("bank_hits", BankHitEntry{})
		a.tablesCreated = true
	}

	a.recorder.InsertData("stride_reports", report)
	for bank, h := range hits {
		a.recorder.InsertData("bank_hits", BankHitEntry{
			Scheme: a.scheme,
			Stride: report.Stride,
			Bank:   bank,
			Hits:   h,
		})
	}
}
