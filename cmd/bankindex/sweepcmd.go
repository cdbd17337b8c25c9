package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sarchlab/bankindex/analysis"
	"github.com/sarchlab/bankindex/datarecording"
	"github.com/sarchlab/bankindex/indexing"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep power-of-two strides and report bank conflicts.",
	Long: `Sweep power-of-two strides through the selected index hash and through ` +
		`the plain modulo baseline, and report the per-stride bank imbalance. ` +
		`An imbalance of 1.0 means the stride is conflict-free.`,
	RunE: runSweepCmd,
}

func init() {
	sweepCmd.Flags().String("strategy", "ipoly",
		"index hash strategy: ipoly, bitwise, or pae")
	sweepCmd.Flags().Int("banks", 32, "number of banks")
	sweepCmd.Flags().Uint64("log2-interleave", 7,
		"log2 of the interleave unit size")
	sweepCmd.Flags().Int("accesses", 4096, "accesses per stride")
	sweepCmd.Flags().Uint("min-stride-log2", 7, "log2 of the smallest stride")
	sweepCmd.Flags().Uint("max-stride-log2", 20, "log2 of the largest stride")
	sweepCmd.Flags().String("db", "",
		"record per-bank hit counts into this SQLite database")

	rootCmd.AddCommand(sweepCmd)
}

func runSweepCmd(cmd *cobra.Command, _ []string) error {
	strategyName, _ := cmd.Flags().GetString("strategy")
	strategy, err := indexing.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	banks, _ := cmd.Flags().GetInt("banks")
	log2Interleave, _ := cmd.Flags().GetUint64("log2-interleave")
	accesses, _ := cmd.Flags().GetInt("accesses")
	minLog2, _ := cmd.Flags().GetUint("min-stride-log2")
	maxLog2, _ := cmd.Flags().GetUint("max-stride-log2")

	if maxLog2 < minLog2 {
		return fmt.Errorf("max stride 2^%d is smaller than min stride 2^%d",
			maxLog2, minLog2)
	}

	var recorder datarecording.DataRecorder
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		recorder = datarecording.New(dbPath)
		defer recorder.Flush()
	}

	hashed := analysis.NewConflictAnalyzer(
		indexing.NewHashedBankSelector(strategy, banks, log2Interleave),
		banks, strategyName)
	baseline := analysis.NewConflictAnalyzer(
		indexing.ModuloBankSelector{
			Log2InterleaveSize: log2Interleave,
			NumBanks:           banks,
		},
		banks, "modulo")

	if recorder != nil {
		hashed.WithRecorder(recorder)
	}

	reports := hashed.SweepPow2Strides(minLog2, maxLog2, accesses)
	baselineReports := baseline.SweepPow2Strides(minLog2, maxLog2, accesses)

	printReports(append(reports, baselineReports...))

	return nil
}

func printReports(reports []analysis.StrideReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "scheme\tstride\tbanks\tmax hits\tmin hits\timbalance")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.3f\n",
			r.Scheme, r.Stride, r.NumBanks,
			r.MaxHits, r.MinHits, r.Imbalance)
	}

	w.Flush()
}
