package main

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/bankindex/indexing"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Compute the bank index for one address.",
	Long: `Compute the bank index for one address. Either pass the already-split ` +
		`fields with --higher-bits and --index, or pass a full address with ` +
		`--address and --log2-interleave to let the tool split it.`,
	RunE: runIndexCmd,
}

func init() {
	indexCmd.Flags().String("strategy", "ipoly",
		"index hash strategy: ipoly, bitwise, or pae")
	indexCmd.Flags().Uint32("banks", 32, "number of banks")
	indexCmd.Flags().String("higher-bits", "0",
		"address bits above the naive index field (0x prefix allowed)")
	indexCmd.Flags().Uint32("index", 0, "naive index")
	indexCmd.Flags().String("address", "",
		"full address to split (overrides --higher-bits and --index)")
	indexCmd.Flags().Uint64("log2-interleave", 7,
		"log2 of the interleave unit size, used with --address")

	rootCmd.AddCommand(indexCmd)
}

func runIndexCmd(cmd *cobra.Command, _ []string) error {
	strategyName, _ := cmd.Flags().GetString("strategy")
	strategy, err := indexing.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	banks, _ := cmd.Flags().GetUint32("banks")

	address, _ := cmd.Flags().GetString("address")
	if address != "" {
		return indexFullAddress(cmd, strategy, banks, address)
	}

	higherBitsStr, _ := cmd.Flags().GetString("higher-bits")
	higherBits, err := strconv.ParseUint(higherBitsStr, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid higher bits %q: %w", higherBitsStr, err)
	}

	naiveIndex, _ := cmd.Flags().GetUint32("index")

	fmt.Println(strategy.Index(higherBits, naiveIndex, banks))

	return nil
}

func indexFullAddress(
	cmd *cobra.Command,
	strategy indexing.Strategy,
	banks uint32,
	address string,
) error {
	addr, err := strconv.ParseUint(address, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}

	log2Interleave, _ := cmd.Flags().GetUint64("log2-interleave")
	selector := indexing.NewHashedBankSelector(
		strategy, int(banks), log2Interleave)

	fmt.Println(selector.Select(addr))

	return nil
}
