// Package main provides the bankindex command-line tool. It computes bank
// indexes with the hash functions in the indexing package and measures how
// the hashes spread strided access patterns over banks.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bankindex",
	Short: "Compute and analyze hashed bank/set indexes for banked memories.",
	Long: `The bankindex tool computes the set/bank index that a banked memory or ` +
		`cache assigns to an address under the ipoly, bitwise, or pae index hash, ` +
		`and sweeps stride patterns to measure bank conflict behavior.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
