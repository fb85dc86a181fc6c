/* rsetool: command-line set algebra over RFC 3779 resource sets */
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openrpki/registry/common"
)

var (
	family  string
	jsonOut bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "rsetool",
	Short:         "Compute set algebra over RFC 3779 resource sets",
	Long:          "rsetool parses AS-number and IPv4/IPv6 resource sets in their canonical\ntextual form and computes the set operations the registry uses for\ndelegation checks and reallocation deltas.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.InitDefaultLogging(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&family, "family", "as", "resource family: as, ipv4 or ipv6")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON rather than plain text")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		common.Error.Println(err)
		os.Exit(1)
	}
}
