package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("saidoc.cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "saidoc",
		Short:        "Render the method details of Java types",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more (repeat for more detail)")

	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newMembersCmd())
	rootCmd.AddCommand(newOutlineCmd())

	return rootCmd
}
