package cmd

import (
	"fmt"
	"os"

	"inventory-levels/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-levels",
	Short: "Inventory Levels Service",
	Long: `Inventory Levels keeps the stock of every pharmacy and warehouse in memory
and answers availability queries. Stock is reloaded from the upstream feeds of
each base store (SLQ, Lloyds, the Lloyds warehouse file and Recusana).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug level config gives readable ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
