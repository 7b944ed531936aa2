package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagShell    string
	flagLogLevel string
)

// version is overridden at build time with -ldflags "-X".
var version = "1.0"

var RootCmd = &cobra.Command{
	Use:     "repo [subdir]",
	Version: version,
	Short:   "Manage the ~/repo workspace",
	Long: `Create, list, and remove directories under ~/repo, and open a shell in any of them.

Running 'repo <subdir>' opens a shell in ~/repo/<subdir>.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogging(c.ErrOrStderr(), flagLogLevel)
	},
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			printUsage(c.OutOrStdout())
			return nil
		}

		ws, err := OpenWorkspace()
		if err != nil {
			return err
		}
		dir, err := ws.Dir(args[0])
		if err != nil {
			return err
		}
		return LaunchShell(c, dir)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagShell, "shell", DefaultShell, "program to start for home, pick and subdirectory shells")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
}
