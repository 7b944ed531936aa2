package commands

import (
	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Open a shell in ~/repo",
	Long:  `Start an interactive shell with its working directory set to ~/repo. Returns when the shell exits.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		ws, err := cmd.OpenWorkspace()
		if err != nil {
			return err
		}
		dir, err := ws.Dir("")
		if err != nil {
			return err
		}
		return cmd.LaunchShell(c, dir)
	},
}

func init() {
	cmd.RootCmd.AddCommand(homeCmd)
}
