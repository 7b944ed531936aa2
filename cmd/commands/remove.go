package commands

import (
	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a directory from ~/repo",
	Long:  `Recursively delete a directory inside ~/repo. There is no confirmation and no undo.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		ws, err := cmd.OpenWorkspace()
		if err != nil {
			return err
		}
		p, err := ws.Remove(args[0])
		if err != nil {
			return err
		}
		cmd.Success(c.OutOrStdout(), "Removed directory: %s", p)
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(removeCmd)
}
