package commands

import (
	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
)

var addParent string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a directory inside ~/repo",
	Long:  `Create a single directory inside ~/repo, or inside an existing parent directory given with --parent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		ws, err := cmd.OpenWorkspace()
		if err != nil {
			return err
		}
		p, err := ws.Add(args[0], addParent)
		if err != nil {
			return err
		}
		cmd.Success(c.OutOrStdout(), "Created directory: %s", p)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addParent, "parent", "p", "", "parent directory inside ~/repo to create the directory in")
	cmd.RootCmd.AddCommand(addCmd)
}
