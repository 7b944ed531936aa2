package commands

import (
	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the repo directory at ~/repo",
	Long:  `Create ~/repo with the default client, test and practice directories. Does nothing if ~/repo already exists.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		ws, err := cmd.OpenWorkspace()
		if err != nil {
			return err
		}

		res, err := ws.Init()
		if res.Existed {
			cmd.Notice(c.OutOrStdout(), "Repo directory already exists at: %s", ws.Root())
			return nil
		}
		for i, p := range res.Created {
			if i == 0 {
				cmd.Success(c.OutOrStdout(), "Repo directory created at: %s", p)
			} else {
				cmd.Success(c.OutOrStdout(), "Created subdirectory: %s", p)
			}
		}
		return err
	},
}

func init() {
	cmd.RootCmd.AddCommand(initCmd)
}
