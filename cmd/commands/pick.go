package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
)

// selectDirectory asks the user to choose one of names. Tests replace it.
var selectDirectory = func(title string, names []string) (string, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(names...)...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

var pickCmd = &cobra.Command{
	Use:   "pick [subdir]",
	Short: "Choose a directory and open a shell in it",
	Long:  `Show the directories inside ~/repo (or the given subdirectory) in a menu and open a shell in the one you choose.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		subdir := ""
		if len(args) > 0 {
			subdir = args[0]
		}

		ws, err := cmd.OpenWorkspace()
		if err != nil {
			return err
		}
		target, names, err := ws.List(subdir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("%w in %s", cmd.ErrNoSubdirectories, target)
		}

		choice, err := selectDirectory("Open a shell in "+target, names)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("select directory: %w", err)
		}
		return cmd.LaunchShell(c, filepath.Join(target, choice))
	},
}

func init() {
	cmd.RootCmd.AddCommand(pickCmd)
}
