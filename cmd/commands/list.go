package commands

import (
	"fmt"
	"io"

	cmd "github.com/franklin-ross/repo/cmd"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listOutput string

// listing is the yaml form of a list run.
type listing struct {
	Path        string   `yaml:"path"`
	Directories []string `yaml:"directories"`
}

var listCmd = &cobra.Command{
	Use:   "list [subdir]",
	Short: "List directories inside ~/repo",
	Long: `Print the names of the directories directly inside ~/repo, or inside the given subdirectory.
Names are printed in filesystem order, one per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if listOutput != "text" && listOutput != "yaml" {
			return fmt.Errorf("unknown output format %q (supported: text, yaml)", listOutput)
		}

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

		if listOutput == "yaml" {
			return writeListing(c.OutOrStdout(), listing{Path: target, Directories: names})
		}
		for _, n := range names {
			fmt.Fprintln(c.OutOrStdout(), n)
		}
		return nil
	},
}

func writeListing(w io.Writer, l listing) error {
	if l.Directories == nil {
		l.Directories = []string{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}
	return enc.Close()
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text or yaml")
	cmd.RootCmd.AddCommand(listCmd)
}
