package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

var (
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// Success prints a status line for a completed change.
func Success(w io.Writer, format string, a ...any) {
	okColor.Fprintf(w, format+"\n", a...)
}

// Notice prints a status line for a run that changed nothing.
func Notice(w io.Writer, format string, a ...any) {
	infoColor.Fprintf(w, format+"\n", a...)
}

// usageEntries drive both renderings of the no-command hint.
var usageEntries = []struct{ use, short string }{
	{"repo init", "create ~/repo with client, test and practice"},
	{"repo add <name> [-p parent]", "create a directory"},
	{"repo list [subdir]", "list directories"},
	{"repo home", "open a shell in ~/repo"},
	{"repo remove <path>", "delete a directory tree"},
	{"repo pick [subdir]", "choose a directory and open a shell in it"},
	{"repo <subdir>", "open a shell in a directory"},
}

func plainUsage() string {
	uses := make([]string, len(usageEntries))
	for i, e := range usageEntries {
		f := strings.Fields(e.use)
		uses[i] = "'" + strings.Join(f[:min(2, len(f))], " ") + "'"
	}
	return fmt.Sprintf("No command provided. Use %s, or %s.",
		strings.Join(uses[:len(uses)-1], ", "), uses[len(uses)-1])
}

func markdownUsage() string {
	var b strings.Builder
	b.WriteString("# repo\n\nNo command provided.\n\n| Command | Effect |\n|---|---|\n")
	for _, e := range usageEntries {
		fmt.Fprintf(&b, "| `%s` | %s |\n", e.use, e.short)
	}
	return b.String()
}

// printUsage renders the hint as markdown on a terminal and as a single
// plain line everywhere else.
func printUsage(w io.Writer) {
	if isTerminal(w) {
		out, err := glamour.Render(markdownUsage(), "auto")
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
		log.Debug().Err(err).Msg("render usage")
	}
	fmt.Fprintln(w, plainUsage())
}
