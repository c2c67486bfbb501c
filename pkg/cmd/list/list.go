package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/config"
	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/utils"
)

func NewCmdList(s *state.State) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes in the terminal.",
		Long: heredoc.Doc(`
			Prints the notes of the chosen view, one per line, with the card
			color, creation time, title, and a body snippet.

			Example:
			  dinote list
			  dinote list --view archived
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateView(viewFlag); err != nil {
				return err
			}
			return run(s, viewFlag)
		},
	}

	cmd.Flags().
		StringVarP(&viewFlag, "view", "v", "active", "View to list: active or archived")
	return cmd
}

func run(s *state.State, view string) error {
	var (
		ns  []note.Note
		err error
	)

	if view == "archived" {
		ns, err = s.Client.ArchivedNotes()
	} else {
		ns, err = s.Client.Notes()
	}
	if err != nil {
		return err
	}

	if len(ns) == 0 {
		fmt.Printf("No %s notes.\n", view)
		return nil
	}

	// Leave room for the color, timestamp, and title columns.
	width := utils.TerminalWidth(100)
	snippetWidth := width - 50
	if snippetWidth < 20 {
		snippetWidth = 20
	}

	for i, n := range ns {
		line := fmt.Sprintf("%-8s %s  %s", note.ColorFor(i), note.CreatedAtDisplay(n.CreatedAt), n.Title)
		if snippet := note.Snippet(n.Body, snippetWidth); snippet != "" {
			line += "  • " + snippet
		}
		fmt.Println(line)
	}

	return nil
}
