package unarchive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/fzf"
	"github.com/sintya/dinote/internal/state"
)

func NewCmdUnarchive(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unarchive [id]",
		Short: "Move an archived note back to the active view.",
		Long: heredoc.Doc(`
			Moves a note from the archived view back to the active view. With no
			id argument a fuzzy finder opens over the archived notes.

			Example:
			  dinote unarchive
			  dinote unarchive some-note-id
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, title, err := resolveTarget(s, args)
			if err != nil {
				return err
			}
			if err := s.Client.Unarchive(id); err != nil {
				return err
			}
			fmt.Printf("Unarchived %q\n", title)
			return nil
		},
	}

	return cmd
}

func resolveTarget(s *state.State, args []string) (id, title string, err error) {
	if len(args) > 0 {
		n, err := s.Client.Note(args[0])
		if err != nil {
			return "", "", err
		}
		if !n.Archived {
			return "", "", fmt.Errorf("note %q is not archived", n.Title)
		}
		return n.ID, n.Title, nil
	}

	picker := fzf.NewNotePicker(s.Client, "Select a note to unarchive")
	n, err := picker.Pick("archived", "")
	if err != nil {
		return "", "", err
	}
	return n.ID, n.Title, nil
}
