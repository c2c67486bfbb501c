package archive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/fzf"
	"github.com/sintya/dinote/internal/state"
)

func NewCmdArchive(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive [id]",
		Short: "Archive a note.",
		Long: heredoc.Doc(`
			Moves a note from the active view to the archived view. With no id
			argument a fuzzy finder opens over the active notes.

			Example:
			  dinote archive
			  dinote archive some-note-id
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, title, err := resolveTarget(s, args)
			if err != nil {
				return err
			}
			if err := s.Client.Archive(id); err != nil {
				return err
			}
			fmt.Printf("Archived %q\n", title)
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
		if n.Archived {
			return "", "", fmt.Errorf("note %q is already archived", n.Title)
		}
		return n.ID, n.Title, nil
	}

	picker := fzf.NewNotePicker(s.Client, "Select a note to archive")
	n, err := picker.Pick("active", "")
	if err != nil {
		return "", "", err
	}
	return n.ID, n.Title, nil
}
