package remove

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/fzf"
	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
)

func NewCmdRemove(s *state.State) *cobra.Command {
	var (
		viewFlag  string
		forceFlag bool
	)

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a note permanently.",
		Long: heredoc.Doc(`
			Deletes a note from the service. Deletion is permanent; the command
			asks for confirmation unless --force is given. With no id argument a
			fuzzy finder opens over the chosen view.

			Example:
			  dinote delete
			  dinote delete some-note-id --force
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args, viewFlag, forceFlag)
		},
	}

	cmd.Flags().
		StringVarP(&viewFlag, "view", "v", "active", "View to pick from: active or archived")
	cmd.Flags().
		BoolVarP(&forceFlag, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func run(s *state.State, args []string, view string, force bool) error {
	var (
		n   note.Note
		err error
	)

	if len(args) > 0 {
		n, err = s.Client.Note(args[0])
	} else {
		picker := fzf.NewNotePicker(s.Client, "Select a note to delete")
		n, err = picker.Pick(view, "")
	}
	if err != nil {
		return err
	}

	if !force {
		input := confirmation.New(
			fmt.Sprintf("Delete %q? This cannot be undone.", n.Title),
			confirmation.No,
		)
		confirmed, err := input.RunPrompt()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := s.Client.Delete(n.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", n.Title)
	return nil
}
