package show

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/config"
	"github.com/sintya/dinote/internal/fzf"
	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/utils"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var (
		viewFlag string
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"view", "cat"},
		Short:   "Show a single note as rendered markdown.",
		Long: heredoc.Doc(`
			Shows one note. With an id argument the note is fetched directly;
			without one a fuzzy finder opens over the chosen view.

			Example:
			  dinote show
			  dinote show some-note-id --copy
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateView(viewFlag); err != nil {
				return err
			}
			return run(s, args, viewFlag, copyFlag)
		},
	}

	cmd.Flags().
		StringVarP(&viewFlag, "view", "v", "active", "View to pick from: active or archived")
	cmd.Flags().
		BoolVarP(&copyFlag, "copy", "c", false, "Also copy the note body to the clipboard")
	return cmd
}

func run(s *state.State, args []string, view string, copyBody bool) error {
	var (
		n   note.Note
		err error
	)

	if len(args) > 0 {
		n, err = s.Client.Note(args[0])
	} else {
		picker := fzf.NewNotePicker(s.Client, "Select a note to show")
		n, err = picker.Pick(view, "")
	}
	if err != nil {
		return err
	}

	fmt.Println(n.Title)
	if ts := note.CreatedAtDisplay(n.CreatedAt); ts != "" {
		fmt.Println(ts)
	}
	fmt.Print(utils.RenderMarkdownBody(n.Body, utils.TerminalWidth(100)))

	if copyBody {
		if err := clipboard.WriteAll(n.Body); err != nil {
			return fmt.Errorf("failed to copy note body: %w", err)
		}
		fmt.Println("Copied note body to clipboard.")
	}

	return nil
}
