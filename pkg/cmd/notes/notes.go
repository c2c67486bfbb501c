package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/config"
	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n", "tui"},
		Short:   "Open the interactive notes browser.",
		Long: heredoc.Doc(`
			Opens a full-screen browser over your notes. Switch between the
			active and archived views, create notes, archive or delete them,
			and preview bodies as rendered markdown.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := viewFlag
			if view == "" {
				view = s.Config.DefaultView
			}
			if err := config.ValidateView(view); err != nil {
				return err
			}
			return notes.Run(s, view)
		},
	}

	cmd.Flags().
		StringVarP(&viewFlag, "view", "v", "", "Initial view: active or archived")
	return cmd
}
