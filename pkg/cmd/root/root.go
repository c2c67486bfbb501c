package root

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sintya/dinote/internal/api"
	"github.com/sintya/dinote/internal/constants"
	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/pkg/cmd/archive"
	"github.com/sintya/dinote/pkg/cmd/export"
	"github.com/sintya/dinote/pkg/cmd/list"
	"github.com/sintya/dinote/pkg/cmd/new"
	"github.com/sintya/dinote/pkg/cmd/notes"
	"github.com/sintya/dinote/pkg/cmd/remove"
	"github.com/sintya/dinote/pkg/cmd/show"
	"github.com/sintya/dinote/pkg/cmd/unarchive"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "dinote",
		Aliases: []string{"dn"},
		Version: constants.Version,
		Short:   "Browse and manage your notes from the terminal.",
		Long: heredoc.Doc(`
			dinote is a terminal client for a remote notes service. Notes live on
			the service; this tool browses, creates, archives, and deletes them.

			Running dinote with no subcommand opens the interactive notes browser.
		`),
		// Open the notes TUI by default.
		RunE: notes.NewCmdNotes(s).RunE,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return refreshClient(s)
		},
	}

	cmd.PersistentFlags().
		String(
			"base-url",
			"",
			"Override the notes service base URL for this invocation.",
		)
	viper.BindPFlag("base_url", cmd.PersistentFlags().Lookup("base-url"))

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		new.NewCmdNew(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		archive.NewCmdArchive(s),
		unarchive.NewCmdUnarchive(s),
		remove.NewCmdRemove(s),
		export.NewCmdExport(s),
	)

	return cmd, nil
}

// refreshClient rebuilds the service client when --base-url overrides the
// configured endpoint. Flags are only visible to viper after parsing, which
// is later than state construction.
func refreshClient(s *state.State) error {
	base := strings.TrimRight(strings.TrimSpace(viper.GetString("base_url")), "/")
	if base == "" || base == s.Config.BaseURL {
		return nil
	}

	s.Config.BaseURL = base
	s.Client = api.NewClient(base, s.Config.Timeout())
	return nil
}
