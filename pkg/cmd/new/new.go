package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var (
		bodyFlag  string
		pasteFlag bool
	)

	cmd := &cobra.Command{
		Use:     "new [title] [body]",
		Aliases: []string{"create", "add"},
		Short:   "Create a new note on the service.",
		Long: heredoc.Doc(`
			Creates a note with the given title and body. The body can be passed
			as a second argument, with --body, or pulled from the clipboard with
			--paste.

			Example:
			  dinote new "Groceries" "almond milk, oat bread"
			  dinote new "Meeting notes" --paste
		`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("error: no title given. Try again with 'dinote new [title]'")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args, bodyFlag, pasteFlag)
		},
	}

	cmd.Flags().
		StringVarP(&bodyFlag, "body", "b", "", "Body for the new note")
	cmd.Flags().
		BoolVarP(&pasteFlag, "paste", "p", false, "Use the clipboard contents as the body")
	return cmd
}

func run(s *state.State, args []string, bodyFlag string, pasteFlag bool) error {
	title := args[0]

	body := bodyFlag
	switch {
	case pasteFlag:
		msg, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		body = msg
	case body == "" && len(args) > 1:
		body = strings.Join(args[1:], " ")
	}

	if errs := note.ValidateDraft(title, body); !errs.Ok() {
		if errs.Title != "" {
			return fmt.Errorf("%s", errs.Title)
		}
		return fmt.Errorf("%s", errs.Body)
	}

	created, err := s.Client.Create(title, body)
	if err != nil {
		return err
	}

	fmt.Printf("Created note %q (%s)\n", created.Title, created.ID)
	return nil
}
