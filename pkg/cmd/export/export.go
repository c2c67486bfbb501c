package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
)

type frontmatter struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Created  string `yaml:"created,omitempty"`
	Archived bool   `yaml:"archived"`
}

func NewCmdExport(s *state.State) *cobra.Command {
	var (
		dirFlag      string
		archivedFlag bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes to markdown files.",
		Long: heredoc.Doc(`
			Writes every note as a markdown file with yaml frontmatter, one file
			per note. Active notes are exported by default; add --archived to
			include the archived view as well.

			Example:
			  dinote export --dir ./notes-backup --archived
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, dirFlag, archivedFlag)
		},
	}

	cmd.Flags().
		StringVarP(&dirFlag, "dir", "d", ".", "Directory to write the exported files into")
	cmd.Flags().
		BoolVarP(&archivedFlag, "archived", "a", false, "Also export archived notes")
	return cmd
}

func run(s *state.State, dir string, includeArchived bool) error {
	ns, err := s.Client.Notes()
	if err != nil {
		return err
	}

	if includeArchived {
		archived, err := s.Client.ArchivedNotes()
		if err != nil {
			return err
		}
		ns = append(ns, archived...)
	}

	if len(ns) == 0 {
		fmt.Println("Nothing to export.")
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, n := range ns {
		path := filepath.Join(dir, filenameFor(n))
		if err := writeNote(path, n); err != nil {
			return err
		}
	}

	fmt.Printf("Exported %d notes to %s\n", len(ns), dir)
	return nil
}

func writeNote(path string, n note.Note) error {
	fm, err := yaml.Marshal(frontmatter{
		ID:       n.ID,
		Title:    n.Title,
		Created:  n.CreatedAt,
		Archived: n.Archived,
	})
	if err != nil {
		return fmt.Errorf("failed to encode frontmatter for %q: %w", n.Title, err)
	}

	content := fmt.Sprintf("---\n%s---\n\n%s\n", fm, n.Body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// filenameFor builds a stable, filesystem-safe name. The id suffix keeps
// notes with identical titles from clobbering each other.
func filenameFor(n note.Note) string {
	slug := strings.ToLower(strings.TrimSpace(n.Title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "note"
	}

	id := n.ID
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("%s-%s.md", slug, id)
}
