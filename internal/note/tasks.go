package note

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TaskCounts reports checkbox tasks found in a note body.
type TaskCounts struct {
	Open int
	Done int
}

func (c TaskCounts) Total() int {
	return c.Open + c.Done
}

// CountTasks walks the markdown list items of a body and tallies
// "[ ]"/"[x]" checkboxes. Bodies without markdown structure simply yield
// zero counts.
func CountTasks(body string) TaskCounts {
	var counts TaskCounts

	source := []byte(body)
	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(source))

	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			listItem, ok := n.(*ast.ListItem)
			if !ok {
				return ast.WalkContinue, nil
			}

			content := strings.TrimSpace(string(listItem.Text(source)))
			if len(strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(content, "[ ]"), "[x]"))) == 0 {
				return ast.WalkContinue, nil
			}

			switch {
			case strings.HasPrefix(content, "[ ]"):
				counts.Open++
			case strings.HasPrefix(content, "[x]"):
				counts.Done++
			}

			return ast.WalkContinue, nil
		},
	)

	return counts
}
