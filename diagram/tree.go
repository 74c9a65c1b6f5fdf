package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/joshyorko/transitive-sbom/pretty"
	"github.com/joshyorko/transitive-sbom/sbom"
)

const (
	recurringMark = ` (cycle)`
)

// Tree renders the document roots as a terminal tree, one tree per root.
func Tree(document *sbom.Document) string {
	styles := pretty.NewTreeStyles()
	rendered := make([]string, 0, 4)
	for _, root := range Outline(document) {
		rendered = append(rendered, styled(branch(root, styles), styles).String())
	}
	return strings.Join(rendered, "\n")
}

func branch(node *Node, styles pretty.TreeStyles) *tree.Tree {
	result := tree.Root(node.Label())
	for _, child := range node.Children {
		switch {
		case child.Recurring:
			result.Child(styles.Repeat.Render(child.Label() + recurringMark))
		case len(child.Children) == 0:
			result.Child(child.Label())
		default:
			result.Child(styled(branch(child, styles), styles))
		}
	}
	return result
}

func styled(branch *tree.Tree, styles pretty.TreeStyles) *tree.Tree {
	return branch.
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Enumerator).
		RootStyle(styles.Root).
		ItemStyle(styles.Item)
}
