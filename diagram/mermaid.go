package diagram

import (
	"strings"

	"github.com/joshyorko/transitive-sbom/sbom"
)

// Mermaid renders the document roots as a mermaid mindmap. Dots are not
// allowed in mindmap node text, so they become spaces.
func Mermaid(document *sbom.Document) string {
	var sink strings.Builder
	sink.WriteString("mindmap\n")
	for _, root := range Outline(document) {
		mermaidNode(&sink, 2, root)
	}
	return sink.String()
}

func mermaidNode(sink *strings.Builder, depth int, node *Node) {
	sink.WriteString(strings.Repeat(" ", depth))
	sink.WriteString(strings.ReplaceAll(node.Name(), ".", " "))
	sink.WriteString("\n")
	for _, child := range node.Children {
		mermaidNode(sink, depth+2, child)
	}
}
