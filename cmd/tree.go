package cmd

import (
	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/diagram"
	"github.com/joshyorko/transitive-sbom/pretty"
	"github.com/joshyorko/transitive-sbom/sbom"
	"github.com/spf13/cobra"
)

var treeMermaid bool

var treeCmd = &cobra.Command{
	Use:   "tree <document>",
	Short: "Show the package tree of a single SPDX document.",
	Long: `Show the package tree of a single SPDX document, starting from the
packages the document describes. Nothing is merged or written.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		document, err := sbom.LoadDocument(args[0])
		if err != nil {
			common.Fatal("tree", err)
			panic(err)
		}
		if treeMermaid {
			common.Stdout("%s", renderMermaid(document))
			return
		}
		showTree(document)
	},
}

func renderMermaid(document *sbom.Document) string {
	return diagram.Mermaid(document)
}

func showTree(document *sbom.Document) {
	if len(document.Roots()) == 0 {
		pretty.Note("Document %q describes no packages.", document.Name)
	}
	pretty.Rule()
	pretty.Header(document.Name)
	if rendered := diagram.Tree(document); len(rendered) > 0 {
		common.Stdout("%s\n", rendered)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVarP(&treeMermaid, "mermaid", "", false, "Print a mermaid mindmap instead of a tree.")
}
