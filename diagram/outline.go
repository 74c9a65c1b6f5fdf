package diagram

import (
	"github.com/joshyorko/transitive-sbom/sbom"
)

const (
	anonymous = `Anonymous`
)

// Node is one package in the outline. Recurring is set when the package
// already appears on the path from the root; such nodes have no children.
type Node struct {
	Package   *sbom.Package
	Children  []*Node
	Recurring bool
}

// Outline builds the depth first outline for every root of the document.
func Outline(document *sbom.Document) []*Node {
	roots := document.Roots()
	result := make([]*Node, 0, len(roots))
	for _, root := range roots {
		result = append(result, expand(document, root, make(map[string]bool)))
	}
	return result
}

func expand(document *sbom.Document, pkg *sbom.Package, path map[string]bool) *Node {
	node := &Node{Package: pkg}
	if path[pkg.SPDXID] {
		node.Recurring = true
		return node
	}
	path[pkg.SPDXID] = true
	defer delete(path, pkg.SPDXID)

	for _, child := range document.DependentPackages(pkg) {
		node.Children = append(node.Children, expand(document, child, path))
	}
	for _, child := range document.ContainedPackages(pkg) {
		node.Children = append(node.Children, expand(document, child, path))
	}
	return node
}

func (it *Node) Name() string {
	if len(it.Package.Name) == 0 {
		return anonymous
	}
	return it.Package.Name
}

func (it *Node) Label() string {
	if len(it.Package.Version) == 0 {
		return it.Name()
	}
	return it.Name() + " " + it.Package.Version
}
