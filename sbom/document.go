package sbom

import (
	"fmt"
	"sort"
)

const (
	defaultPackageID = `SPDXRef-Package`
)

type edge struct {
	from, kind, to string
}

// elementIndex is derived state of a document. It remembers which elements
// it was built from, and is rebuilt whenever the element lists have been
// appended to, shortened or had entries replaced behind the document's back.
type elementIndex struct {
	files      []*File
	packages   []*Package
	relations  []*Relationship
	elements   map[string]bool
	byID       map[string]*Package
	position   map[string]int
	identities map[Identity]*Package
	edges      map[edge]bool
	outgoing   map[string][]*Relationship
	incoming   map[string][]*Relationship
}

func newElementIndex() *elementIndex {
	return &elementIndex{
		elements:   make(map[string]bool),
		byID:       make(map[string]*Package),
		position:   make(map[string]int),
		identities: make(map[Identity]*Package),
		edges:      make(map[edge]bool),
		outgoing:   make(map[string][]*Relationship),
		incoming:   make(map[string][]*Relationship),
	}
}

func (it *elementIndex) addPackage(pkg *Package, at int) {
	it.packages = append(it.packages, pkg)
	if pkg == nil {
		return
	}
	it.elements[pkg.SPDXID] = true
	if _, ok := it.byID[pkg.SPDXID]; !ok {
		it.byID[pkg.SPDXID] = pkg
		it.position[pkg.SPDXID] = at
	}
	if _, ok := it.identities[pkg.Identity()]; !ok {
		it.identities[pkg.Identity()] = pkg
	}
}

func (it *elementIndex) addRelationship(relation *Relationship) {
	it.relations = append(it.relations, relation)
	if relation == nil {
		return
	}
	it.edges[edge{relation.Element, relation.Type, relation.Related}] = true
	it.outgoing[relation.Element] = append(it.outgoing[relation.Element], relation)
	it.incoming[relation.Related] = append(it.incoming[relation.Related], relation)
}

func (it *elementIndex) packagesOf(identifiers map[string]bool) []*Package {
	result := make([]*Package, 0, len(identifiers))
	for identifier := range identifiers {
		if pkg, ok := it.byID[identifier]; ok {
			result = append(result, pkg)
		}
	}
	sort.SliceStable(result, func(left, right int) bool {
		return it.position[result[left].SPDXID] < it.position[result[right].SPDXID]
	})
	return result
}

func (it *Document) stale() bool {
	index := it.index
	if index == nil {
		return true
	}
	return !sameElements(index.files, it.Files) || !sameElements(index.packages, it.Packages) || !sameElements(index.relations, it.Relationships)
}

func sameElements[T any](known, current []*T) bool {
	if len(known) != len(current) {
		return false
	}
	for at, element := range current {
		if known[at] != element {
			return false
		}
	}
	return true
}

func (it *Document) ensureIndex() *elementIndex {
	if it.stale() {
		it.Reindex()
	}
	return it.index
}

// Reindex rebuilds lookup structures from the element lists. List changes
// are noticed automatically; editing ids or relationship fields of an
// element already in a list needs an explicit Reindex.
func (it *Document) Reindex() {
	index := newElementIndex()
	if len(it.SPDXID) > 0 {
		index.elements[it.SPDXID] = true
	}
	for _, file := range it.Files {
		index.files = append(index.files, file)
		if file != nil {
			index.elements[file.SPDXID] = true
		}
	}
	for at, pkg := range it.Packages {
		index.addPackage(pkg, at)
	}
	for _, relation := range it.Relationships {
		index.addRelationship(relation)
	}
	it.index = index
}

func (it *Document) HasElement(identifier string) bool {
	return it.ensureIndex().elements[identifier]
}

func (it *Document) PackageByID(identifier string) (*Package, bool) {
	pkg, ok := it.ensureIndex().byID[identifier]
	return pkg, ok
}

// FindPackage returns the first package, in document order, with given identity.
func (it *Document) FindPackage(identity Identity) (*Package, bool) {
	pkg, ok := it.ensureIndex().identities[identity]
	return pkg, ok
}

func (it *Document) freshID(candidate string) string {
	if len(candidate) == 0 {
		candidate = defaultPackageID
	}
	if !it.HasElement(candidate) {
		return candidate
	}
	for counter := 2; ; counter++ {
		attempt := fmt.Sprintf("%s-%d", candidate, counter)
		if !it.HasElement(attempt) {
			return attempt
		}
	}
}

// AddPackage appends the package to the document. An element id already
// used in the document is replaced with a fresh one.
func (it *Document) AddPackage(pkg *Package) *Package {
	pkg.SPDXID = it.freshID(pkg.SPDXID)
	it.Packages = append(it.Packages, pkg)
	it.index.addPackage(pkg, len(it.Packages)-1)
	return pkg
}

func (it *Document) HasRelationship(from, kind, to string) bool {
	return it.ensureIndex().edges[edge{from, kind, to}]
}

func (it *Document) AddRelationship(relation *Relationship) {
	it.ensureIndex()
	it.Relationships = append(it.Relationships, relation)
	it.index.addRelationship(relation)
}

// EnsureRelationship adds the edge unless it already exists and reports
// if something was added.
func (it *Document) EnsureRelationship(from, kind, to string) bool {
	if it.HasRelationship(from, kind, to) {
		return false
	}
	it.AddRelationship(&Relationship{
		Element: from,
		Type:    kind,
		Related: to,
	})
	return true
}

// Roots returns the packages the document describes, either through the
// documentDescribes list or through DESCRIBES relationships of the document.
func (it *Document) Roots() []*Package {
	index := it.ensureIndex()
	identifiers := make(map[string]bool)
	for _, identifier := range it.DescribesList {
		identifiers[identifier] = true
	}
	for _, relation := range index.outgoing[it.SPDXID] {
		if relation.Type == Describes {
			identifiers[relation.Related] = true
		}
	}
	return index.packagesOf(identifiers)
}
