package sbom

import (
	"github.com/joshyorko/transitive-sbom/common"
)

// Report tells what a population pass changed in the target document.
type Report struct {
	Merged        int `json:"merged"`
	Stubs         int `json:"stubs"`
	Relationships int `json:"relationships"`
}

type populator struct {
	indexer *Indexer
	target  *Document
	visited map[string]bool
	merged  map[string]bool
	report  *Report
}

// Populate enriches every package of the target document, and everything
// reachable from them, with detail from the index. Packages which get
// added during the pass are reached through their relationships.
func (it *Indexer) Populate(target *Document) Report {
	defer common.Timeline("populate done")

	report := Report{}
	merged := make(map[string]bool)
	snapshot := append([]*Package{}, target.Packages...)
	for _, pkg := range snapshot {
		walker := &populator{
			indexer: it,
			target:  target,
			visited: make(map[string]bool),
			merged:  merged,
			report:  &report,
		}
		walker.merge(pkg)
	}
	common.Debug("Population merged %d packages, created %d stubs and %d relationships.", report.Merged, report.Stubs, report.Relationships)
	return report
}

type packageSet struct {
	members []*Package
	seen    map[string]bool
}

func (it *packageSet) add(packages ...*Package) {
	for _, pkg := range packages {
		if it.seen[pkg.SPDXID] {
			continue
		}
		it.seen[pkg.SPDXID] = true
		it.members = append(it.members, pkg)
	}
}

func (it *populator) merge(pkg *Package) {
	if it.visited[pkg.SPDXID] {
		return
	}
	it.visited[pkg.SPDXID] = true

	children := &packageSet{seen: make(map[string]bool)}
	children.add(it.target.DependentPackages(pkg)...)
	children.add(it.target.ContainedPackages(pkg)...)

	detail, ok := it.indexer.Lookup(pkg.Name, pkg.Version)
	if ok {
		common.Trace("Merging %s from %q.", pkg.Identity(), detail.Source)
		pkg.PackageDetail = detail.Package.PackageDetail.Clone()
		if !it.merged[pkg.SPDXID] {
			it.merged[pkg.SPDXID] = true
			it.report.Merged += 1
		}
		for _, dependency := range detail.Document.DependentPackages(detail.Package) {
			child := it.obtain(dependency)
			it.relate(pkg, DependsOn, DependencyOf, child)
			children.add(child)
		}
		for _, contained := range detail.Document.ContainedPackages(detail.Package) {
			child := it.obtain(contained)
			it.relate(pkg, Contains, ContainedBy, child)
			children.add(child)
		}
	}

	for _, child := range children.members {
		it.merge(child)
	}
}

// obtain finds the package with the pattern's identity in the target, or
// adds a stub copy of the pattern.
func (it *populator) obtain(pattern *Package) *Package {
	if existing, ok := it.target.FindPackage(pattern.Identity()); ok {
		return existing
	}
	stub := it.target.AddPackage(pattern.Stub())
	it.report.Stubs += 1
	common.Trace("Added stub %s as %q.", stub.Identity(), stub.SPDXID)
	return stub
}

// relate ensures both the edge and its inverse exist.
func (it *populator) relate(from *Package, kind, inverse string, to *Package) {
	if it.target.EnsureRelationship(from.SPDXID, kind, to.SPDXID) {
		it.report.Relationships += 1
	}
	if it.target.EnsureRelationship(to.SPDXID, inverse, from.SPDXID) {
		it.report.Relationships += 1
	}
}
