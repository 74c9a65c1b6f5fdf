package sbom

// DependentPackages returns packages the given package depends on, whether
// the edge was recorded as DEPENDS_ON from the package or as DEPENDENCY_OF
// towards it. Results follow document package order. A package which the
// document does not own has no dependencies in it.
func (it *Document) DependentPackages(pkg *Package) []*Package {
	return it.neighbours(pkg, DependsOn, DependencyOf)
}

// ContainedPackages is the CONTAINS/CONTAINED_BY counterpart of
// DependentPackages.
func (it *Document) ContainedPackages(pkg *Package) []*Package {
	return it.neighbours(pkg, Contains, ContainedBy)
}

func (it *Document) neighbours(pkg *Package, forward, inverse string) []*Package {
	if it == nil || pkg == nil {
		return []*Package{}
	}
	index := it.ensureIndex()
	if index.byID[pkg.SPDXID] != pkg {
		return []*Package{}
	}
	found := make(map[string]bool)
	for _, relation := range index.outgoing[pkg.SPDXID] {
		if relation.Type == forward {
			found[relation.Related] = true
		}
	}
	for _, relation := range index.incoming[pkg.SPDXID] {
		if relation.Type == inverse {
			found[relation.Element] = true
		}
	}
	return index.packagesOf(found)
}

func FindDependentPackages(doc *Document, pkg *Package) []*Package {
	return doc.DependentPackages(pkg)
}

func FindContainedPackages(doc *Document, pkg *Package) []*Package {
	return doc.ContainedPackages(pkg)
}
