package sbom

import (
	"fmt"

	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pathlib"
)

// Detail is a detailed package together with the supplemental document
// which owns it.
type Detail struct {
	Package  *Package
	Document *Document
	Source   string
}

// Indexer collects detailed packages from supplemental documents. The
// first ingested candidate of an identity wins every lookup.
type Indexer struct {
	documents  map[string]*Document
	sources    []string
	candidates []Detail
	first      map[Identity]int
}

func NewIndexer() *Indexer {
	return &Indexer{
		documents:  make(map[string]*Document),
		sources:    make([]string, 0, 10),
		candidates: make([]Detail, 0, 100),
		first:      make(map[Identity]int),
	}
}

// Ingest loads every not yet seen document matching the pattern.
func (it *Indexer) Ingest(pattern string) error {
	filenames, err := pathlib.Glob(pattern)
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		common.Debug("Supplemental pattern %q matched no files.", pattern)
	}
	for _, filename := range filenames {
		if _, ok := it.documents[filename]; ok {
			common.Trace("Already indexed %q, skipping.", filename)
			continue
		}
		document, err := LoadDocument(filename)
		if err != nil {
			return fmt.Errorf("failed to index supplemental document: %w", err)
		}
		it.AddDocument(filename, document)
	}
	return nil
}

// AddDocument folds an already loaded document into the index. A source
// name seen before is ignored.
func (it *Indexer) AddDocument(source string, document *Document) bool {
	if _, ok := it.documents[source]; ok {
		return false
	}
	it.documents[source] = document
	it.sources = append(it.sources, source)
	added := 0
	for _, pkg := range document.Packages {
		if !pkg.Detailed() {
			continue
		}
		identity := pkg.Identity()
		if _, ok := it.first[identity]; !ok {
			it.first[identity] = len(it.candidates)
		} else {
			common.Trace("Package %s in %q is shadowed by an earlier document.", identity, source)
		}
		it.candidates = append(it.candidates, Detail{
			Package:  pkg,
			Document: document,
			Source:   source,
		})
		added += 1
	}
	common.Debug("Indexed %d detailed packages from %q.", added, source)
	return true
}

// Lookup finds the first detailed package with exactly the given name and
// version. A miss is a normal outcome, not an error.
func (it *Indexer) Lookup(name, version string) (Detail, bool) {
	at, ok := it.first[Identity{Name: name, Version: version}]
	if !ok {
		return Detail{}, false
	}
	return it.candidates[at], true
}

func (it *Indexer) Sources() []string {
	return append([]string{}, it.sources...)
}

func (it *Indexer) Candidates() int {
	return len(it.candidates)
}
