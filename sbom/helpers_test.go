package sbom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/transitive-sbom/sbom"
)

func text(value string) *string {
	return &value
}

func flag(value bool) *bool {
	return &value
}

func newPackage(identifier, name, version string) *sbom.Package {
	return &sbom.Package{
		SPDXID:  identifier,
		Name:    name,
		Version: version,
	}
}

// reference is how generators list packages they did not analyse.
func reference(identifier, name, version string) *sbom.Package {
	pkg := newPackage(identifier, name, version)
	pkg.FilesAnalyzed = flag(false)
	return pkg
}

func detailed(identifier, name, version, license string) *sbom.Package {
	pkg := newPackage(identifier, name, version)
	pkg.FilesAnalyzed = flag(true)
	pkg.LicenseConcluded = text(license)
	pkg.LicenseDeclared = text(license)
	pkg.DownloadLocation = text("https://example.com/" + name)
	pkg.CopyrightText = text("Copyright " + name + " authors")
	return pkg
}

func relation(from, kind, to string) *sbom.Relationship {
	return &sbom.Relationship{
		Element: from,
		Type:    kind,
		Related: to,
	}
}

func newDocument(name string, packages []*sbom.Package, relations ...*sbom.Relationship) *sbom.Document {
	document := &sbom.Document{
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              name,
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		DocumentNamespace: "https://example.com/spdx/" + name,
		Packages:          packages,
		Relationships:     relations,
	}
	document.Reindex()
	return document
}

func countEdges(document *sbom.Document, from, kind, to string) int {
	total := 0
	for _, relation := range document.Relationships {
		if relation.Element == from && relation.Type == kind && relation.Related == to {
			total += 1
		}
	}
	return total
}

func identifiers(packages []*sbom.Package) []string {
	result := make([]string, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, pkg.SPDXID)
	}
	return result
}

func writeFixture(t *testing.T, directory, name, content string) string {
	t.Helper()
	fullpath := filepath.Join(directory, name)
	if err := os.MkdirAll(filepath.Dir(fullpath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fullpath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fullpath
}
