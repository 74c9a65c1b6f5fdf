package sbom

const (
	DependsOn    = `DEPENDS_ON`
	DependencyOf = `DEPENDENCY_OF`
	Contains     = `CONTAINS`
	ContainedBy  = `CONTAINED_BY`
	Describes    = `DESCRIBES`
)

// Identity is the cross document key of a package. Element ids are local
// to one document, so they never identify a package between documents.
type Identity struct {
	Name    string
	Version string
}

// Checksum represents a checksum in SPDX format.
type Checksum struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Value     string `json:"checksumValue" yaml:"checksumValue"`
}

// ExternalRef represents an external reference in SPDX format.
type ExternalRef struct {
	ReferenceCategory string  `json:"referenceCategory" yaml:"referenceCategory"`
	ReferenceType     string  `json:"referenceType" yaml:"referenceType"`
	ReferenceLocator  string  `json:"referenceLocator" yaml:"referenceLocator"`
	Comment           *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// CreationInfo represents creation info in SPDX format.
type CreationInfo struct {
	Creators           []string `json:"creators,omitempty" yaml:"creators,omitempty"`
	Created            string   `json:"created,omitempty" yaml:"created,omitempty"`
	Comment            *string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	LicenseListVersion *string  `json:"licenseListVersion,omitempty" yaml:"licenseListVersion,omitempty"`
}

// PackageDetail is the block of provenance fields produced by analysing a
// package. It is always replaced as a whole, never merged field by field.
type PackageDetail struct {
	FileName             *string       `json:"packageFileName,omitempty" yaml:"packageFileName,omitempty"`
	DownloadLocation     *string       `json:"downloadLocation,omitempty" yaml:"downloadLocation,omitempty"`
	FilesAnalyzed        *bool         `json:"filesAnalyzed,omitempty" yaml:"filesAnalyzed,omitempty"`
	Checksums            []Checksum    `json:"checksums,omitempty" yaml:"checksums,omitempty"`
	Homepage             *string       `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	SourceInfo           *string       `json:"sourceInfo,omitempty" yaml:"sourceInfo,omitempty"`
	LicenseConcluded     *string       `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`
	LicenseInfoFromFiles []string      `json:"licenseInfoFromFiles,omitempty" yaml:"licenseInfoFromFiles,omitempty"`
	LicenseDeclared      *string       `json:"licenseDeclared,omitempty" yaml:"licenseDeclared,omitempty"`
	LicenseComments      *string       `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`
	CopyrightText        *string       `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`
	Summary              *string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description          *string       `json:"description,omitempty" yaml:"description,omitempty"`
	Comment              *string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	ExternalRefs         []ExternalRef `json:"externalRefs,omitempty" yaml:"externalRefs,omitempty"`
	Supplier             *string       `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	Originator           *string       `json:"originator,omitempty" yaml:"originator,omitempty"`
	AttributionTexts     []string      `json:"attributionTexts,omitempty" yaml:"attributionTexts,omitempty"`
}

// Package represents a package in SPDX format.
type Package struct {
	SPDXID        string `json:"SPDXID,omitempty" yaml:"SPDXID,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Version       string `json:"versionInfo,omitempty" yaml:"versionInfo,omitempty"`
	PackageDetail `yaml:",inline"`
	HasFiles      []string `json:"hasFiles,omitempty" yaml:"hasFiles,omitempty"`
}

// File represents a file in SPDX format.
type File struct {
	SPDXID             string     `json:"SPDXID,omitempty" yaml:"SPDXID,omitempty"`
	FileName           string     `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	Checksums          []Checksum `json:"checksums,omitempty" yaml:"checksums,omitempty"`
	LicenseConcluded   *string    `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`
	LicenseInfoInFiles []string   `json:"licenseInfoInFiles,omitempty" yaml:"licenseInfoInFiles,omitempty"`
	CopyrightText      *string    `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`
}

// Relationship represents a directed, typed edge between two elements.
type Relationship struct {
	Element string  `json:"spdxElementId" yaml:"spdxElementId"`
	Type    string  `json:"relationshipType" yaml:"relationshipType"`
	Related string  `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`
	Comment *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Document represents the complete SPDX SBOM document.
type Document struct {
	SPDXID            string          `json:"SPDXID,omitempty" yaml:"SPDXID,omitempty"`
	Name              string          `json:"name,omitempty" yaml:"name,omitempty"`
	SPDXVersion       string          `json:"spdxVersion,omitempty" yaml:"spdxVersion,omitempty"`
	DataLicense       string          `json:"dataLicense,omitempty" yaml:"dataLicense,omitempty"`
	DocumentNamespace string          `json:"documentNamespace,omitempty" yaml:"documentNamespace,omitempty"`
	Comment           *string         `json:"comment,omitempty" yaml:"comment,omitempty"`
	CreationInfo      *CreationInfo   `json:"creationInfo,omitempty" yaml:"creationInfo,omitempty"`
	Files             []*File         `json:"files,omitempty" yaml:"files,omitempty"`
	Packages          []*Package      `json:"packages,omitempty" yaml:"packages,omitempty"`
	Relationships     []*Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	DescribesList     []string        `json:"documentDescribes,omitempty" yaml:"documentDescribes,omitempty"`

	index *elementIndex
}

func (it *Package) Identity() Identity {
	return Identity{Name: it.Name, Version: it.Version}
}

// Detailed tells if the package came out of real analysis. Unset
// filesAnalyzed counts as analysed.
func (it *Package) Detailed() bool {
	return it.FilesAnalyzed == nil || *it.FilesAnalyzed
}

func (it Identity) String() string {
	if len(it.Version) == 0 {
		return it.Name
	}
	return it.Name + "@" + it.Version
}
