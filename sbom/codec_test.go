package sbom_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshyorko/transitive-sbom/hamlet"
	"github.com/joshyorko/transitive-sbom/sbom"
)

const fullDocument = `{
  "spdxVersion": "SPDX-2.3",
  "dataLicense": "CC0-1.0",
  "SPDXID": "SPDXRef-DOCUMENT",
  "name": "demo-app",
  "documentNamespace": "https://example.com/spdx/demo-app-1.0",
  "creationInfo": {
    "created": "2024-01-01T00:00:00Z",
    "creators": ["Tool: demo-1.0", "Organization: Example & Co"],
    "licenseListVersion": "3.22"
  },
  "documentDescribes": ["SPDXRef-app"],
  "files": [
    {
      "SPDXID": "SPDXRef-File-1",
      "fileName": "./bin/app",
      "checksums": [{"algorithm": "SHA256", "checksumValue": "abc123"}],
      "licenseConcluded": "NOASSERTION",
      "licenseInfoInFiles": ["NOASSERTION"],
      "copyrightText": "NOASSERTION"
    }
  ],
  "packages": [
    {
      "SPDXID": "SPDXRef-app",
      "name": "demo-app",
      "versionInfo": "1.0",
      "downloadLocation": "NOASSERTION",
      "filesAnalyzed": true,
      "licenseConcluded": "MIT",
      "licenseDeclared": "MIT",
      "copyrightText": "Copyright <demo> authors",
      "externalRefs": [
        {
          "referenceCategory": "PACKAGE-MANAGER",
          "referenceType": "purl",
          "referenceLocator": "pkg:generic/demo-app@1.0",
          "comment": "primary"
        }
      ],
      "hasFiles": ["SPDXRef-File-1"]
    },
    {
      "SPDXID": "SPDXRef-zlib",
      "name": "zlib",
      "versionInfo": "1.3",
      "filesAnalyzed": false
    }
  ],
  "relationships": [
    {"spdxElementId": "SPDXRef-DOCUMENT", "relationshipType": "DESCRIBES", "relatedSpdxElement": "SPDXRef-app"},
    {"spdxElementId": "SPDXRef-app", "relationshipType": "DEPENDS_ON", "relatedSpdxElement": "SPDXRef-zlib"},
    {"spdxElementId": "SPDXRef-app", "relationshipType": "GENERATED_FROM", "relatedSpdxElement": "SPDXRef-File-1", "comment": "kept"}
  ]
}`

func TestParseJSONReadsAllSections(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	document, err := sbom.ParseJSON([]byte(fullDocument))
	must.Nil(err)
	wont.Nil(document)

	must.Equal("SPDX-2.3", document.SPDXVersion)
	must.Equal("3.22", *document.CreationInfo.LicenseListVersion)
	must.Length(1, document.Files)
	must.Length(2, document.Packages)
	must.Length(3, document.Relationships)
	must.Equal("kept", *document.Relationships[2].Comment)

	app := document.Packages[0]
	must.Equal(sbom.Identity{Name: "demo-app", Version: "1.0"}, app.Identity())
	must.True(app.Detailed())
	must.Equal("primary", *app.ExternalRefs[0].Comment)
	wont.True(document.Packages[1].Detailed())

	must.Equal([]string{"SPDXRef-zlib"}, identifiers(document.DependentPackages(app)))
	must.Equal([]string{"SPDXRef-app"}, identifiers(document.Roots()))
	must.True(document.HasElement("SPDXRef-File-1"))
}

func TestJSONRoundTripIsByteIdentical(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document, err := sbom.ParseJSON([]byte(fullDocument))
	must.Nil(err)
	first, err := document.JSON()
	must.Nil(err)

	again, err := sbom.ParseJSON(first)
	must.Nil(err)
	second, err := again.JSON()
	must.Nil(err)

	must.Equal(string(first), string(second))
	must.True(strings.HasSuffix(string(first), "}\n"))
	must.Contains(string(first), `"copyrightText": "Copyright <demo> authors"`)
	must.Contains(string(first), `"Organization: Example & Co"`)
}

func TestAbsentFieldsAreOmitted(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	document, err := sbom.ParseJSON([]byte(`{"SPDXID": "SPDXRef-DOCUMENT", "packages": [{"SPDXID": "SPDXRef-a", "name": "a", "filesAnalyzed": false}]}`))
	must.Nil(err)
	content, err := document.JSON()
	must.Nil(err)

	text := string(content)
	wont.Contains(text, "null")
	wont.Contains(text, "licenseConcluded")
	wont.Contains(text, "relationships")
	wont.Contains(text, "creationInfo")
	must.Contains(text, `"filesAnalyzed": false`)
}

func TestMalformedDocumentsAreRejected(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	for _, content := range []string{"", "null", "{", `{"packages": 7}`, "[]"} {
		_, err := sbom.ParseJSON([]byte(content))
		must.True(errors.Is(err, sbom.ErrInvalidDocument))
	}
	_, err := sbom.ParseYAML([]byte("packages: [unclosed"))
	must.True(errors.Is(err, sbom.ErrInvalidDocument))
}

func TestNullEntriesAreDropped(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document, err := sbom.ParseJSON([]byte(`{"packages": [null, {"SPDXID": "SPDXRef-a", "name": "a"}], "relationships": [null]}`))
	must.Nil(err)
	must.Length(1, document.Packages)
	must.Nil(document.Relationships)
}

func TestYAMLRoundTripKeepsGraph(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document, err := sbom.ParseJSON([]byte(fullDocument))
	must.Nil(err)
	yamled, err := document.YAML()
	must.Nil(err)
	must.Contains(string(yamled), "relatedSpdxElement: SPDXRef-zlib")

	back, err := sbom.ParseYAML(yamled)
	must.Nil(err)
	again, err := back.YAML()
	must.Nil(err)
	must.Equal(string(yamled), string(again))

	original, _ := document.JSON()
	converted, _ := back.JSON()
	must.Equal(string(original), string(converted))
}

func TestLoadAndSaveFollowFileExtension(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	directory := t.TempDir()
	source := writeFixture(t, directory, "demo.spdx.json", fullDocument)

	document, err := sbom.LoadDocument(source)
	must.Nil(err)

	yamlfile := filepath.Join(directory, "demo.spdx.yaml")
	written, err := sbom.SaveDocument(document, yamlfile)
	must.Nil(err)
	must.Equal(sbom.ShapeYAML, sbom.ShapeOf(yamlfile))
	must.True(strings.HasPrefix(string(written), "SPDXID: SPDXRef-DOCUMENT"))

	reloaded, err := sbom.LoadDocument(yamlfile)
	must.Nil(err)
	must.Length(2, reloaded.Packages)

	_, err = sbom.LoadDocument(filepath.Join(directory, "missing.spdx.json"))
	wont.Nil(err)
	wont.True(errors.Is(err, sbom.ErrInvalidDocument))
}

func TestShapesAndMediaTypes(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(sbom.ShapeJSON, sbom.ShapeOf("out.spdx.json"))
	must.Equal(sbom.ShapeYAML, sbom.ShapeOf("out.spdx.YML"))
	must.Equal(sbom.ShapeJSON, sbom.ShapeOf("out.spdx"))
	must.Equal("application/spdx+json", sbom.GetMediaType(sbom.ShapeJSON))
	must.Equal("application/spdx+yaml", sbom.GetMediaType(sbom.ShapeYAML))
}
