package cmd

import (
	"encoding/json"

	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pretty"
	"github.com/joshyorko/transitive-sbom/sbom"
)

type Summary struct {
	Input        string   `json:"input"`
	Output       string   `json:"output"`
	Supplemental []string `json:"supplemental"`
	Candidates   int      `json:"candidates"`
	sbom.Report
	MediaType string `json:"mediaType"`
	Digest    string `json:"digest"`
}

type Outcome struct {
	Document *sbom.Document
	Summary  Summary
}

// Merge indexes the supplemental documents, populates the input document
// from them and writes the result to output.
func Merge(input, output string, patterns []string) (*Outcome, error) {
	indexer, err := index(patterns)
	if err != nil {
		return nil, err
	}

	document, err := sbom.LoadDocument(input)
	if err != nil {
		return nil, err
	}
	report := indexer.Populate(document)

	written, err := sbom.SaveDocument(document, output)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Document: document,
		Summary: Summary{
			Input:        input,
			Output:       output,
			Supplemental: indexer.Sources(),
			Candidates:   indexer.Candidates(),
			Report:       report,
			MediaType:    sbom.GetMediaType(sbom.ShapeOf(output)),
			Digest:       common.Digest(written),
		},
	}, nil
}

func index(patterns []string) (*sbom.Indexer, error) {
	defer common.Stopwatch("Indexing supplemental documents lasted").Debug()

	indexer := sbom.NewIndexer()
	for _, pattern := range patterns {
		known := len(indexer.Sources())
		err := indexer.Ingest(pattern)
		if err != nil {
			return nil, err
		}
		if len(indexer.Sources()) == known {
			pretty.Warning("Supplemental path %q added no documents.", pattern)
		}
	}
	common.Debug("Indexed %d candidate packages from %d supplemental documents.", indexer.Candidates(), len(indexer.Sources()))
	return indexer, nil
}

func showSummary(summary Summary) {
	nice, err := json.MarshalIndent(summary, "", "  ")
	pretty.Guard(err == nil, 2, "%v", err)
	common.Stdout("%s\n", nice)
}
