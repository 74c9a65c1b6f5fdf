// Package sbom holds the SPDX document model and the machinery which
// enriches a target document with transitive dependency and containment
// detail found in supplemental documents. Documents are loaded and saved
// in SPDX JSON or SPDX YAML form.
package sbom
