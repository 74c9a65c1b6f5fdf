// Package diagram renders the package graph of an SPDX document as a
// nested outline: a mermaid mindmap or a terminal tree. Children of a
// package are its dependencies followed by its contained packages.
package diagram
