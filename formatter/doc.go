// Package formatter serializes a transport graph to a file format.
//
// This package is organized into:
// - format.go: supported formats and format selection
// - encoding.go: output text encodings (Pajek only)
// - pajek.go: Pajek serialization, every attribute written as text
// - gml.go: GML serialization, attributes written with their native types
// - file.go: Render, the io.Writer variants and WriteFile
//
// All serialization is done manually for precise control over output format.
package formatter
