// Package cli implements the nscodec command: it builds or loads a catalog
// namespace, optionally attaches an identifier, and writes the canonical JSON
// form to stdout or to any storage URL supported by github.com/viant/afs.
//
// Example:
//
//	nscodec -l accounting -l tax -a
//	nscodec -i s3://bucket/ns.json -p -o file:///tmp/ns.json
package cli
