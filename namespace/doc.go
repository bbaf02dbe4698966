// Package namespace defines the catalog Namespace value, an ordered path of
// name levels optionally tagged with a stable identifier, and its canonical
// JSON codec.
//
// A namespace without an identifier is written as a bare array of levels:
//
//	["accounting","tax"]
//
// A namespace with an identifier is written as an object whose field order is
// fixed:
//
//	{"namespace":["accounting","tax"],"namespace-uuid":"12345-67890"}
//
// The JSON null literal stands for "no namespace" and decodes to nil.
package namespace
