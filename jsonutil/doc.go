// Package jsonutil provides an order-preserving JSON node tree and the small
// set of streaming helpers the catalog codecs are written against.
//
// A Node is one of a closed set of kinds (null, string, number, bool, array,
// object). Objects keep their fields in document order so that canonical
// output can be reproduced byte for byte. Parsing and generation are backed by
// github.com/json-iterator/go.
//
// Extraction helpers such as StringArray and StringOrNil coerce node values to
// Go strings and report failures as *DecodeError.
package jsonutil
