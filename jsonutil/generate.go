package jsonutil

import (
	jsoniter "github.com/json-iterator/go"
)

var (
	compact  = jsoniter.Config{}.Froze()
	indented = jsoniter.Config{IndentionStep: 2}.Froze()
)

// Generate runs fn against a fresh stream and returns the produced text.
func Generate(fn func(stream *jsoniter.Stream) error, pretty bool) (string, error) {
	api := compact
	if pretty {
		api = indented
	}
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)
	if err := fn(stream); err != nil {
		return "", err
	}
	if stream.Error != nil {
		return "", stream.Error
	}
	return string(stream.Buffer()), nil
}

// Write streams n to stream; a nil node is written as null.
func (n *Node) Write(stream *jsoniter.Stream) {
	switch n.Kind() {
	case KindNull:
		stream.WriteNil()
	case KindString:
		stream.WriteString(n.text)
	case KindNumber, KindBool:
		stream.WriteRaw(n.text)
	case KindArray:
		if len(n.items) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, item := range n.items {
			if i > 0 {
				stream.WriteMore()
			}
			item.Write(stream)
		}
		stream.WriteArrayEnd()
	case KindObject:
		if len(n.fields) == 0 {
			stream.WriteEmptyObject()
			return
		}
		stream.WriteObjectStart()
		for i, field := range n.fields {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.Name)
			field.Value.Write(stream)
		}
		stream.WriteObjectEnd()
	}
}

// WriteStrings writes values as a JSON array of strings.
func WriteStrings(stream *jsoniter.Stream, values []string) {
	if len(values) == 0 {
		stream.WriteEmptyArray()
		return
	}
	stream.WriteArrayStart()
	for i, value := range values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(value)
	}
	stream.WriteArrayEnd()
}
