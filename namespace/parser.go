package namespace

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/viant/catalog/jsonutil"
)

const (
	fieldNamespace     = "namespace"
	fieldNamespaceUUID = "namespace-uuid"
)

// ToJSON streams the canonical form of namespace: a bare array of levels, or an
// object with "namespace" then "namespace-uuid" when an identifier is attached.
func ToJSON(namespace *Namespace, stream *jsoniter.Stream) error {
	if namespace == nil {
		return invalidArgument("Invalid namespace: null")
	}
	if namespace.hasUUID {
		stream.WriteObjectStart()
		stream.WriteObjectField(fieldNamespace)
		jsonutil.WriteStrings(stream, namespace.levels)
		stream.WriteMore()
		stream.WriteObjectField(fieldNamespaceUUID)
		stream.WriteString(namespace.uuid)
		stream.WriteObjectEnd()
	} else {
		jsonutil.WriteStrings(stream, namespace.levels)
	}
	return stream.Error
}

// FromJSON decodes a namespace node. A nil or null node yields a nil namespace
// and no error. Levels are taken verbatim.
func FromJSON(node *jsonutil.Node) (*Namespace, error) {
	switch node.Kind() {
	case jsonutil.KindNull:
		return nil, nil
	case jsonutil.KindArray:
		levels, err := jsonutil.StringArray(node)
		if err != nil {
			return nil, err
		}
		return Of(levels...)
	case jsonutil.KindObject:
		if !node.Has(fieldNamespace) {
			return nil, invalidArgument("Cannot parse namespace from object: missing namespace field")
		}
		levels, err := jsonutil.StringArray(node.Get(fieldNamespace))
		if err != nil {
			return nil, err
		}
		uuid, ok, err := jsonutil.StringOrNil(fieldNamespaceUUID, node)
		if err != nil {
			return nil, err
		}
		if !ok {
			return Of(levels...)
		}
		return NewWithUUID(levels, uuid)
	}
	return nil, invalidArgument("Cannot parse namespace from non-array or non-object node: " + node.String())
}

// ToJSONString returns the canonical JSON text of namespace.
func ToJSONString(namespace *Namespace, pretty bool) (string, error) {
	return jsonutil.Generate(func(stream *jsoniter.Stream) error {
		return ToJSON(namespace, stream)
	}, pretty)
}

// FromJSONString parses text and decodes the namespace it holds.
func FromJSONString(text string) (*Namespace, error) {
	node, err := jsonutil.ParseString(text)
	if err != nil {
		return nil, err
	}
	return FromJSON(node)
}

// FromJSONBytes parses data and decodes the namespace it holds.
func FromJSONBytes(data []byte) (*Namespace, error) {
	node, err := jsonutil.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromJSON(node)
}

// MarshalJSON implements json.Marshaler.
func (n Namespace) MarshalJSON() ([]byte, error) {
	text, err := ToJSONString(&n, false)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalJSON implements json.Unmarshaler; the null literal leaves n unchanged.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	decoded, err := FromJSONBytes(data)
	if err != nil {
		return err
	}
	if decoded != nil {
		*n = *decoded
	}
	return nil
}
