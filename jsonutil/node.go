package jsonutil

// Kind identifies the shape of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

type (
	// Node is an immutable, order-preserving JSON value.
	Node struct {
		kind   Kind
		text   string // string value, number literal or "true"/"false"
		items  []*Node
		fields []member
	}

	member struct {
		Name  string
		Value *Node
	}
)

var null = &Node{kind: KindNull}

// Null returns the JSON null node.
func Null() *Node {
	return null
}

// String returns a string node.
func String(value string) *Node {
	return &Node{kind: KindString, text: value}
}

// Number returns a number node holding the literal as written.
func Number(literal string) *Node {
	return &Node{kind: KindNumber, text: literal}
}

// Bool returns a boolean node.
func Bool(value bool) *Node {
	if value {
		return &Node{kind: KindBool, text: "true"}
	}
	return &Node{kind: KindBool, text: "false"}
}

// arrayOf returns an array node with the supplied items; nil items are stored as null.
func arrayOf(items ...*Node) *Node {
	node := &Node{kind: KindArray, items: make([]*Node, 0, len(items))}
	for _, item := range items {
		if item == nil {
			item = null
		}
		node.items = append(node.items, item)
	}
	return node
}

// stringsOf returns an array node of string nodes.
func stringsOf(values ...string) *Node {
	node := &Node{kind: KindArray, items: make([]*Node, 0, len(values))}
	for _, value := range values {
		node.items = append(node.items, String(value))
	}
	return node
}

// objectOf returns an object node. A repeated field name replaces the earlier
// value but keeps its original position.
func objectOf(fields ...member) *Node {
	node := &Node{kind: KindObject}
	for _, field := range fields {
		node.set(field.Name, field.Value)
	}
	return node
}

func (n *Node) set(name string, value *Node) {
	if value == nil {
		value = null
	}
	for i := range n.fields {
		if n.fields[i].Name == name {
			n.fields[i].Value = value
			return
		}
	}
	n.fields = append(n.fields, member{Name: name, Value: value})
}

// Kind returns the node kind; a nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsNull reports whether n is nil or the JSON null literal.
func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Kind() == KindObject }

// IsTextual reports whether n is a string.
func (n *Node) IsTextual() bool { return n.Kind() == KindString }

// Text returns the string value, number literal or boolean literal; empty for other kinds.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Len returns the number of array items or object fields.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.fields)
	}
	return 0
}

// Has reports whether the object carries a field with the given name, including null-valued fields.
func (n *Node) Has(name string) bool {
	_, ok := n.lookup(name)
	return ok
}

// Get returns the named field value or nil when n is not an object or lacks the field.
func (n *Node) Get(name string) *Node {
	value, _ := n.lookup(name)
	return value
}

func (n *Node) lookup(name string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	for _, field := range n.fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// String renders n as compact JSON.
func (n *Node) String() string {
	stream := compact.BorrowStream(nil)
	defer compact.ReturnStream(stream)
	n.Write(stream)
	return string(stream.Buffer())
}
