package namespace

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Namespace is an immutable, ordered sequence of levels with an optional identifier.
// The zero value is the empty (root) namespace without an identifier.
type Namespace struct {
	levels  []string
	uuid    string
	hasUUID bool
}

var empty = &Namespace{levels: []string{}}

// Empty returns the root namespace.
func Empty() *Namespace {
	return empty
}

// Of creates a namespace from levels.
func Of(levels ...string) (*Namespace, error) {
	if len(levels) == 0 {
		return empty, nil
	}
	if err := validate(levels); err != nil {
		return nil, err
	}
	return &Namespace{levels: append([]string{}, levels...)}, nil
}

// NewWithUUID creates a namespace from levels tagged with uuid. An empty uuid is still attached.
func NewWithUUID(levels []string, uuid string) (*Namespace, error) {
	if err := validate(levels); err != nil {
		return nil, err
	}
	return &Namespace{levels: append([]string{}, levels...), uuid: uuid, hasUUID: true}, nil
}

func validate(levels []string) error {
	for _, level := range levels {
		if strings.ContainsRune(level, 0) {
			return invalidArgument("Cannot create a namespace with the null-byte character")
		}
		if !utf8.ValidString(level) {
			return invalidArgument("Cannot create a namespace with invalid UTF-8 level: " + strconv.QuoteToASCII(level))
		}
	}
	return nil
}

// Levels returns a copy of the namespace levels, root first.
func (n *Namespace) Levels() []string {
	if n == nil {
		return nil
	}
	return append([]string{}, n.levels...)
}

// Level returns the level at pos.
func (n *Namespace) Level(pos int) string {
	return n.levels[pos]
}

// Length returns the number of levels.
func (n *Namespace) Length() int {
	if n == nil {
		return 0
	}
	return len(n.levels)
}

// IsEmpty reports whether the namespace has no levels.
func (n *Namespace) IsEmpty() bool {
	return n.Length() == 0
}

// UUID returns the identifier, or "" when none is attached.
func (n *Namespace) UUID() string {
	if n == nil {
		return ""
	}
	return n.uuid
}

// HasUUID reports whether an identifier is attached.
func (n *Namespace) HasUUID() bool {
	return n != nil && n.hasUUID
}

// WithUUID returns a copy of n tagged with uuid.
func (n *Namespace) WithUUID(uuid string) *Namespace {
	return &Namespace{levels: n.Levels(), uuid: uuid, hasUUID: true}
}

// Equal reports whether both namespaces have the same levels and identifier.
func (n *Namespace) Equal(other *Namespace) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.hasUUID != other.hasUUID || n.uuid != other.uuid || len(n.levels) != len(other.levels) {
		return false
	}
	for i := range n.levels {
		if n.levels[i] != other.levels[i] {
			return false
		}
	}
	return true
}

// String returns the levels joined with ".".
func (n *Namespace) String() string {
	if n == nil {
		return ""
	}
	return strings.Join(n.levels, ".")
}
