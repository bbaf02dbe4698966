package jsonutil

import (
	"errors"
	jsoniter "github.com/json-iterator/go"
	"io"
	"strconv"
)

// Parse reads a single JSON document into a Node tree.
func Parse(data []byte) (*Node, error) {
	p := &parser{iter: jsoniter.ParseBytes(compact, data)}
	node := p.value()
	if p.err == nil {
		p.finish()
	}
	if p.err != nil {
		return nil, p.err
	}
	return node, nil
}

// ParseString reads a single JSON document into a Node tree.
func ParseString(text string) (*Node, error) {
	return Parse([]byte(text))
}

type parser struct {
	iter *jsoniter.Iterator
	err  error
}

func (p *parser) fail(message string) {
	if p.err != nil {
		return
	}
	if p.iter.Error != nil && !errors.Is(p.iter.Error, io.EOF) {
		message = p.iter.Error.Error()
	}
	p.err = decodeErrorf("Cannot parse JSON: %s", message)
}

// truncated reports whether the iterator recorded an error, including running out of input.
func (p *parser) truncated() bool {
	return p.iter.Error != nil
}

func (p *parser) value() *Node {
	iter := p.iter
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		if p.truncated() {
			p.fail("invalid null literal")
			return nil
		}
		return Null()
	case jsoniter.StringValue:
		value := iter.ReadString()
		if p.truncated() {
			p.fail("unterminated string")
			return nil
		}
		return String(value)
	case jsoniter.NumberValue:
		literal := iter.ReadNumber().String()
		if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
			p.fail("invalid number")
			return nil
		}
		if !isNumber(literal) {
			p.fail("invalid number " + strconv.Quote(literal))
			return nil
		}
		return Number(literal)
	case jsoniter.BoolValue:
		value := iter.ReadBool()
		if p.truncated() {
			p.fail("invalid boolean literal")
			return nil
		}
		return Bool(value)
	case jsoniter.ArrayValue:
		node := &Node{kind: KindArray, items: []*Node{}}
		ok := iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			item := p.value()
			if p.err != nil {
				return false
			}
			node.items = append(node.items, item)
			return true
		})
		if !ok {
			p.fail("malformed array")
			return nil
		}
		return node
	case jsoniter.ObjectValue:
		node := &Node{kind: KindObject}
		ok := iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			value := p.value()
			if p.err != nil {
				return false
			}
			node.set(field, value)
			return true
		})
		if !ok {
			p.fail("malformed object")
			return nil
		}
		return node
	}
	if errors.Is(iter.Error, io.EOF) {
		p.fail("unexpected end of input")
	} else {
		p.fail("unexpected character")
	}
	return nil
}

func (p *parser) finish() {
	iter := p.iter
	if iter.Error != nil {
		if !errors.Is(iter.Error, io.EOF) {
			p.fail(iter.Error.Error())
		}
		return
	}
	if iter.WhatIsNext() == jsoniter.InvalidValue && errors.Is(iter.Error, io.EOF) {
		return
	}
	p.err = decodeErrorf("Cannot parse JSON: unexpected trailing content")
}

// isNumber reports whether literal matches the JSON number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func isNumber(literal string) bool {
	i := 0
	if i < len(literal) && literal[i] == '-' {
		i++
	}
	switch {
	case i < len(literal) && literal[i] == '0':
		i++
	case i < len(literal) && literal[i] >= '1' && literal[i] <= '9':
		i = skipDigits(literal, i)
	default:
		return false
	}
	if i < len(literal) && literal[i] == '.' {
		start := i + 1
		if i = skipDigits(literal, start); i == start {
			return false
		}
	}
	if i < len(literal) && (literal[i] == 'e' || literal[i] == 'E') {
		i++
		if i < len(literal) && (literal[i] == '+' || literal[i] == '-') {
			i++
		}
		start := i
		if i = skipDigits(literal, start); i == start {
			return false
		}
	}
	return i == len(literal)
}

func skipDigits(literal string, i int) int {
	for i < len(literal) && literal[i] >= '0' && literal[i] <= '9' {
		i++
	}
	return i
}
