package jsonutil

// StringArray returns the elements of an array node as strings. Every element must be a JSON string.
func StringArray(node *Node) ([]string, error) {
	if !node.IsArray() {
		return nil, decodeErrorf("Cannot parse string array from non-array: %s", node)
	}
	values := make([]string, 0, len(node.items))
	for _, item := range node.items {
		if !item.IsTextual() {
			return nil, decodeErrorf("Cannot parse string from non-text value: %s", item)
		}
		values = append(values, item.text)
	}
	return values, nil
}

// StringOrNil returns the named string field. The boolean is false when the
// field is absent or null; a non-string value is a *DecodeError.
func StringOrNil(property string, node *Node) (string, bool, error) {
	value, ok := node.lookup(property)
	if !ok || value.IsNull() {
		return "", false, nil
	}
	if !value.IsTextual() {
		return "", false, decodeErrorf("Cannot parse to a string value: %s: %s", property, value)
	}
	return value.text, true, nil
}
