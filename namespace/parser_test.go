package namespace

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/catalog/jsonutil"
	"testing"
)

func TestFromJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		isNil       bool
		levels      []string
		uuid        string
		hasUUID     bool
	}{
		{description: "null", input: "null", isNil: true},
		{description: "array", input: `["accounting","tax"]`, levels: []string{"accounting", "tax"}},
		{description: "empty array", input: `[]`, levels: []string{}},
		{description: "object", input: `{"namespace":["accounting","tax"],"namespace-uuid":"12345-67890"}`, levels: []string{"accounting", "tax"}, uuid: "12345-67890", hasUUID: true},
		{description: "object reversed fields", input: `{"namespace-uuid":"12345-67890","namespace":["accounting"]}`, levels: []string{"accounting"}, uuid: "12345-67890", hasUUID: true},
		{description: "object without uuid", input: `{"namespace":["accounting"]}`, levels: []string{"accounting"}},
		{description: "object with null uuid", input: `{"namespace":["accounting"],"namespace-uuid":null}`, levels: []string{"accounting"}},
		{description: "object with extra field", input: `{"namespace":["a"],"owner":"x"}`, levels: []string{"a"}},
		{description: "levels kept verbatim", input: `[" Tax ","tax",""]`, levels: []string{" Tax ", "tax", ""}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := FromJSONString(testCase.input)
			require.NoError(t, err)
			if testCase.isNil {
				assert.Nil(t, actual)
				return
			}
			require.NotNil(t, actual)
			assert.Equal(t, testCase.levels, actual.Levels())
			assert.Equal(t, testCase.uuid, actual.UUID())
			assert.Equal(t, testCase.hasUUID, actual.HasUUID())
		})
	}
}

func TestFromJSONNilNode(t *testing.T) {
	actual, err := FromJSON(nil)
	assert.NoError(t, err)
	assert.Nil(t, actual)

	actual, err = FromJSON(jsonutil.Null())
	assert.NoError(t, err)
	assert.Nil(t, actual)
}

func TestFromJSONInvalid(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		target      error
		expectErr   string
	}{
		{description: "scalar string", input: `"accounting"`, target: ErrInvalidArgument, expectErr: `Cannot parse namespace from non-array or non-object node: "accounting"`},
		{description: "scalar number", input: `42`, target: ErrInvalidArgument, expectErr: "Cannot parse namespace from non-array or non-object node: 42"},
		{description: "missing namespace field", input: `{"namespace-uuid":"12345-67890"}`, target: ErrInvalidArgument, expectErr: "Cannot parse namespace from object: missing namespace field"},
		{description: "non-text level", input: `["accounting",1]`, target: jsonutil.ErrDecode, expectErr: "Cannot parse string from non-text value: 1"},
		{description: "non-array namespace field", input: `{"namespace":"accounting"}`, target: jsonutil.ErrDecode, expectErr: `Cannot parse string array from non-array: "accounting"`},
		{description: "null namespace field", input: `{"namespace":null}`, target: jsonutil.ErrDecode, expectErr: "Cannot parse string array from non-array: null"},
		{description: "non-text uuid", input: `{"namespace":[],"namespace-uuid":7}`, target: jsonutil.ErrDecode, expectErr: "Cannot parse to a string value: namespace-uuid: 7"},
		{description: "null byte level", input: `["a\u0000b"]`, target: ErrInvalidArgument, expectErr: "Cannot create a namespace with the null-byte character"},
		{description: "malformed text", input: `["accounting"`, target: jsonutil.ErrDecode},
		{description: "leading zero number", input: `01`, target: jsonutil.ErrDecode},
		{description: "leading zero in extra field", input: `{"namespace":["a"],"x":01}`, target: jsonutil.ErrDecode},
		{description: "invalid utf-8 level", input: "[\"a\xffb\"]", target: ErrInvalidArgument, expectErr: `Cannot create a namespace with invalid UTF-8 level: "a\xffb"`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := FromJSONString(testCase.input)
			require.Error(t, err)
			assert.Nil(t, actual)
			assert.True(t, errors.Is(err, testCase.target), err.Error())
			if testCase.expectErr != "" {
				assert.EqualError(t, err, testCase.expectErr)
			}
		})
	}
}

func TestToJSON(t *testing.T) {
	var testCases = []struct {
		description string
		namespace   *Namespace
		expect      string
	}{
		{description: "empty", namespace: Empty(), expect: `[]`},
		{description: "zero value", namespace: &Namespace{}, expect: `[]`},
		{description: "levels", namespace: mustOf(t, "accounting", "tax"), expect: `["accounting","tax"]`},
		{description: "uuid", namespace: mustWithUUID(t, []string{"accounting", "tax"}, "12345-67890"), expect: `{"namespace":["accounting","tax"],"namespace-uuid":"12345-67890"}`},
		{description: "empty uuid", namespace: mustWithUUID(t, []string{"a"}, ""), expect: `{"namespace":["a"],"namespace-uuid":""}`},
		{description: "empty levels with uuid", namespace: mustWithUUID(t, nil, "u"), expect: `{"namespace":[],"namespace-uuid":"u"}`},
		{description: "escaping", namespace: mustOf(t, `a"b`, `c\d`, "e\nf"), expect: `["a\"b","c\\d","e\nf"]`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := ToJSONString(testCase.namespace, false)
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestFromJSONBytesLeadingZero(t *testing.T) {
	actual, err := FromJSONBytes([]byte("-01"))
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, jsonutil.ErrDecode))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestToJSONNil(t *testing.T) {
	_, err := ToJSONString(nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "Invalid namespace: null")
}

func TestCanonicalLiterals(t *testing.T) {
	for _, literal := range []string{
		`[]`,
		`["accounting","tax"]`,
		`{"namespace":["accounting","tax"],"namespace-uuid":"12345-67890"}`,
	} {
		t.Run(literal, func(t *testing.T) {
			decoded, err := FromJSONString(literal)
			require.NoError(t, err)
			actual, err := ToJSONString(decoded, false)
			require.NoError(t, err)
			assert.Equal(t, literal, actual)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, namespace := range []*Namespace{
		Empty(),
		mustOf(t, "a"),
		mustOf(t, "accounting", "tax", "2024"),
		mustOf(t, "ünïcode", "日本", "emoji 🙂"),
		mustOf(t, "", " ", "dots.in.level"),
		mustWithUUID(t, nil, "0c2e0bd5-8cb0-4b0c-a2f1-4c2f9f64c4c7"),
		mustWithUUID(t, []string{"a", "b"}, ""),
	} {
		for _, pretty := range []bool{false, true} {
			text, err := ToJSONString(namespace, pretty)
			require.NoError(t, err)
			decoded, err := FromJSONString(text)
			require.NoError(t, err)
			assert.True(t, namespace.Equal(decoded), text)
		}
	}
}

func TestEncodingJSON(t *testing.T) {
	type request struct {
		Parent *Namespace `json:"parent"`
		Target Namespace  `json:"target"`
	}

	source := request{
		Parent: mustWithUUID(t, []string{"accounting"}, "12345-67890"),
		Target: *mustOf(t, "accounting", "tax"),
	}
	data, err := json.Marshal(source)
	require.NoError(t, err)
	assert.Equal(t, `{"parent":{"namespace":["accounting"],"namespace-uuid":"12345-67890"},"target":["accounting","tax"]}`, string(data))

	var decoded request
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, source.Parent.Equal(decoded.Parent))
	assert.True(t, source.Target.Equal(&decoded.Target))

	var withNull request
	require.NoError(t, json.Unmarshal([]byte(`{"parent":null,"target":null}`), &withNull))
	assert.Nil(t, withNull.Parent)
	assert.True(t, withNull.Target.IsEmpty())

	err = json.Unmarshal([]byte(`{"target":"accounting"}`), &withNull)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func mustOf(t *testing.T, levels ...string) *Namespace {
	t.Helper()
	namespace, err := Of(levels...)
	require.NoError(t, err)
	return namespace
}

func mustWithUUID(t *testing.T, levels []string, uuid string) *Namespace {
	t.Helper()
	namespace, err := NewWithUUID(levels, uuid)
	require.NoError(t, err)
	return namespace
}
