package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSafeParseJSON(t *testing.T) {
	// nil and empty inputs yield an empty map
	assert.Empty(t, SafeParseJSON(nil))
	assert.Empty(t, SafeParseJSON(strPtr("")))

	// malformed JSON is tolerated, not fatal
	assert.Empty(t, SafeParseJSON(strPtr("{not json")))
	assert.Empty(t, SafeParseJSON(strPtr("null")))

	parsed := SafeParseJSON(strPtr(`{"accuracy": 0.9, "note": "ok"}`))
	assert.Equal(t, 0.9, parsed["accuracy"])
	assert.Equal(t, "ok", parsed["note"])
}

func TestFloatField(t *testing.T) {
	m := SafeParseJSON(strPtr(`{"accuracy": 0.85, "label": "x"}`))

	v, ok := FloatField(m, "accuracy")
	assert.True(t, ok)
	assert.Equal(t, 0.85, v)

	// string values are not coerced to numbers
	_, ok = FloatField(m, "label")
	assert.False(t, ok)

	_, ok = FloatField(m, "missing")
	assert.False(t, ok)
}

func TestStringField(t *testing.T) {
	m := SafeParseJSON(strPtr(`{"recommendation": "add capacity", "n": 2}`))

	v, ok := StringField(m, "recommendation")
	assert.True(t, ok)
	assert.Equal(t, "add capacity", v)

	_, ok = StringField(m, "n")
	assert.False(t, ok)
}
