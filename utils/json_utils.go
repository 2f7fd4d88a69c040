package utils

import (
	"encoding/json"
	"log"
)

// SafeParseJSON parses a stored JSON blob that may be absent or malformed.
// On any parse failure it logs a warning and returns an empty map, so a
// single bad payload never blocks processing of the record that carries it.
func SafeParseJSON(raw *string) map[string]interface{} {
	if raw == nil || *raw == "" {
		return map[string]interface{}{}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(*raw), &parsed); err != nil {
		log.Printf("Warning: ignoring malformed JSON payload: %v", err)
		return map[string]interface{}{}
	}
	if parsed == nil {
		return map[string]interface{}{}
	}
	return parsed
}

// FloatField reads a numeric field from a parsed JSON map. JSON numbers
// decode as float64; string-typed numbers are not coerced.
func FloatField(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// StringField reads a string field from a parsed JSON map.
func StringField(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
