package telemetry

import "go.opentelemetry.io/otel/attribute"

// attribute converts a loosely-typed key/value pair into an OTel
// attribute.KeyValue, covering the value shapes kiln's driver and testgen
// packages actually pass (strings, ints, bools); anything else is recorded
// through its String method, or as an empty string if it has none, rather
// than reached for via reflection.
func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		return attribute.String(key, toString(v))
	}
}

func toString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}
