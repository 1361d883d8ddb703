package logger

import (
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
)

// maskValue replaces every sensitive value regardless of its length.
const maskValue = "******"

// Desensitizer masks sensitive data in log fields
type Desensitizer struct {
	fields []string
}

// NewDesensitizer creates a desensitizer for the given field names.
// Names match case-insensitively as substrings, so "token" also
// covers "csrf_token" and "access_token".
func NewDesensitizer(fields []string) *Desensitizer {
	lower := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			lower = append(lower, f)
		}
	}
	return &Desensitizer{fields: lower}
}

// DesensitizeFields returns a copy of fields with sensitive data masked
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value, 0)
	}
	return result
}

// desensitizeValue processes a single value recursively
func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > 10 {
		return value
	}

	if d.isSensitiveField(key) {
		return mask(value)
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String || v.IsNil() {
			return value
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			out[k] = d.desensitizeValue(k, iter.Value().Interface(), depth+1)
		}
		return out
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && (v.IsNil() || v.Type().Elem().Kind() == reflect.Uint8) {
			return value
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = d.desensitizeValue("", v.Index(i).Interface(), depth+1)
		}
		return out
	default:
		return value
	}
}

// isSensitiveField checks if field name contains sensitive keywords
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	if fieldName == "" {
		return false
	}
	lowerName := strings.ToLower(fieldName)
	for _, f := range d.fields {
		if strings.Contains(lowerName, f) {
			return true
		}
	}
	return false
}

func mask(value any) any {
	if s, ok := value.(string); ok && s == "" {
		return s
	}
	return maskValue
}

// desensitizeHook masks entry data before it is formatted
type desensitizeHook struct {
	d *Desensitizer
}

func newDesensitizeHook(d *Desensitizer) *desensitizeHook {
	return &desensitizeHook{d: d}
}

// Levels returns all log levels
func (h *desensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire rewrites the entry fields in place
func (h *desensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.d.DesensitizeFields(entry.Data)
	return nil
}
