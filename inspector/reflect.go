// Package inspector renders read-only struct panels driven by `inspect` tags.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget types for rendering fields.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetSkip
)

// Field represents a struct field with rendering hints.
type Field struct {
	Name    string
	Value   interface{}
	Widget  Widget
	Options map[string]string
}

// ParseTag parses an inspect struct tag.
// Format: `inspect:"widget[,option:value...]"`
// Examples:
//
//	`inspect:"bar"`
//	`inspect:"bar,max:0.05"`
//	`inspect:"label,fmt:%.2e"`
//	`inspect:"skip"`
func ParseTag(tag string) (Widget, map[string]string) {
	options := make(map[string]string)

	if tag == "" {
		return WidgetAuto, options
	}

	parts := strings.Split(tag, ",")
	widgetStr := strings.TrimSpace(parts[0])

	var widget Widget
	switch widgetStr {
	case "label":
		widget = WidgetLabel
	case "bar":
		widget = WidgetBar
	case "skip":
		widget = WidgetSkip
	default:
		widget = WidgetAuto
	}

	// Parse options
	for _, part := range parts[1:] {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) == 2 {
			options[kv[0]] = kv[1]
		}
	}

	return widget, options
}

// ExtractFields uses reflection to extract the exported fields of a struct.
func ExtractFields(v interface{}) []Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	t := rv.Type()
	var fields []Field

	for i := 0; i < rv.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		widget, options := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}
		if widget == WidgetAuto {
			widget = WidgetLabel
		}

		fields = append(fields, Field{
			Name:    sf.Name,
			Value:   rv.Field(i).Interface(),
			Widget:  widget,
			Options: options,
		})
	}

	return fields
}

// FormatValue formats a field value as a string.
func FormatValue(value interface{}, fmtStr string) string {
	if fmtStr == "" {
		switch v := value.(type) {
		case float32:
			return fmt.Sprintf("%.2f", v)
		case float64:
			return fmt.Sprintf("%.4g", v)
		default:
			return fmt.Sprintf("%v", value)
		}
	}
	return fmt.Sprintf(fmtStr, value)
}

// GetMax returns the max option as a float, defaulting to 1.0.
func GetMax(options map[string]string) float32 {
	if maxStr, ok := options["max"]; ok {
		if max, err := strconv.ParseFloat(maxStr, 32); err == nil && max > 0 {
			return float32(max)
		}
	}
	return 1.0
}

// GetFloatValue extracts a float32 from numeric types.
func GetFloatValue(value interface{}) (float32, bool) {
	switch v := value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	default:
		return 0, false
	}
}

// Ratio returns value/max clamped to [0, 1].
func Ratio(value float32, options map[string]string) float32 {
	r := value / GetMax(options)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
