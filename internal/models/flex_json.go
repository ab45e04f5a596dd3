package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// jsonFieldMaps caches JSON tag -> struct field index mappings per type
var jsonFieldMaps sync.Map

func getJSONFieldMap(t reflect.Type) map[string]int {
	if cached, ok := jsonFieldMaps.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		fields[name] = i
	}
	jsonFieldMaps.Store(t, fields)
	return fields
}

// UnmarshalJSON accepts both native numbers and numeric strings. Form inputs
// ("36.8", "4") are posted as strings by the web client.
func (s *TeamStats) UnmarshalJSON(data []byte) error {
	type Alias TeamStats
	return flexUnmarshal(data, (*Alias)(s))
}

// UnmarshalJSON accepts both native numbers and numeric strings.
func (w *Weather) UnmarshalJSON(data []byte) error {
	type Alias Weather
	return flexUnmarshal(data, (*Alias)(w))
}

// flexUnmarshal decodes data into target (a pointer to a struct without its own
// UnmarshalJSON), coercing JSON strings into numeric and bool fields.
func flexUnmarshal(data []byte, target any) error {
	// Fast path: try standard unmarshal (works when all types match natively)
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}

	// Slow path: field-by-field with string-to-native coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(target).Elem()
	fieldMap := getJSONFieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if err := coerceStringToField(fv, s); err != nil {
				return fmt.Errorf("flex unmarshal %s: %w", key, err)
			}
			continue
		}

		return fmt.Errorf("flex unmarshal %s: unsupported value %s", key, string(rawVal))
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// "3.0" is accepted, "3.5" is not
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if n != math.Trunc(n) {
			return fmt.Errorf("%q is not a whole number", s)
		}
		fv.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.String:
		fv.SetString(s)
	default:
		return fmt.Errorf("cannot coerce string into %s", fv.Kind())
	}
	return nil
}
