package schema

import (
	"fmt"
	"reflect"
	"sort"
)

// Kind is one JSON-compatible value type a field may hold.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	List
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case Object:
		return "object"
	}
	return "unknown"
}

// TypeSet is the set of kinds a field accepts.
type TypeSet []Kind

func types(kinds ...Kind) TypeSet { return kinds }

// Schema declares the shape of one field family's cleaned output.
type Schema struct {
	BaseType   string
	Required   []string
	Optional   []string
	FieldTypes map[string]TypeSet
}

// Report is the outcome of validating one cleaned value. Missing required
// fields exclude the record from persistence; type mismatches and extra
// fields are surfaced for review but do not block it.
type Report struct {
	SchemaName      string
	Known           bool
	MissingRequired []string
	TypeMismatches  []string
	ExtraFields     []string
}

// Valid reports whether the value conforms to its declared shape.
func (r Report) Valid() bool {
	return len(r.MissingRequired) == 0 && len(r.TypeMismatches) == 0
}

// Lookup returns the schema registered for a canonical field name.
func Lookup(cleanedName string) (*Schema, bool) {
	s, ok := registry[cleanedName]
	return s, ok
}

// Validate checks a cleaned value against the schema registered for
// cleanedName. Names with no registered schema pass with Known false.
// The period field is accepted on every shape since any family can come
// from a phased listing.
func Validate(cleanedName string, value map[string]any) Report {
	report := Report{SchemaName: cleanedName}
	s, ok := registry[cleanedName]
	if !ok {
		return report
	}
	report.Known = true

	for _, field := range s.Required {
		if _, present := value[field]; !present {
			report.MissingRequired = append(report.MissingRequired, field)
		}
	}

	var extras []string
	for field, v := range value {
		if field == "period" {
			if !matchesKind(v, Int) {
				report.TypeMismatches = append(report.TypeMismatches, "period: expected int, got "+kindOf(v).String())
			}
			continue
		}
		ts, declared := s.FieldTypes[field]
		if !declared {
			if field == "value" && v == nil {
				continue
			}
			extras = append(extras, field)
			continue
		}
		if !matchesTypeSet(v, ts) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", field, ts, kindOf(v)))
		}
	}
	sort.Strings(extras)
	report.ExtraFields = extras
	return report
}

func (ts TypeSet) String() string {
	out := ""
	for i, k := range ts {
		if i > 0 {
			out += "|"
		}
		out += k.String()
	}
	return out
}

func matchesTypeSet(v any, ts TypeSet) bool {
	for _, k := range ts {
		if matchesKind(v, k) {
			return true
		}
	}
	return false
}

func matchesKind(v any, k Kind) bool {
	switch k {
	case Null:
		return v == nil
	case Bool:
		_, ok := v.(bool)
		return ok
	case Int:
		switch n := v.(type) {
		case int, int64:
			return true
		case float64:
			return n == float64(int64(n))
		}
		return false
	case Float:
		switch v.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case String:
		_, ok := v.(string)
		return ok
	case List:
		return v != nil && reflect.TypeOf(v).Kind() == reflect.Slice
	case Object:
		return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
	}
	return false
}

func kindOf(v any) Kind {
	if v == nil {
		return Null
	}
	switch v.(type) {
	case bool:
		return Bool
	case int, int64:
		return Int
	case float64, float32:
		return Float
	case string:
		return String
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice:
		return List
	case reflect.Map:
		return Object
	}
	return Null
}
