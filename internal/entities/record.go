// Package entities holds the game-data records the content pipeline reads
// and rewrites, plus typed views over the fields the tooltip engine uses.
package entities

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the record category, taken from the first directory under the data root
type Kind string

// Record kinds
const (
	KindUnknown  Kind = ""
	KindItem     Kind = "item"
	KindCreature Kind = "creature"
	KindProperty Kind = "property"
	KindSpell    Kind = "spell"
)

// Top-level data directories
const (
	DirItems      = "items"
	DirCreatures  = "creatures"
	DirProperties = "properties"
	DirSpells     = "spells"
)

// KindFromPath classifies a path relative to the data root
func KindFromPath(rel string) Kind {
	rel = filepath.ToSlash(filepath.Clean(rel))
	first, _, _ := strings.Cut(rel, "/")
	switch first {
	case DirItems:
		return KindItem
	case DirCreatures:
		return KindCreature
	case DirProperties:
		return KindProperty
	case DirSpells:
		return KindSpell
	default:
		return KindUnknown
	}
}

// Record is a JSON object that remembers the order its keys were written in.
// Values are string, json.Number, bool, nil, []any or *Record.
type Record struct {
	// Path is the file the record was loaded from, relative to the data root
	Path string
	Kind Kind

	fields *orderedmap.OrderedMap[string, any]
}

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// GetID returns the record id as text
func (r *Record) GetID() string {
	return r.Text("id")
}

// GetType returns the record kind
func (r *Record) GetType() string {
	if r.Kind == KindUnknown {
		return "record"
	}
	return string(r.Kind)
}

// Len returns the number of keys
func (r *Record) Len() int {
	return r.fields.Len()
}

// Keys returns the keys in order
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every key/value pair in order
func (r *Record) Each(fn func(key string, value any)) {
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Has reports whether key is present, even with a null value
func (r *Record) Has(key string) bool {
	_, ok := r.fields.Get(key)
	return ok
}

// Get returns the raw value stored under key
func (r *Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

// Set stores value under key. Existing keys keep their position.
func (r *Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Delete removes key and reports whether it was present
func (r *Record) Delete(key string) bool {
	_, ok := r.fields.Delete(key)
	return ok
}

// String returns the value under key when it is a JSON string
func (r *Record) String(key string) string {
	v, _ := r.fields.Get(key)
	s, _ := v.(string)
	return s
}

// Text returns the value under key rendered as text: strings as-is,
// numbers and booleans in their JSON form, anything else empty.
func (r *Record) Text(key string) string {
	v, _ := r.fields.Get(key)
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return FormatNumber(val)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}

// Float returns the numeric value under key
func (r *Record) Float(key string) (float64, bool) {
	v, _ := r.fields.Get(key)
	return toFloat(v)
}

// Int returns the numeric value under key truncated to an int, or def when
// the key is absent or not a number
func (r *Record) Int(key string, def int) int {
	f, ok := r.Float(key)
	if !ok {
		return def
	}
	return int(f)
}

// Truthy applies the usual loose-typing test to the value under key: absent,
// null, false, zero, "" and empty collections are false.
func (r *Record) Truthy(key string) bool {
	v, ok := r.fields.Get(key)
	if !ok {
		return false
	}
	return truthy(v)
}

// Strings returns the string elements of the array under key
func (r *Record) Strings(key string) []string {
	v, _ := r.fields.Get(key)
	items, _ := v.([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Object returns the nested object under key, or nil
func (r *Record) Object(key string) *Record {
	v, _ := r.fields.Get(key)
	obj, _ := v.(*Record)
	return obj
}

// Objects returns the object elements of the array under key
func (r *Record) Objects(key string) []*Record {
	v, _ := r.fields.Get(key)
	items, _ := v.([]any)
	var out []*Record
	for _, item := range items {
		if obj, ok := item.(*Record); ok {
			out = append(out, obj)
		}
	}
	return out
}

// SetTooltip replaces the tooltip field with lines
func (r *Record) SetTooltip(lines []string) {
	values := make([]any, len(lines))
	for i, line := range lines {
		values[i] = line
	}
	r.Set("tooltip", values)
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case *Record:
		return val.Len() > 0
	default:
		f, ok := toFloat(v)
		return ok && f != 0
	}
}

// FormatNumber renders a float without a trailing ".0" for whole values
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var _ core.Entity = (*Record)(nil)
