// Package builders provides test data builders for creating test fixtures
package builders

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// RecordBuilder provides a fluent interface for building test records. Keys
// are kept in the order they are set.
type RecordBuilder struct {
	rec *entities.Record
}

// NewRecordBuilder creates an empty builder of the given kind
func NewRecordBuilder(kind entities.Kind) *RecordBuilder {
	rec := entities.NewRecord()
	rec.Kind = kind
	return &RecordBuilder{rec: rec}
}

// NewWeaponBuilder creates a melee weapon item named name
func NewWeaponBuilder(name string) *RecordBuilder {
	return NewRecordBuilder(entities.KindItem).
		WithString("name", name).
		WithString("itemType", entities.ItemTypeWeapon)
}

// NewAttackBuilder creates an attack sub-record named name
func NewAttackBuilder(name string) *RecordBuilder {
	return NewRecordBuilder(entities.KindUnknown).WithString("name", name)
}

// NewSpellBuilder creates a spell named name
func NewSpellBuilder(name string) *RecordBuilder {
	return NewRecordBuilder(entities.KindSpell).WithString("name", name)
}

// NewPropertyBuilder creates a property named name
func NewPropertyBuilder(name string) *RecordBuilder {
	return NewRecordBuilder(entities.KindProperty).WithString("name", name)
}

// WithPath sets the path the record claims to come from
func (b *RecordBuilder) WithPath(path string) *RecordBuilder {
	b.rec.Path = path
	return b
}

// WithString sets a string field
func (b *RecordBuilder) WithString(key, value string) *RecordBuilder {
	b.rec.Set(key, value)
	return b
}

// WithNumber sets a numeric field, stored the way the decoder stores numbers
func (b *RecordBuilder) WithNumber(key string, value float64) *RecordBuilder {
	b.rec.Set(key, json.Number(entities.FormatNumber(value)))
	return b
}

// WithInt sets an integer field
func (b *RecordBuilder) WithInt(key string, value int) *RecordBuilder {
	b.rec.Set(key, json.Number(strconv.Itoa(value)))
	return b
}

// WithBool sets a boolean field
func (b *RecordBuilder) WithBool(key string, value bool) *RecordBuilder {
	b.rec.Set(key, value)
	return b
}

// WithStrings sets a list of strings
func (b *RecordBuilder) WithStrings(key string, values ...string) *RecordBuilder {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	b.rec.Set(key, items)
	return b
}

// WithModifiers sets an object of numeric modifiers such as stats or
// resistances. Pairs are key, value, key, value, in order.
func (b *RecordBuilder) WithModifiers(key string, pairs ...any) *RecordBuilder {
	obj := entities.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case int:
			obj.Set(name, json.Number(strconv.Itoa(v)))
		case float64:
			obj.Set(name, json.Number(entities.FormatNumber(v)))
		}
	}
	b.rec.Set(key, obj)
	return b
}

// WithAttacks sets the attacks list
func (b *RecordBuilder) WithAttacks(attacks ...*RecordBuilder) *RecordBuilder {
	return b.withObjects("attacks", attacks)
}

// WithVersatileAttacks sets the versatileAttacks list
func (b *RecordBuilder) WithVersatileAttacks(attacks ...*RecordBuilder) *RecordBuilder {
	return b.withObjects("versatileAttacks", attacks)
}

// WithTooltip sets the tooltip lines
func (b *RecordBuilder) WithTooltip(lines ...string) *RecordBuilder {
	b.rec.SetTooltip(lines)
	return b
}

func (b *RecordBuilder) withObjects(key string, builders []*RecordBuilder) *RecordBuilder {
	items := make([]any, len(builders))
	for i, child := range builders {
		items[i] = child.Build()
	}
	b.rec.Set(key, items)
	return b
}

// Build returns the record
func (b *RecordBuilder) Build() *entities.Record {
	return b.rec
}
