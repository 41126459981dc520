package format

import (
	"sort"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

var itemOrder = []string{
	"id", "name", "description", "rarity", "itemType", "equipmentSlot",
	"weaponClass", "weaponType", "damageType", "damageType2",
	"magicElement", "magicElement2", "magicStatBonuses", "magicStatBonus",
	"twoHanded", "finesse", "versatile",
	"dodge", "crit", "block", "magicResist", "accuracy", "magicAccuracy",
	"stats", "resistances", "attacks", "tooltip",
}

var attackOrder = []string{
	"name", "damageType", "times",
	"physicalDamageDice", "physicalDamageDice2", "magicDamageDice", "magicDamageDice2",
	"accuracy", "magicAccuracy", "physBuildUpMod", "magicBuildUpMod",
	"damageMultiplier", "magicDamageMultiplier", "critMod",
	"physicalOnHitProperty", "magicOnHitProperty", "weight",
}

var creatureOrder = []string{
	"id", "name", "description", "species", "creatureType", "size", "level",
	"xp", "enemyXp", "visionRange",
	"baseBlock", "baseCrit", "baseDodge", "baseMagicResist", "accuracy", "magicAccuracy",
	"baseHp", "hpDice", "baseMaxMana", "baseMaxStamina",
	"baseHpRegen", "baseStaminaRegen", "baseManaRegen",
	"stats", "resistances",
	"helmet", "armor", "legwear", "weapon", "offhand", "inventory",
	"removeProperties", "properties", "attacks", "sprite",
}

var propertyOrder = []string{
	"id", "type", "name", "description", "duration", "damageType", "damageDice",
	"maxHpPercentage", "maxStaminaPercentage", "maxManaPercentage",
	"maxHp", "maxStamina", "maxMana", "hpRegen", "staminaRegen", "manaRegen",
	"crit", "dodge", "block", "magicResist", "accuracy", "magicAccuracy",
	"stats", "resistances", "resBuildUp", "tooltip",
}

var spellOrder = []string{
	"id", "name", "description", "times", "manaCost",
	"damageType", "damageDice", "damageType2", "damageDice2",
	"damageType3", "damageDice3", "damageType4", "damageDice4",
	"damageMult", "critMod", "accuracy", "onHitProperty", "buffProperty", "statBonuses",
	"buildUpMod", "buildUpMod2", "buildUpMod3", "buildUpMod4", "tooltip",
}

var statOrder = []string{
	"STRENGTH", "DEXTERITY", "CONSTITUTION", "INTELLIGENCE", "WISDOM", "CHARISMA", "LUCK",
}

var resistanceOrder = []string{
	"FIRE", "WATER", "WIND", "ICE", "NATURE", "LIGHTNING", "LIGHT", "DARKNESS",
	"BLUDGEONING", "PIERCING", "SLASHING", "TRUE",
}

// legacy attack keys and their current names
var attackRenames = []struct{ from, to string }{
	{"PhysBuildUpMod", "physBuildUpMod"},
	{"MagicBuildUpMod", "magicBuildUpMod"},
}

func kindOrder(kind entities.Kind) []string {
	switch kind {
	case entities.KindItem:
		return itemOrder
	case entities.KindCreature:
		return creatureOrder
	case entities.KindProperty:
		return propertyOrder
	case entities.KindSpell:
		return spellOrder
	default:
		return nil
	}
}

// Canonicalize returns rec with keys in canonical order for its kind. Keys
// without a canonical position follow in alphabetical order. The order is
// applied to every nested object that shares a key with it, attacks get
// their own order, and stats and resistances maps are sorted.
func Canonicalize(rec *entities.Record) *entities.Record {
	out, _ := transform(rec, rec.Kind).(*entities.Record)
	out.Path = rec.Path
	out.Kind = rec.Kind
	return out
}

func transform(value any, kind entities.Kind) any {
	switch val := value.(type) {
	case *entities.Record:
		return transformObject(val, kind)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = transform(item, kind)
		}
		return items
	default:
		return value
	}
}

func transformObject(obj *entities.Record, kind entities.Kind) *entities.Record {
	if order := kindOrder(kind); order != nil && hasAny(obj, order) {
		obj = orderKeys(obj, order)
	} else {
		obj = orderKeys(obj, obj.Keys())
	}

	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		items, isList := value.([]any)
		if isList && (key == "attacks" || key == "versatileAttacks") {
			attacks := make([]any, len(items))
			for i, item := range items {
				attacks[i] = transformAttack(item, kind)
			}
			obj.Set(key, attacks)
			continue
		}
		obj.Set(key, transform(value, kind))
	}

	statKeys, resistanceKeys := []string(nil), []string(nil)
	if kind == entities.KindCreature || kind == entities.KindProperty {
		statKeys, resistanceKeys = statOrder, resistanceOrder
	}
	sortNested(obj, "stats", statKeys)
	sortNested(obj, "resistances", resistanceKeys)

	return obj
}

func transformAttack(item any, kind entities.Kind) any {
	attack, ok := item.(*entities.Record)
	if !ok {
		return transform(item, kind)
	}

	attack = orderKeys(attack, attack.Keys())
	for _, rename := range attackRenames {
		if !attack.Has(rename.from) || attack.Has(rename.to) {
			continue
		}
		value, _ := attack.Get(rename.from)
		attack.Delete(rename.from)
		attack.Set(rename.to, value)
	}

	attack = orderKeys(attack, attackOrder)
	attack = transformObject(attack, kind)
	return orderKeys(attack, attackOrder)
}

// sortNested orders the object under key by order, then alphabetically
func sortNested(obj *entities.Record, key string, order []string) {
	nested := obj.Object(key)
	if nested == nil {
		return
	}
	obj.Set(key, orderKeys(nested, order))
}

// orderKeys returns a copy of obj with the keys listed in order first, in
// that order, and the remaining keys sorted
func orderKeys(obj *entities.Record, order []string) *entities.Record {
	out := entities.NewRecord()
	for _, key := range order {
		if value, ok := obj.Get(key); ok && !out.Has(key) {
			out.Set(key, value)
		}
	}

	var rest []string
	for _, key := range obj.Keys() {
		if !out.Has(key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		value, _ := obj.Get(key)
		out.Set(key, value)
	}

	return out
}

func hasAny(obj *entities.Record, keys []string) bool {
	for _, key := range keys {
		if obj.Has(key) {
			return true
		}
	}
	return false
}
