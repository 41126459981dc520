package entities

// ItemTypeWeapon marks item records that carry attacks
const ItemTypeWeapon = "WEAPON"

// Weapon classes and types that change which stat scales damage
const (
	WeaponClassMelee  = "MELEE"
	WeaponClassRanged = "RANGED"
	WeaponClassMagic  = "MAGIC"

	WeaponTypeArcane = "ARCANE"
)

const (
	defaultAttackName = "Unknown Attack"
	defaultTimes      = 1
	defaultWeight     = 1.0
)

// Modifier is one entry of a stats or resistances map, in authored order
type Modifier struct {
	Key   string
	Value float64
}

// Weapon is the tooltip-relevant view of an equipment record
type Weapon struct {
	ID          string
	Name        string
	ItemType    string
	WeaponClass string
	WeaponType  string
	Finesse     bool

	DamageType  string
	DamageType2 string

	// MagicElement overrides the attack's own magic damage type whenever
	// the key is present, even when it is empty.
	MagicElement    string
	HasMagicElement bool
	MagicElement2   string

	MagicStatBonuses []string

	Crit        float64
	Block       float64
	Dodge       float64
	MagicResist float64

	Accuracy      float64
	MagicAccuracy float64

	Stats       []Modifier
	Resistances []Modifier

	Attacks          []Attack
	VersatileAttacks []Attack
}

// Attack is one strike mode of a weapon
type Attack struct {
	Name string

	DamageType    string
	HasDamageType bool
	Times         int

	PhysicalDamageDice  string
	PhysicalDamageDice2 string
	MagicDamageDice     string
	MagicDamageDice2    string
	MagicDamageType     string

	Accuracy      float64
	MagicAccuracy float64
	CritMod       string

	PhysicalOnHitProperty string
	MagicOnHitProperty    string

	Weight float64
}

// IsWeapon reports whether an item record is a weapon
func IsWeapon(rec *Record) bool {
	return rec.String("itemType") == ItemTypeWeapon
}

// NewWeapon reads the weapon view from an item record
func NewWeapon(rec *Record) *Weapon {
	w := &Weapon{
		ID:               rec.Text("id"),
		Name:             rec.String("name"),
		ItemType:         rec.String("itemType"),
		WeaponClass:      rec.String("weaponClass"),
		WeaponType:       rec.String("weaponType"),
		Finesse:          rec.Truthy("finesse"),
		DamageType:       rec.String("damageType"),
		DamageType2:      rec.String("damageType2"),
		MagicElement:     rec.String("magicElement"),
		HasMagicElement:  rec.Has("magicElement"),
		MagicElement2:    rec.String("magicElement2"),
		MagicStatBonuses: rec.Strings("magicStatBonuses"),
		Stats:            modifiers(rec.Object("stats")),
		Resistances:      modifiers(rec.Object("resistances")),
	}

	w.Crit, _ = rec.Float("crit")
	w.Block, _ = rec.Float("block")
	w.Dodge, _ = rec.Float("dodge")
	w.MagicResist, _ = rec.Float("magicResist")
	w.Accuracy, _ = rec.Float("accuracy")
	w.MagicAccuracy, _ = rec.Float("magicAccuracy")

	for _, atk := range rec.Objects("attacks") {
		w.Attacks = append(w.Attacks, NewAttack(atk))
	}
	for _, atk := range rec.Objects("versatileAttacks") {
		w.VersatileAttacks = append(w.VersatileAttacks, NewAttack(atk))
	}

	return w
}

// NewAttack reads one attack sub-record
func NewAttack(rec *Record) Attack {
	a := Attack{
		Name:                  rec.String("name"),
		DamageType:            rec.String("damageType"),
		HasDamageType:         rec.Has("damageType"),
		Times:                 rec.Int("times", defaultTimes),
		PhysicalDamageDice:    rec.String("physicalDamageDice"),
		PhysicalDamageDice2:   rec.String("physicalDamageDice2"),
		MagicDamageDice:       rec.String("magicDamageDice"),
		MagicDamageDice2:      rec.String("magicDamageDice2"),
		MagicDamageType:       rec.String("magicDamageType"),
		CritMod:               rec.Text("critMod"),
		PhysicalOnHitProperty: rec.String("physicalOnHitProperty"),
		MagicOnHitProperty:    rec.String("magicOnHitProperty"),
		Weight:                defaultWeight,
	}
	if !rec.Has("name") {
		a.Name = defaultAttackName
	}

	a.Accuracy, _ = rec.Float("accuracy")
	a.MagicAccuracy, _ = rec.Float("magicAccuracy")
	if w, ok := rec.Float("weight"); ok {
		a.Weight = w
	}

	return a
}

// OnHitProperty returns the condition the attack can inflict, preferring
// the physical channel
func (a Attack) OnHitProperty() string {
	if a.PhysicalOnHitProperty != "" {
		return a.PhysicalOnHitProperty
	}
	return a.MagicOnHitProperty
}

func modifiers(obj *Record) []Modifier {
	if obj == nil {
		return nil
	}
	var out []Modifier
	obj.Each(func(key string, value any) {
		if f, ok := toFloat(value); ok {
			out = append(out, Modifier{Key: key, Value: f})
		}
	})
	return out
}
