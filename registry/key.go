package registry

import "strconv"

// Key is one canonical-key argument to Get: a (field name, value)
// pair. The constructors below are the only supported way to build
// one, so call sites read as registry.Get(registry.Alpha2("US")).
type Key struct {
	Name  string
	Value string
}

// RowIDKeyName is always recognized by every Schema, in addition to
// whatever canonical keys the schema declares (alpha2, iso_code, ...).
const RowIDKeyName = "row_id"

func Alpha2(v string) Key  { return Key{Name: "alpha2", Value: v} }
func Alpha3(v string) Key  { return Key{Name: "alpha3", Value: v} }
func Numeric(v string) Key { return Key{Name: "numeric", Value: v} }
func ISOCode(v string) Key { return Key{Name: "iso_code", Value: v} }
func OSMIDKey(v string) Key { return Key{Name: "osm_key", Value: v} }
func ByRowID(id int) Key   { return Key{Name: RowIDKeyName, Value: strconv.Itoa(id)} }
