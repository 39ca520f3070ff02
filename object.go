package jmespath

import (
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// jpObjectMap is the engine's representation of a JMESPath object value. It
// preserves insertion order, which a bare map[string]interface{} cannot,
// so that ObjectProjection, keys()/values(), merge() and multi-select-hash
// output are deterministic the way spec.md requires.
type jpObjectMap = orderedmap.OrderedMap[string, interface{}]

func newObjectMap() *jpObjectMap {
	return orderedmap.New[string, interface{}]()
}

type objectKind int

const (
	objectKindNone objectKind = iota
	objectKindStruct
	objectKindOrderedMap
	objectKindMapString
)

func getObjectKind(value interface{}) (objectKind, reflect.Value) {
	if _, ok := value.(*jpObjectMap); ok {
		return objectKindOrderedMap, reflect.Value{}
	}
	rv := reflect.Indirect(reflect.ValueOf(value))
	if rv.Kind() == reflect.Struct {
		return objectKindStruct, rv
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return objectKindMapString, rv
	}
	return objectKindNone, rv
}

func isObject(value interface{}) bool {
	kind, _ := getObjectKind(value)
	return kind != objectKindNone
}

// toObject normalizes any object-shaped Go value (struct, map[string]T, or
// the engine's own *jpObjectMap) into a *jpObjectMap. Order is preserved
// exactly for values that already arrived as a *jpObjectMap (multi-select-hash
// and merge output); for a bare Go map, order follows whatever Go's map
// iteration happens to produce, since a map[string]interface{} carries no
// order of its own to recover. JSON literal objects in an expression are
// decoded into bare maps, so their key order is not preserved.
func toObject(value interface{}) *jpObjectMap {
	kind, rv := getObjectKind(value)
	switch kind {
	case objectKindOrderedMap:
		return value.(*jpObjectMap)
	case objectKindStruct:
		// This does not flatten fields from anonymous embedded structs into the top-level struct
		// the way the encoding/json package does, as this is quite complicated. These fields can
		// still be accessed by specifying the full path to the embedded field. See the typeFields()
		// function in https://go.dev/src/encoding/json/encode.go if you feel the need to do add
		// flattening functionality.
		ret := newObjectMap()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.IsExported() {
				key := f.Name
				if t, ok := f.Tag.Lookup("jmes"); ok {
					switch t {
					case "":
						// Leave the key set to the field name
						break
					case "-":
						// Skip this field
						continue
					default:
						// Set the key to the tag value
						key = t
					}
				} else if t, ok := f.Tag.Lookup("json"); ok {
					switch t {
					case "", "-":
						// Leave the key set to the field name
						break
					default:
						if i := strings.IndexByte(t, ','); i >= 0 {
							if i != 0 {
								// Set the key to the tag value up to the comma
								key = t[:i]
							} // else leave the key set to the field name
						} else {
							// Set the key to the tag value
							key = t
						}
					}
				}
				ret.Set(key, rv.Field(i).Interface())
			}
		}
		return ret
	case objectKindMapString:
		ret := newObjectMap()
		iter := rv.MapRange()
		for iter.Next() {
			ret.Set(iter.Key().String(), iter.Value().Interface())
		}
		return ret
	default:
		return nil
	}
}
