package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SerializeIDs parcourt récursivement une valeur et remplace chaque entier
// 64 bits par sa représentation décimale en chaîne, pour que les
// identifiants survivent au transport JSON sans perte de précision.
// Les autres scalaires passent inchangés; les tableaux et objets sont
// reconstruits en conservant leur forme.
func SerializeIDs(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return serializeValue(reflect.ValueOf(v))
}

func serializeValue(rv reflect.Value) interface{} {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return serializeValue(rv.Elem())

	case reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)

	case reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = serializeValue(rv.Index(i))
		}
		return out

	case reflect.Array:
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = serializeValue(rv.Index(i))
		}
		return out

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, rv.Len())
		for _, key := range rv.MapKeys() {
			out[fmt.Sprint(key.Interface())] = serializeValue(rv.MapIndex(key))
		}
		return out

	case reflect.Struct:
		// time.Time reste tel quel, encodé en RFC3339 par encoding/json
		if t, ok := rv.Interface().(time.Time); ok {
			return t
		}
		rt := rv.Type()
		out := make(map[string]interface{}, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if field.PkgPath != "" {
				continue
			}
			name := field.Name
			if tag := field.Tag.Get("json"); tag != "" {
				tagName := strings.Split(tag, ",")[0]
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}
			out[name] = serializeValue(rv.Field(i))
		}
		return out

	default:
		return rv.Interface()
	}
}
