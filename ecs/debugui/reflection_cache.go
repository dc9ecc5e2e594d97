package debugui

import (
	"reflect"
)

type fieldInfo struct {
	Name  string
	Index int
}

// fieldCache memoises the exported fields of component struct types.
// ImGui rendering is single-threaded, so no locking.
type fieldCache map[reflect.Type][]fieldInfo

func (fc fieldCache) fields(t reflect.Type) []fieldInfo {
	if cached, ok := fc[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{Name: field.Name, Index: i})
		}
	}

	fc[t] = fields
	return fields
}

var globalFieldCache = fieldCache{}
