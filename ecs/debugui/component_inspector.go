package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scienteer/ecs"
)

// FieldLine is one row of a flattened component: nested struct fields are
// listed after their parent with Depth increased.
type FieldLine struct {
	Depth int
	Name  string
	Value string
}

// Describe flattens a component (or pointer to one) into display rows.
func Describe(component any) []FieldLine {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldLine{{Name: val.Type().String(), Value: fmt.Sprintf("%v", val.Interface())}}
	}

	var lines []FieldLine
	describeStruct(val, 0, &lines)
	return lines
}

func describeStruct(val reflect.Value, depth int, lines *[]FieldLine) {
	for _, field := range globalFieldCache.fields(val.Type()) {
		fv := val.Field(field.Index)
		if fv.Kind() == reflect.Ptr && !fv.IsNil() {
			fv = fv.Elem()
		}

		switch fv.Kind() {
		case reflect.Struct:
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name})
			describeStruct(fv, depth+1, lines)
		case reflect.Float32, reflect.Float64:
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: fmt.Sprintf("%.3f", fv.Float())})
		case reflect.Func:
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: "func"})
		case reflect.Slice, reflect.Map:
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: fmt.Sprintf("[%d items]", fv.Len())})
		default:
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: fmt.Sprintf("%v", fv.Interface())})
		}
	}
}

// renderInspector draws the selected entity's components. Float and bool
// fields are editable in place.
func renderInspector(storage *ecs.Storage, entityId ecs.EntityId) {
	archetype := storage.GetArchetypeById(entityId.ArchetypeId())
	if archetype == nil || !storage.Alive(entityId) {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", entityId))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entityId))
	imgui.Text(fmt.Sprintf("Archetype: 0x%X", entityId.ArchetypeId()))
	imgui.Separator()

	for _, compType := range archetype.Types() {
		component := storage.GetComponent(entityId, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			renderStruct(reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

func renderStruct(val reflect.Value) {
	for _, field := range globalFieldCache.fields(val.Type()) {
		fv := val.Field(field.Index)
		label := fmt.Sprintf("%s##%p", field.Name, fv.Addr().Interface())

		switch fv.Kind() {
		case reflect.Float32, reflect.Float64:
			v := float32(fv.Float())
			imgui.SetNextItemWidth(150)
			if imgui.InputFloat(label, &v) && fv.CanSet() {
				fv.SetFloat(float64(v))
			}
		case reflect.Bool:
			v := fv.Bool()
			if imgui.Checkbox(label, &v) && fv.CanSet() {
				fv.SetBool(v)
			}
		case reflect.Struct:
			if imgui.TreeNodeStr(label) {
				renderStruct(fv)
				imgui.TreePop()
			}
		case reflect.Func:
			imgui.Text(field.Name + ": func")
		default:
			imgui.Text(fmt.Sprintf("%s: %v", field.Name, fv.Interface()))
		}
	}
}
