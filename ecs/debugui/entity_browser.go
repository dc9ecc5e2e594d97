package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scienteer/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

func NewEntityBrowser(target *ecs.Storage) *EntityBrowser {
	return &EntityBrowser{target: target}
}

// Entities lists the live entities of storage whose component type names
// contain filter, ordered by ID.
func Entities(storage *ecs.Storage, filter string) []EntityInfo {
	filter = strings.ToLower(filter)

	var out []EntityInfo
	for _, archetype := range storage.GetArchetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		if filter != "" && !strings.Contains(strings.ToLower(strings.Join(names, " ")), filter) {
			continue
		}
		for entityId := range archetype.Iter() {
			out = append(out, EntityInfo{
				ID:             entityId,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: names,
			})
		}
	}

	slices.SortFunc(out, func(a, b EntityInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by component...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	entities := Entities(eb.target, eb.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			isSelected := eb.hasPick && eb.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
				eb.hasPick = true
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}
	imgui.Text(fmt.Sprintf("Total: %d entities", len(entities)))

	imgui.Separator()
	if eb.hasPick {
		renderInspector(eb.target, eb.selected)
	} else {
		imgui.Text("No entity selected")
	}

	imgui.End()
}
