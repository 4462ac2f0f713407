// Package plan defines the lesson-plan vocabulary, the plan data structure,
// its validation rules, and the form schema the browser UI is built from.
package plan

// Field names that are computed from the semester calendar rather than typed
// into the form. The generic filler never looks them up; the orchestrator
// writes them into the header table directly.
const (
	FieldWeek = "周次"
	FieldDate = "日期"
)

// Field is one named slot in the lesson plan.
type Field struct {
	Name     string
	Required bool
	// Subfields is non-empty for group fields and nil for scalar fields.
	Subfields []string
}

// IsGroup reports whether the field holds named subfields.
func (f Field) IsGroup() bool {
	return len(f.Subfields) > 0
}

// FieldOrder is the authoritative, hand-maintained field sequence. It governs
// schema export order; position is meaningful and must not be sorted.
var FieldOrder = []Field{
	{Name: FieldWeek},
	{Name: FieldDate},
	{Name: "晨间活动", Required: true, Subfields: []string{"集体游戏", "自主游戏"}},
	{Name: "晨间活动指导", Required: true, Subfields: []string{"重点指导", "活动目标", "指导要点"}},
	{Name: "晨间谈话", Required: true, Subfields: []string{"话题", "问题设计"}},
	{Name: "集体活动", Required: true, Subfields: []string{"活动主题", "活动目标", "活动准备", "活动重点", "活动难点", "活动过程"}},
	{Name: "室内区域游戏", Required: true, Subfields: []string{"游戏区域", "重点指导", "活动目标", "指导要点", "支持策略"}},
	{Name: "下午户外游戏", Required: true, Subfields: []string{"游戏区域", "重点观察", "活动目标", "指导要点", "支持策略"}},
	{Name: "一日活动反思"},
}

// FieldByName returns the field definition for name.
func FieldByName(name string) (Field, bool) {
	for _, f := range FieldOrder {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ComputedField reports whether name is filled from the calendar, not the form.
func ComputedField(name string) bool {
	return name == FieldWeek || name == FieldDate
}
