package plan

import "fmt"

// Validate checks the plan for completeness and shape. It returns every
// problem at once as human-readable messages so the form can be fixed in one
// pass; an empty slice means the plan is valid. Filling itself never fails on
// missing content, so callers are expected to validate before filling.
func Validate(data Data) []string {
	var errs []string

	for _, field := range FieldOrder {
		if ComputedField(field.Name) {
			continue
		}

		value, present := data[field.Name]
		empty := !present || value.Empty()

		if field.Required && empty {
			errs = append(errs, fmt.Sprintf("缺少必填字段：%s", field.Name))
			continue
		}
		if empty {
			continue
		}

		if field.IsGroup() {
			if !value.IsGroup() {
				errs = append(errs, fmt.Sprintf("字段类型错误：%s 需要分组内容", field.Name))
				continue
			}
			sub := value.Sub()
			for _, name := range field.Subfields {
				if sub[name] == "" {
					errs = append(errs, fmt.Sprintf("缺少子字段：%s.%s", field.Name, name))
				}
			}
		} else if value.IsGroup() {
			errs = append(errs, fmt.Sprintf("字段类型错误：%s 需要文本内容", field.Name))
		}
	}

	return errs
}
