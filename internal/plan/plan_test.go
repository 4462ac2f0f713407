package plan

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestValueJSON(t *testing.T) {
	t.Run("string decodes to scalar", func(t *testing.T) {
		var v Value
		if err := json.Unmarshal([]byte(`"幼儿参与度高"`), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.IsGroup() || v.Text() != "幼儿参与度高" {
			t.Errorf("unexpected value: %+v", v)
		}
	})

	t.Run("object decodes to group", func(t *testing.T) {
		var v Value
		if err := json.Unmarshal([]byte(`{"话题":"颜色","问题设计":"为什么？"}`), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.IsGroup() {
			t.Fatal("expected group value")
		}
		want := map[string]string{"话题": "颜色", "问题设计": "为什么？"}
		if !reflect.DeepEqual(v.Sub(), want) {
			t.Errorf("sub = %v, want %v", v.Sub(), want)
		}
	})

	t.Run("other shapes rejected", func(t *testing.T) {
		for _, raw := range []string{`42`, `["a"]`, `{"话题":1}`} {
			var v Value
			if err := json.Unmarshal([]byte(raw), &v); err == nil {
				t.Errorf("expected error for %s", raw)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		orig := Data{
			"晨间谈话":   Group(map[string]string{"话题": "颜色", "问题设计": "为什么？"}),
			"一日活动反思": Scalar("反思文本"),
		}
		raw, err := json.Marshal(orig)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got Data
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(got, orig) {
			t.Errorf("round trip changed data: %v != %v", got, orig)
		}
	})
}

func TestValueEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  bool
	}{
		{"empty scalar", Scalar(""), true},
		{"scalar with text", Scalar("x"), false},
		{"nil group", Group(nil), true},
		{"group of empties", Group(map[string]string{"a": "", "b": ""}), true},
		{"group with content", Group(map[string]string{"a": "", "b": "x"}), false},
	}
	for _, tc := range cases {
		if got := tc.value.Empty(); got != tc.want {
			t.Errorf("%s: Empty() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDataScalarText(t *testing.T) {
	data := Data{
		"一日活动反思": Scalar("反思文本"),
		"晨间谈话":   Group(map[string]string{"话题": "颜色"}),
	}
	if got := data.ScalarText("一日活动反思"); got != "反思文本" {
		t.Errorf("scalar = %q", got)
	}
	if got := data.ScalarText("晨间谈话"); got != "" {
		t.Errorf("group must read as empty scalar, got %q", got)
	}
	if got := data.ScalarText("不存在"); got != "" {
		t.Errorf("missing field must read as empty, got %q", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw, err := json.Marshal(SampleData())
		if err != nil {
			t.Fatalf("marshal sample: %v", err)
		}
		data, err := DecodeJSON(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := data.Get("集体活动"); !ok || !v.IsGroup() {
			t.Error("decoded data missing 集体活动 group")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		if _, err := DecodeJSON([]byte(`{"未知字段":"x"}`)); err == nil {
			t.Error("expected schema error")
		}
	})

	t.Run("unknown subfield rejected", func(t *testing.T) {
		if _, err := DecodeJSON([]byte(`{"晨间谈话":{"未知":"x"}}`)); err == nil {
			t.Error("expected schema error")
		}
	})

	t.Run("non-string leaf rejected", func(t *testing.T) {
		if _, err := DecodeJSON([]byte(`{"一日活动反思":42}`)); err == nil {
			t.Error("expected schema error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := DecodeJSON([]byte(`{`)); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("incomplete but well-shaped payload decodes", func(t *testing.T) {
		// Drafts pass DecodeJSON; completeness is Validate's job.
		data, err := DecodeJSON([]byte(`{"一日活动反思":"只写了反思"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(Validate(data)) == 0 {
			t.Error("draft should still fail validation")
		}
	})
}
