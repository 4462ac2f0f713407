package fill

import (
	"reflect"
	"testing"

	"github.com/kgplan/kgplan/internal/plan"
)

func TestFlatten(t *testing.T) {
	m := Flatten(plan.SampleData())

	// 6 group fields' subfields plus the reflection scalar.
	if m.Len() != 24 {
		t.Fatalf("expected 24 entries, got %d: %v", m.Len(), m.Keys())
	}

	if got := m.Keys()[0]; got != "晨间活动-集体游戏" {
		t.Errorf("expected first key 晨间活动-集体游戏, got %s", got)
	}

	if v, ok := m.Get("集体活动-活动主题"); !ok || v != "小班美术《彩色雨点》" {
		t.Errorf("unexpected 集体活动-活动主题: %q (ok=%v)", v, ok)
	}
	if v, ok := m.Get("一日活动反思"); !ok || v == "" {
		t.Errorf("expected bare scalar key 一日活动反思, got %q (ok=%v)", v, ok)
	}
	if _, ok := m.Get("集体活动"); ok {
		t.Error("group field should not contribute a bare parent entry")
	}
}

func TestFlatten_SkipsComputedAndEmpty(t *testing.T) {
	data := plan.Data{
		plan.FieldWeek: plan.Scalar("第（9）周"),
		plan.FieldDate: plan.Scalar("周（一） 9月1日"),
		"晨间活动": plan.Group(map[string]string{
			"集体游戏": "捉迷藏",
			"自主游戏": "",
		}),
		"一日活动反思": plan.Scalar(""),
	}
	m := Flatten(data)

	want := []string{"晨间活动-集体游戏"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("expected keys %v, got %v", want, m.Keys())
	}
}

func TestLabelMap_HasParent(t *testing.T) {
	m := Flatten(plan.SampleData())

	if !m.HasParent("室内区域游戏") {
		t.Error("expected 室内区域游戏 to be a parent")
	}
	if m.HasParent("一日活动反思") {
		t.Error("scalar field is not a parent")
	}
	if m.HasParent("") {
		t.Error("empty label is not a parent")
	}
}

func TestResolve(t *testing.T) {
	m := Flatten(plan.SampleData())

	t.Run("parent qualified wins", func(t *testing.T) {
		v, ok := Resolve(m, "游戏区域", "下午户外游戏")
		if !ok || v != "操场接力区" {
			t.Errorf("expected 操场接力区, got %q (ok=%v)", v, ok)
		}
		// A sibling section's value must never leak under an explicit parent.
		v, ok = Resolve(m, "游戏区域", "室内区域游戏")
		if !ok || v != "阅读区、建构区" {
			t.Errorf("expected 阅读区、建构区, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("bare scalar", func(t *testing.T) {
		v, ok := Resolve(m, "一日活动反思", "集体活动")
		if !ok || v == "" {
			t.Errorf("expected scalar hit, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("suffix fallback in key order", func(t *testing.T) {
		// 游戏区域 exists under both 室内区域游戏 and 下午户外游戏; with no
		// parent context the earlier field wins.
		key, v, ok := ResolveEntry(m, "游戏区域", "")
		if !ok || key != "室内区域游戏-游戏区域" {
			t.Errorf("expected 室内区域游戏-游戏区域, got %s (ok=%v)", key, ok)
		}
		if v != "阅读区、建构区" {
			t.Errorf("unexpected value %q", v)
		}
	})

	t.Run("unknown parent falls back to suffix", func(t *testing.T) {
		v, ok := Resolve(m, "活动主题", "不存在的分组")
		if !ok || v != "小班美术《彩色雨点》" {
			t.Errorf("expected suffix fallback hit, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if _, ok := Resolve(m, "不存在", ""); ok {
			t.Error("expected miss")
		}
		if _, ok := Resolve(m, "", "集体活动"); ok {
			t.Error("empty target must miss")
		}
	})
}
