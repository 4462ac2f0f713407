package ai

import (
	"testing"
)

func TestParseSplitResponse(t *testing.T) {
	want := map[string]string{
		"活动主题": "认识秋天",
		"活动目标": "感受季节变化",
		"活动准备": "落叶若干",
		"活动重点": "观察落叶",
		"活动难点": "描述颜色变化",
		"活动过程": "一、导入。二、观察。三、总结。",
	}
	bare := `{"活动主题":"认识秋天","活动目标":"感受季节变化","活动准备":"落叶若干","活动重点":"观察落叶","活动难点":"描述颜色变化","活动过程":"一、导入。二、观察。三、总结。"}`

	t.Run("bare JSON", func(t *testing.T) {
		got, err := ParseSplitResponse(bare)
		if err != nil {
			t.Fatalf("ParseSplitResponse() error = %v", err)
		}
		assertFields(t, got, want)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		got, err := ParseSplitResponse("```json\n" + bare + "\n```")
		if err != nil {
			t.Fatalf("ParseSplitResponse() error = %v", err)
		}
		assertFields(t, got, want)
	})

	t.Run("JSON with surrounding text", func(t *testing.T) {
		got, err := ParseSplitResponse("拆分结果如下：\n" + bare + "\n希望对你有帮助。")
		if err != nil {
			t.Fatalf("ParseSplitResponse() error = %v", err)
		}
		assertFields(t, got, want)
	})

	t.Run("unknown keys dropped", func(t *testing.T) {
		got, err := ParseSplitResponse(`{"活动主题":"秋天","备注":"多余"}`)
		if err != nil {
			t.Fatalf("ParseSplitResponse() error = %v", err)
		}
		if _, ok := got["备注"]; ok {
			t.Error("unknown key should be dropped")
		}
		if got["活动主题"] != "秋天" {
			t.Errorf("活动主题 = %q", got["活动主题"])
		}
	})

	t.Run("values trimmed", func(t *testing.T) {
		got, err := ParseSplitResponse(`{"活动目标":"  两端有空格  "}`)
		if err != nil {
			t.Fatalf("ParseSplitResponse() error = %v", err)
		}
		if got["活动目标"] != "两端有空格" {
			t.Errorf("活动目标 = %q", got["活动目标"])
		}
	})

	t.Run("empty input fails", func(t *testing.T) {
		if _, err := ParseSplitResponse("   "); err == nil {
			t.Error("expected error for empty input")
		}
	})

	t.Run("non-JSON fails", func(t *testing.T) {
		if _, err := ParseSplitResponse("抱歉，我无法处理。"); err == nil {
			t.Error("expected error for non-JSON output")
		}
	})
}

func assertFields(t *testing.T, got, want map[string]string) {
	t.Helper()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestNewSplitter(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		if _, err := NewSplitter(Config{}); err == nil {
			t.Error("expected error without API key")
		}
	})

	t.Run("defaults model", func(t *testing.T) {
		s, err := NewSplitter(Config{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("NewSplitter() error = %v", err)
		}
		if s.Model() != DefaultModel {
			t.Errorf("model = %q, want %q", s.Model(), DefaultModel)
		}
	})
}
