package plan

// SampleData returns a fully populated example plan, used by the form's
// "fill sample data" action and by tests.
func SampleData() Data {
	return Data{
		"晨间活动": Group(map[string]string{
			"集体游戏": "捉迷藏",
			"自主游戏": "建构区自由搭建",
		}),
		"晨间活动指导": Group(map[string]string{
			"重点指导": "规则意识与安全",
			"活动目标": "提升动作协调性",
			"指导要点": "控制速度、保持间距",
		}),
		"晨间谈话": Group(map[string]string{
			"话题":   "我喜欢的颜色",
			"问题设计": "你为什么喜欢这种颜色？",
		}),
		"集体活动": Group(map[string]string{
			"活动主题": "小班美术《彩色雨点》",
			"活动目标": "体验点画，感受色彩变化。",
			"活动准备": "彩笔、白纸、围裙",
			"活动重点": "掌握点画节奏",
			"活动难点": "颜色搭配",
			"活动过程": "导入-示范-操作-分享",
		}),
		"室内区域游戏": Group(map[string]string{
			"游戏区域": "阅读区、建构区",
			"重点指导": "鼓励合作",
			"活动目标": "提升语言表达",
			"指导要点": "轮流表达、倾听他人",
			"支持策略": "提供图书卡片和积木",
		}),
		"下午户外游戏": Group(map[string]string{
			"游戏区域": "操场接力区",
			"重点观察": "遵守规则",
			"活动目标": "提升协调与速度",
			"指导要点": "交接动作规范",
			"支持策略": "分组示范、同伴互评",
		}),
		"一日活动反思": Scalar("幼儿参与度高，但个别幼儿注意力分散。"),
	}
}
