package tools

import (
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// Definitions registers every tool on g and returns them in advertisement
// order. The returned refs are handed to the generate call so the model sees
// the schemas; the agent executes tool requests itself through Dispatch, so
// each body here just delegates.
func (t *Toolbox) Definitions(g *genkit.Genkit) []ai.Tool {
	analyze := genkit.DefineTool(g, KindAnalyzeSubject.String(),
		"分析用户的抽象描述，提取出具体的视觉主体元素。这是生成图标的第一步，必须先分析主体再生成图标。",
		func(ctx *ai.ToolContext, in AnalyzeSubjectInput) (AnalyzeSubjectResult, error) {
			return t.AnalyzeSubject(ctx, in), nil
		})

	generate := genkit.DefineTool(g, KindGenerateIcon.String(),
		"根据主体元素生成一个图标。需要先调用 analyze_subject 获取主体元素。",
		func(ctx *ai.ToolContext, in GenerateIconInput) (GenerateIconResult, error) {
			return t.GenerateIcon(ctx, in), nil
		})

	generateSet := genkit.DefineTool(g, KindGenerateIconSet.String(),
		"根据主体元素，一次性生成 4 种不同风格的图标。这是最常用的生成方式。",
		func(ctx *ai.ToolContext, in GenerateIconSetInput) (GenerateIconSetResult, error) {
			return t.GenerateIconSet(ctx, in), nil
		})

	save := genkit.DefineTool(g, KindSaveIcon.String(),
		"保存图标到数据库",
		func(ctx *ai.ToolContext, in SaveIconInput) (SaveIconResult, error) {
			return t.SaveIcon(ctx, in), nil
		})

	search := genkit.DefineTool(g, KindSearchIcons.String(),
		"按关键词搜索已保存的图标，匹配名称或提示词",
		func(ctx *ai.ToolContext, in SearchIconsInput) (SearchIconsResult, error) {
			return t.SearchIcons(ctx, in), nil
		})

	recent := genkit.DefineTool(g, KindListRecentIcons.String(),
		"列出最近保存的图标",
		func(ctx *ai.ToolContext, in ListRecentIconsInput) (ListRecentIconsResult, error) {
			return t.ListRecentIcons(ctx, in), nil
		})

	del := genkit.DefineTool(g, KindDeleteIcon.String(),
		"根据 ID 删除已保存的图标",
		func(ctx *ai.ToolContext, in DeleteIconInput) (DeleteIconResult, error) {
			return t.DeleteIcon(ctx, in), nil
		})

	return []ai.Tool{analyze, generate, generateSet, save, search, recent, del}
}
