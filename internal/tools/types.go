package tools

import "github.com/aiconic/aiconic/internal/icon"

// Result is the envelope every tool returns. A failed external call sets
// Success false with a human-readable Error; the model sees failure as data
// and the orchestration loop keeps running.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// AnalyzeSubjectInput asks for a subject decomposition.
type AnalyzeSubjectInput struct {
	UserPrompt string `json:"userPrompt" jsonschema_description:"用户关于图标的描述，如\"安全防护\"、\"云存储\"、\"金融理财\""`
}

// AnalyzeSubjectResult carries exactly four candidate main bodies, ranked by
// visual strength.
type AnalyzeSubjectResult struct {
	Result
	MainBodies []string `json:"mainBodies,omitempty"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// GenerateIconInput asks for a single icon in a single style.
type GenerateIconInput struct {
	Subject    string   `json:"subject" jsonschema_description:"主体元素，如\"盾牌\"、\"云朵\"、\"硬币\""`
	Style      string   `json:"style" jsonschema_description:"风格 ID，如 appstore、material、neon、minimal"`
	MainBodies []string `json:"mainBodies,omitempty" jsonschema_description:"analyze_subject 返回的主体元素列表，用于约束构图"`
}

// GenerateIconResult carries one finished icon.
type GenerateIconResult struct {
	Result
	SVG       string `json:"svg,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Style     string `json:"style,omitempty"`
	StyleName string `json:"styleName,omitempty"`
}

// GenerateIconSetInput asks for one subject rendered across the fixed style
// set.
type GenerateIconSetInput struct {
	Subject    string   `json:"subject" jsonschema_description:"主体元素，如\"盾牌\"、\"云朵\"、\"硬币\""`
	MainBodies []string `json:"mainBodies,omitempty" jsonschema_description:"analyze_subject 返回的主体元素列表，用于约束构图"`
}

// GenerateIconSetResult carries the icons that synthesized successfully.
// Styles that failed are dropped, not retried.
type GenerateIconSetResult struct {
	Result
	Icons []icon.GeneratedIcon `json:"icons,omitempty"`
}

// SaveIconInput persists one icon.
type SaveIconInput struct {
	Name       string `json:"name" jsonschema_description:"图标名称"`
	SVGContent string `json:"svgContent" jsonschema_description:"SVG 代码"`
	Prompt     string `json:"prompt" jsonschema_description:"生成时的提示词"`
	Style      string `json:"style" jsonschema_description:"图标风格"`
}

// SaveIconResult reports the stored row's ID.
type SaveIconResult struct {
	Result
	IconID  string `json:"iconId,omitempty"`
	Message string `json:"message,omitempty"`
}

// SearchIconsInput filters persisted icons by keyword.
type SearchIconsInput struct {
	Keyword string `json:"keyword" jsonschema_description:"搜索关键词，匹配图标名称或提示词"`
}

// IconSummary is a compact listing row without SVG markup.
type IconSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

// SearchIconsResult lists matching icons.
type SearchIconsResult struct {
	Result
	Count int           `json:"count"`
	Icons []IconSummary `json:"icons,omitempty"`
}

// ListRecentIconsInput limits how many newest icons to return.
type ListRecentIconsInput struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"返回数量，默认 5"`
}

// IconRecord is a listing row including the SVG markup.
type IconRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Style      string `json:"style"`
	SVGContent string `json:"svgContent"`
}

// ListRecentIconsResult lists the newest persisted icons.
type ListRecentIconsResult struct {
	Result
	Icons []IconRecord `json:"icons,omitempty"`
}

// DeleteIconInput removes a persisted icon by ID.
type DeleteIconInput struct {
	IconID string `json:"iconId" jsonschema_description:"要删除的图标 ID"`
}

// DeleteIconResult reports the deletion.
type DeleteIconResult struct {
	Result
	Message string `json:"message,omitempty"`
}
