package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiconic/aiconic/internal/icon"
	"github.com/aiconic/aiconic/internal/store"
	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/testutil"
)

// fakeIconStore is an in-memory IconStore.
type fakeIconStore struct {
	icons []store.Icon

	saveErr   error
	searchErr error

	lastSearchQuery string
	lastSearchLimit int32
	lastRecentLimit int32
	deleted         []uuid.UUID
}

func (f *fakeIconStore) SaveIcon(_ context.Context, sessionID, messageID uuid.UUID, ic store.NewIcon) (store.Icon, error) {
	if f.saveErr != nil {
		return store.Icon{}, f.saveErr
	}
	saved := store.Icon{
		ID:         uuid.New(),
		SessionID:  sessionID,
		MessageID:  messageID,
		Name:       ic.Name,
		Prompt:     ic.Prompt,
		SVGContent: ic.SVGContent,
		Style:      ic.Style,
	}
	f.icons = append(f.icons, saved)
	return saved, nil
}

func (f *fakeIconStore) SearchIcons(_ context.Context, query string, limit int32) ([]store.Icon, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	f.lastSearchQuery = query
	f.lastSearchLimit = limit
	var out []store.Icon
	for _, ic := range f.icons {
		if strings.Contains(ic.Name, query) || strings.Contains(ic.Prompt, query) {
			out = append(out, ic)
		}
	}
	return out, nil
}

func (f *fakeIconStore) ListRecentIcons(_ context.Context, limit int32) ([]store.Icon, error) {
	f.lastRecentLimit = limit
	if int(limit) < len(f.icons) {
		return f.icons[:limit], nil
	}
	return f.icons, nil
}

func (f *fakeIconStore) DeleteIcon(_ context.Context, id uuid.UUID) error {
	for i, ic := range f.icons {
		if ic.ID == id {
			f.icons = append(f.icons[:i], f.icons[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return store.ErrIconNotFound
}

func newTestToolbox(t *testing.T, mock *testutil.MockLLM, fake *fakeIconStore) *Toolbox {
	t.Helper()

	g := genkit.Init(context.Background())
	mock.RegisterModel(g)

	gen, err := icon.New(icon.Config{
		Genkit:    g,
		Styles:    style.NewRegistry(),
		Logger:    testutil.DiscardLogger(),
		ModelName: "mock/test-model",
	})
	require.NoError(t, err)

	tb, err := New(Config{
		Genkit:    g,
		Generator: gen,
		Store:     fake,
		Logger:    testutil.DiscardLogger(),
		ModelName: "mock/test-model",
	})
	require.NoError(t, err)
	return tb
}

func TestConfigValidation(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "genkit")
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("open_pod_bay_doors")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestAnalyzeSubject(t *testing.T) {
	mock := testutil.NewMockLLM(`{"mainBodies": ["盾牌", "锁", "钥匙", "城墙"], "reasoning": "安全概念最直观的视觉符号"}`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.AnalyzeSubject(context.Background(), AnalyzeSubjectInput{UserPrompt: "安全防护"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{"盾牌", "锁", "钥匙", "城墙"}, res.MainBodies)
	assert.NotEmpty(t, res.Reasoning)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].UserMessage, "安全防护")
}

func TestAnalyzeSubjectRejectsWrongCount(t *testing.T) {
	mock := testutil.NewMockLLM(`{"mainBodies": ["盾牌", "锁"], "reasoning": "too few"}`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.AnalyzeSubject(context.Background(), AnalyzeSubjectInput{UserPrompt: "安全防护"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "数量错误")
	assert.Empty(t, res.MainBodies)
}

func TestGenerateIcon(t *testing.T) {
	mock := testutil.NewMockLLM(`<circle cx="60" cy="60" r="25" fill="#00D4FF"/>`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.GenerateIcon(context.Background(), GenerateIconInput{Subject: "盾牌", Style: "neon"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "盾牌", res.Subject)
	assert.Equal(t, "neon", res.Style)
	assert.Equal(t, "霓虹", res.StyleName)
	assert.True(t, strings.HasPrefix(res.SVG, "<svg"))
}

func TestGenerateIconUnknownStyle(t *testing.T) {
	mock := testutil.NewMockLLM("unused")
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.GenerateIcon(context.Background(), GenerateIconInput{Subject: "盾牌", Style: "vaporwave"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "生成失败")
}

func TestGenerateIconSet(t *testing.T) {
	mock := testutil.NewMockLLM(`<rect x="40" y="40" width="40" height="40" fill="#333333"/>`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.GenerateIconSet(context.Background(), GenerateIconSetInput{Subject: "云朵"})
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Icons, len(SetStyles))

	// Styles come back in the fixed fan-out order regardless of which
	// synthesis finished first.
	for i, ic := range res.Icons {
		assert.Equal(t, SetStyles[i], ic.StyleID)
		assert.NotEmpty(t, ic.StyleName)
		assert.NotEmpty(t, ic.Platform)
		assert.True(t, strings.HasPrefix(ic.SVG, "<svg"))
	}
}

func TestGenerateIconSetForwardsMainBodies(t *testing.T) {
	mock := testutil.NewMockLLM(`<circle cx="60" cy="60" r="30" fill="#333333"/>`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.GenerateIconSet(context.Background(), GenerateIconSetInput{
		Subject:    "盾牌",
		MainBodies: []string{"盾牌", "锁", "钥匙", "城墙"},
	})
	require.True(t, res.Success, res.Error)

	// Every drawing prompt carries the composition constraint.
	calls := mock.Calls()
	require.Len(t, calls, len(SetStyles))
	for _, c := range calls {
		assert.Contains(t, c.UserMessage, "主体构成")
		assert.Contains(t, c.UserMessage, "城墙")
	}
}

func TestGenerateIconForwardsMainBodies(t *testing.T) {
	mock := testutil.NewMockLLM(`<circle cx="60" cy="60" r="30" fill="#333333"/>`)
	tb := newTestToolbox(t, mock, &fakeIconStore{})

	res := tb.GenerateIcon(context.Background(), GenerateIconInput{
		Subject:    "盾牌",
		Style:      "neon",
		MainBodies: []string{"盾牌", "锁"},
	})
	require.True(t, res.Success, res.Error)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].UserMessage, "主体构成")
	assert.Contains(t, calls[0].UserMessage, "锁")
}

func TestSaveIcon(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	res := tb.SaveIcon(context.Background(), SaveIconInput{
		Name:       "盾牌图标",
		SVGContent: "<svg></svg>",
		Prompt:     "安全防护",
		Style:      "appstore",
	})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, `图标 "盾牌图标" 已保存`, res.Message)

	require.Len(t, fake.icons, 1)
	assert.Equal(t, res.IconID, fake.icons[0].ID.String())
	assert.Equal(t, uuid.Nil, fake.icons[0].SessionID)
}

func TestSearchIcons(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	tb.SaveIcon(context.Background(), SaveIconInput{Name: "盾牌", Style: "neon"})
	tb.SaveIcon(context.Background(), SaveIconInput{Name: "云朵", Style: "material"})

	res := tb.SearchIcons(context.Background(), SearchIconsInput{Keyword: "盾"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Icons, 1)
	assert.Equal(t, "盾牌", res.Icons[0].Name)
	assert.Equal(t, "neon", res.Icons[0].Style)
	assert.EqualValues(t, 10, fake.lastSearchLimit)
}

func TestListRecentIconsDefaultsLimit(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	for range 7 {
		tb.SaveIcon(context.Background(), SaveIconInput{Name: "图标", Style: "minimal"})
	}

	res := tb.ListRecentIcons(context.Background(), ListRecentIconsInput{})
	require.True(t, res.Success, res.Error)
	assert.Len(t, res.Icons, 5)
	assert.EqualValues(t, 5, fake.lastRecentLimit)

	res = tb.ListRecentIcons(context.Background(), ListRecentIconsInput{Limit: 2})
	assert.Len(t, res.Icons, 2)
}

func TestDeleteIcon(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	saved := tb.SaveIcon(context.Background(), SaveIconInput{Name: "旧图标", Style: "retro"})
	require.True(t, saved.Success)

	res := tb.DeleteIcon(context.Background(), DeleteIconInput{IconID: saved.IconID})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "图标已删除", res.Message)
	assert.Empty(t, fake.icons)
}

func TestDeleteIconRejectsBadID(t *testing.T) {
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), &fakeIconStore{})

	res := tb.DeleteIcon(context.Background(), DeleteIconInput{IconID: "not-a-uuid"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "无效")
}

func TestDispatchDecodesMapArguments(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	out, err := tb.Dispatch(context.Background(), "save_icon", map[string]any{
		"name":       "硬币",
		"svgContent": "<svg></svg>",
		"prompt":     "金融理财",
		"style":      "gradient",
	})
	require.NoError(t, err)

	res, ok := out.(SaveIconResult)
	require.True(t, ok)
	assert.True(t, res.Success)
	require.Len(t, fake.icons, 1)
	assert.Equal(t, "硬币", fake.icons[0].Name)
	assert.Equal(t, "gradient", fake.icons[0].Style)
}

func TestDispatchPassesTypedArguments(t *testing.T) {
	fake := &fakeIconStore{}
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), fake)

	out, err := tb.Dispatch(context.Background(), "search_icons", SearchIconsInput{Keyword: "盾"})
	require.NoError(t, err)
	_, ok := out.(SearchIconsResult)
	assert.True(t, ok)
}

func TestDispatchUnknownToolFailsSoftly(t *testing.T) {
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), &fakeIconStore{})

	out, err := tb.Dispatch(context.Background(), "format_disk", nil)
	require.NoError(t, err)

	res, ok := out.(Result)
	require.True(t, ok)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "未知工具")
}

func TestDispatchRejectsMalformedArguments(t *testing.T) {
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), &fakeIconStore{})

	_, err := tb.Dispatch(context.Background(), "delete_icon", map[string]any{
		"iconId": []int{1, 2, 3},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tool arguments")
}

func TestDefinitionsAdvertiseEveryTool(t *testing.T) {
	tb := newTestToolbox(t, testutil.NewMockLLM("unused"), &fakeIconStore{})
	g := genkit.Init(context.Background())

	defs := tb.Definitions(g)
	require.Len(t, defs, len(Kinds()))
	for i, k := range Kinds() {
		assert.Equal(t, k.String(), defs[i].Name())
	}
}
