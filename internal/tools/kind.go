package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool indicates a tool name outside the built-in set.
var ErrUnknownTool = errors.New("unknown tool")

// Kind identifies one of the built-in tools. The set is closed: dispatch is
// a tagged switch over these constants, and an unknown name from the model is
// answered with a failed tool result rather than a lookup in some open
// registry.
type Kind string

const (
	KindAnalyzeSubject  Kind = "analyze_subject"
	KindGenerateIcon    Kind = "generate_icon"
	KindGenerateIconSet Kind = "generate_icon_set"
	KindSaveIcon        Kind = "save_icon"
	KindSearchIcons     Kind = "search_icons"
	KindListRecentIcons Kind = "list_recent_icons"
	KindDeleteIcon      Kind = "delete_icon"
)

// Kinds lists every built-in tool in advertisement order.
func Kinds() []Kind {
	return []Kind{
		KindAnalyzeSubject,
		KindGenerateIcon,
		KindGenerateIconSet,
		KindSaveIcon,
		KindSearchIcons,
		KindListRecentIcons,
		KindDeleteIcon,
	}
}

// ParseKind maps a tool name from the model to its Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindAnalyzeSubject, KindGenerateIcon, KindGenerateIconSet,
		KindSaveIcon, KindSearchIcons, KindListRecentIcons, KindDeleteIcon:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }
