package api

import (
	"net/http"

	"github.com/aiconic/aiconic/internal/style"
)

// StyleInfo is the public view of one registered style.
type StyleInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Platform    string        `json:"platform"`
	Description string        `json:"description"`
	Palette     style.Palette `json:"palette"`
}

type styleHandler struct {
	styles *style.Registry
}

// list handles GET /api/styles in registration order.
func (h *styleHandler) list(w http.ResponseWriter, _ *http.Request) {
	all := h.styles.List()
	infos := make([]StyleInfo, len(all))
	for i, st := range all {
		infos[i] = StyleInfo{
			ID:          st.ID,
			Name:        st.Name,
			Platform:    st.Platform,
			Description: st.Description,
			Palette:     st.Palette,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"styles": infos})
}
