package packets

import (
	"net/url"
	"strings"

	"github.com/coh-music/backend/internal/model"
)

// SanitizeTags drops empty/whitespace entries and duplicates. The
// admin UI has historically sent loosely shaped arrays; validation
// happens once here so the typed model is trusted everywhere inward.
func SanitizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := map[string]bool{}
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SanitizeStreamingLinks keeps only entries with a platform name and an
// absolute http(s) URL; partially shaped objects are discarded rather
// than stored.
func SanitizeStreamingLinks(raw []StreamingLinkPayload) model.StreamingLinks {
	out := make(model.StreamingLinks, 0, len(raw))
	for _, l := range raw {
		platform := strings.TrimSpace(l.Platform)
		rawURL := strings.TrimSpace(l.URL)
		if platform == "" || rawURL == "" {
			continue
		}
		u, err := url.ParseRequestURI(rawURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		out = append(out, model.StreamingLink{Platform: platform, URL: rawURL})
	}
	return out
}
