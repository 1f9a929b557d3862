package handler

import (
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var heroEmbedSrcPattern = regexp.MustCompile(
	`^https://(?:www\.)?(?:youtube\.com/embed/|youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)`,
)

// buildContentSanitizer permits the usual user content plus trusted video
// iframes for hero embeds.
func buildContentSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src").Matching(heroEmbedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

// heroVideoEmbed turns a stored hero video URL into a sanitized iframe.
// Returns empty HTML when the URL is missing or not an allowed platform.
func heroVideoEmbed(rawURL string) template.HTML {
	embedURL, ok := normalizeVideoURL(rawURL)
	if !ok {
		return ""
	}

	markup := fmt.Sprintf(
		`<iframe src="%s" title="Hero video" frameborder="0" loading="lazy" allow="autoplay; fullscreen" allowfullscreen></iframe>`,
		embedURL,
	)
	return template.HTML(contentSanitizer.Sanitize(markup))
}

// normalizeVideoURL maps watch/share URLs onto their embed form.
func normalizeVideoURL(rawURL string) (string, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", false
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme != "https" {
		return "", false
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	switch host {
	case "youtube.com", "youtube-nocookie.com":
		if strings.HasPrefix(parsed.Path, "/embed/") {
			return trimmed, true
		}
		if parsed.Path == "/watch" {
			if id := parsed.Query().Get("v"); id != "" {
				return "https://www.youtube.com/embed/" + url.PathEscape(id), true
			}
		}
	case "youtu.be":
		id := strings.Trim(parsed.Path, "/")
		if id != "" {
			return "https://www.youtube.com/embed/" + url.PathEscape(id), true
		}
	case "vimeo.com":
		id := strings.Trim(parsed.Path, "/")
		if id != "" {
			return "https://player.vimeo.com/video/" + url.PathEscape(id), true
		}
	case "player.vimeo.com":
		if strings.HasPrefix(parsed.Path, "/video/") {
			return trimmed, true
		}
	}

	return "", false
}
