package component

import (
	"fmt"
	"html"
	"strings"
)

// legacy product-description blocks have fixed markup and are drawn without templates.

func legacyText(rec Record) string {
	style := orDefault(Str(rec, "style"), "body")
	return fmt.Sprintf(`<div class="sc-comp text-component text-%s">%s</div>`,
		html.EscapeString(style), esc(Str(rec, "text")))
}

func legacyRichText(body string) string {
	return fmt.Sprintf(`<div class="sc-comp richtext-component"><div class="richtext">%s</div></div>`, body)
}

func legacyProductHeader(v ProductHeaderView) string {
	var orig string
	if v.Discounted() {
		orig = fmt.Sprintf(`<del class="ph-original">%s %s</del>`, esc(v.Currency), FormatAmount(v.OriginalPrice))
	}
	return fmt.Sprintf(`
        <div class="sc-comp header-component">
            <h2 class="ph-title">%s</h2>
            <div class="ph-pricing">
                <span class="ph-price">%s %s</span>
                %s
            </div>
        </div>`, esc(v.Name), esc(v.Currency), FormatAmount(v.Price), orig)
}

var listStyles = map[string]string{
	"bullet":    "bullet",
	"numbered":  "numbered",
	"checkmark": "checkmark",
	"icon":      "checkmark",
}

func legacyBulletedList(rec Record) string {
	style := Str(rec, "listStyle")
	css, ok := listStyles[style]
	if !ok {
		css = "bullet"
	}
	tag := "ul"
	if style == "numbered" {
		tag = "ol"
	}

	var title string
	if t := Str(rec, "title"); t != "" {
		title = fmt.Sprintf(`<h4 class="list-title">%s</h4>`, esc(t))
	}

	var items strings.Builder
	for _, item := range Strings(rec, "items") {
		fmt.Fprintf(&items, `<li><span class="item-content">%s</span></li>`, esc(item))
	}

	return fmt.Sprintf(`
        <div class="sc-comp bulleted-list-component">
            %s
            <div class="list-container">
                <%s class="styled-list %s">
                    %s
                </%s>
            </div>
        </div>`, title, tag, css, items.String(), tag)
}

func legacySpecTable(rec Record) string {
	var title string
	if t := Str(rec, "title"); t != "" {
		title = fmt.Sprintf(`<h3 class="spec-header">%s</h3>`, esc(t))
	}

	var rows strings.Builder
	for _, row := range specRows(rec) {
		fmt.Fprintf(&rows, `<tr><td class="spec-key">%s</td><td class="spec-val">%s</td></tr>`,
			esc(row.Key), esc(row.Value))
	}

	return fmt.Sprintf(`
        <div class="sc-comp spec-component">
            %s
            <div class="spec-table-wrapper">
                <table class="spec-table"><tbody>%s</tbody></table>
            </div>
        </div>`, title, rows.String())
}

func legacyImage(rec Record) string {
	src := attrURL(Str(rec, "imageUrl", "image_url"))
	if src == "" {
		return ""
	}
	caption := esc(Str(rec, "caption"))
	var capHTML string
	if caption != "" {
		capHTML = fmt.Sprintf(`<h4 class="image-caption">%s</h4>`, caption)
	}
	return fmt.Sprintf(`
        <div class="sc-comp image-component">
            %s
            <div class="image-wrap">
                <img src="%s" alt="%s" loading="lazy">
            </div>
        </div>`, capHTML, src, caption)
}

func legacyAudio(rec Record) string {
	src := attrURL(Str(rec, "audioUrl"))
	if src == "" {
		return ""
	}
	return fmt.Sprintf(`
            <div class="sc-comp audio-component">
                <div class="audio-header"><i class="fas fa-music"></i> <span>%s</span></div>
                <audio controls class="comp-audio">
                    <source src="%s" type="audio/mpeg">
                </audio>
            </div>`, esc(Str(rec, "title")), src)
}

func legacyMapLocation(rec Record) string {
	addr := orDefault(Str(rec, "address"), "View on Map")
	return fmt.Sprintf(`
        <div class="sc-comp map-component">
            <a href="%s" target="_blank" class="map-card-link">
                <div class="map-icon"><i class="fas fa-map-marker-alt"></i></div>
                <div class="map-info">
                    <span class="map-label">Location</span>
                    <span class="map-address">%s</span>
                </div>
                <div class="map-arrow"><i class="fas fa-external-link-alt"></i></div>
            </a>
        </div>`, attrURL(mapsLink(rec)), esc(addr))
}

func legacyContainer(class, inner string) string {
	return fmt.Sprintf(`
        <div class="sc-comp %s">
            %s
        </div>`, class, inner)
}

func legacyExpandable(rec Record, inner string) string {
	title := orDefault(Str(rec, "title"), "More Info")
	return fmt.Sprintf(`
        <div class="sc-comp expandable-component">
            <details class="comp-details">
                <summary class="comp-summary">%s</summary>
                <div class="comp-details-content">%s</div>
            </details>
        </div>`, esc(title), inner)
}

func legacyComments(rec Record) string {
	var items strings.Builder
	for _, c := range comments(rec) {
		fmt.Fprintf(&items, `
            <div class="comment-item">
                <img src="%s" class="comment-avatar">
                <div class="comment-body">
                    <span class="comment-user">%s</span>
                    <p class="comment-text">%s</p>
                </div>
            </div>`, attrURL(c.AvatarURL), esc(c.User), esc(c.Text))
	}
	return fmt.Sprintf(`
        <div class="sc-comp comments-component">
            <h4 class="comps-title">Comments</h4>
            <div class="comments-list">%s</div>
        </div>`, items.String())
}

func wrapLegacy(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return `<div class="sc-comp-wrapper">` + content + `</div>`
}

func esc(s string) string {
	return html.EscapeString(s)
}

// attrURL keeps a URL as written but refuses script schemes and quotes that would end the
// attribute early.
func attrURL(u string) string {
	u = strings.TrimSpace(u)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "vbscript:") || strings.HasPrefix(lower, "data:text/html") {
		return ""
	}
	return strings.NewReplacer(`"`, "%22", "<", "%3C", ">", "%3E").Replace(u)
}
