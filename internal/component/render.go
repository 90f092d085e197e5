package component

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// Context is page-level data merged into every partial's data, e.g. the tenant record.
type Context map[string]any

// Renderer turns component trees into HTML. It never fails: a component that cannot be drawn
// becomes an HTML comment carrying the reason.
type Renderer struct {
	partials Partials
	markdown goldmark.Markdown
}

func NewRenderer(partials Partials) *Renderer {
	return &Renderer{
		partials: partials,
		markdown: goldmark.New(),
	}
}

// RenderList renders a raw component collection. Anything that is not a list renders to "".
func (r *Renderer) RenderList(raw any, page Context) template.HTML {
	switch raw.(type) {
	case []any, []Record:
	default:
		return ""
	}
	return r.RenderTree(Build(ParseList(raw)), page)
}

// RenderTree renders every root of t in order.
func (r *Renderer) RenderTree(t *Tree, page Context) template.HTML {
	return template.HTML(r.join(t, t.Roots, page))
}

// RenderNode renders one node of t, or "" for a negative index.
func (r *Renderer) RenderNode(t *Tree, i int, page Context) template.HTML {
	if i < 0 || i >= t.Len() {
		return ""
	}
	return template.HTML(r.render(t, i, page))
}

// RenderNodes renders the given nodes of t in order.
func (r *Renderer) RenderNodes(t *Tree, idx []int, page Context) template.HTML {
	return template.HTML(r.join(t, idx, page))
}

func (r *Renderer) join(t *Tree, idx []int, page Context) string {
	parts := make([]string, 0, len(idx))
	for _, i := range idx {
		parts = append(parts, r.render(t, i, page))
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) render(t *Tree, i int, page Context) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = errorComment("Render Error", fmt.Sprint(rec))
		}
	}()

	n := t.Node(i)
	switch n.Kind {
	case KindHero:
		return r.partial(n, heroView(n.Attrs), page)
	case KindGallery:
		return r.partial(n, galleryView(n.Attrs), page)
	case KindVideo:
		return r.partial(n, videoView(n.Attrs), page)
	case KindMap:
		return r.partial(n, mapView(n.Attrs), page)
	case KindHeading:
		return r.partial(n, headingView(n.Attrs), page)
	case KindBio:
		return r.partial(n, bioView(n.Attrs), page)
	case KindContact:
		return r.partial(n, contactView(n.Attrs), page)
	case KindTestimonial:
		return r.partial(n, testimonialView(n.Attrs), page)
	case KindCTA:
		return r.partial(n, ctaView(n.Attrs), page)
	case KindPricing:
		return r.partial(n, pricingView(n.Attrs), page)
	case KindFAQ:
		return r.partial(n, faqView(n.Attrs), page)
	case KindFeatureList:
		return r.partial(n, featureListView(n.Attrs), page)
	case KindTeam:
		return r.partial(n, teamView(n.Attrs), page)
	case KindTimeline:
		return r.partial(n, timelineView(n.Attrs), page)
	case KindFileDownload:
		return r.partial(n, fileDownloadView(n.Attrs), page)
	case KindDivider:
		return r.partial(n, struct{}{}, page)
	case KindPortfolio:
		return r.partial(n, portfolioView(n.Attrs), page)
	case KindServiceList:
		return r.partial(n, serviceListView(n.Attrs), page)
	case KindBooking:
		return r.partial(n, bookingView(n.Attrs), page)
	case KindAwards:
		return r.partial(n, awardsView(n.Attrs), page)
	case KindTabbedContent:
		return r.partial(n, r.tabbedView(t, n, page), page)
	case KindWebTheme, KindUnrecognized:
		return ""

	case KindText:
		return wrapLegacy(legacyText(n.Attrs))
	case KindRichText:
		return wrapLegacy(legacyRichText(r.markdownHTML(Str(n.Attrs, "markdownText"))))
	case KindProductHeader:
		return wrapLegacy(legacyProductHeader(productHeaderView(n.Attrs)))
	case KindBulletedList:
		return wrapLegacy(legacyBulletedList(n.Attrs))
	case KindSpecTable:
		return wrapLegacy(legacySpecTable(n.Attrs))
	case KindImage:
		return wrapLegacy(legacyImage(n.Attrs))
	case KindAudio:
		return wrapLegacy(legacyAudio(n.Attrs))
	case KindMapLocation:
		return wrapLegacy(legacyMapLocation(n.Attrs))
	case KindCard:
		return wrapLegacy(legacyContainer("card-component", r.join(t, n.Children, page)))
	case KindColumn:
		return wrapLegacy(legacyContainer("column-component", r.join(t, n.Children, page)))
	case KindRow:
		return wrapLegacy(legacyContainer("row-component", r.join(t, n.Children, page)))
	case KindExpandable:
		return wrapLegacy(legacyExpandable(n.Attrs, r.join(t, n.Children, page)))
	case KindComments:
		return wrapLegacy(legacyComments(n.Attrs))
	}

	return errorComment("Render Error", "unhandled kind "+n.Kind.String())
}

func (r *Renderer) partial(n *Node, view any, page Context) string {
	name := partialNames[n.Kind]

	data := map[string]any{
		"Component": view,
		"Kind":      n.Kind.String(),
	}
	for k, v := range page {
		data[k] = v
	}

	out, err := r.partials.Render(name, data)
	if err != nil {
		return errorComment("Template Error "+name, err.Error())
	}
	return out
}

func (r *Renderer) tabbedView(t *Tree, n *Node, page Context) TabbedContentView {
	v := TabbedContentView{Title: Str(n.Attrs, "title")}
	for _, tab := range n.Tabs {
		v.Tabs = append(v.Tabs, TabView{
			Title: tab.Title,
			Icon:  tab.Icon,
			Body:  template.HTML(r.join(t, tab.Children, page)),
		})
	}
	return v
}

// markdownHTML converts rich text to HTML. Raw HTML inside the source is dropped by goldmark.
func (r *Renderer) markdownHTML(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return esc(src)
	}
	return buf.String()
}

func errorComment(label, msg string) string {
	msg = strings.ReplaceAll(msg, ">", "&gt;")
	return fmt.Sprintf("<!-- %s: %s -->", label, msg)
}
