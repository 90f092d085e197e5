package component

import "strings"

type Kind int

const (
	// KindUnrecognized is any label outside the tables below; it renders to nothing.
	KindUnrecognized Kind = iota

	// canonical kinds, resolved from the cleaned label
	KindHero
	KindGallery
	KindVideo
	KindMap
	KindHeading
	KindBio
	KindContact
	KindTestimonial
	KindCTA
	KindPricing
	KindFAQ
	KindFeatureList
	KindTeam
	KindTimeline
	KindFileDownload
	KindDivider
	KindPortfolio
	KindServiceList
	KindBooking
	KindAwards
	KindTabbedContent
	KindWebTheme

	// legacy kinds, resolved from the raw type string
	KindText
	KindRichText
	KindProductHeader
	KindBulletedList
	KindSpecTable
	KindImage
	KindAudio
	KindMapLocation
	KindCard
	KindColumn
	KindRow
	KindExpandable
	KindComments

	// KindTotal is the number of kinds, including KindUnrecognized
	KindTotal = int(iota)
)

var kindNames = [KindTotal]string{
	KindUnrecognized:  "unrecognized",
	KindHero:          "hero",
	KindGallery:       "gallery",
	KindVideo:         "video",
	KindMap:           "map",
	KindHeading:       "heading",
	KindBio:           "bio",
	KindContact:       "contact",
	KindTestimonial:   "testimonial",
	KindCTA:           "cta",
	KindPricing:       "pricing",
	KindFAQ:           "faq",
	KindFeatureList:   "featurelist",
	KindTeam:          "team",
	KindTimeline:      "timeline",
	KindFileDownload:  "filedownload",
	KindDivider:       "divider",
	KindPortfolio:     "portfolio",
	KindServiceList:   "servicelist",
	KindBooking:       "booking",
	KindAwards:        "awards",
	KindTabbedContent: "tabbedcontent",
	KindWebTheme:      "webtheme",
	KindText:          "text",
	KindRichText:      "richtext",
	KindProductHeader: "productheader",
	KindBulletedList:  "bulletedlist",
	KindSpecTable:     "spectable",
	KindImage:         "image",
	KindAudio:         "audio",
	KindMapLocation:   "maplocation",
	KindCard:          "card",
	KindColumn:        "column",
	KindRow:           "row",
	KindExpandable:    "expandable",
	KindComments:      "comments",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindTotal {
		return kindNames[KindUnrecognized]
	}
	return kindNames[k]
}

// synonyms maps a bare label to its canonical label. Labels missing here are kept as-is.
var synonyms = map[string]string{
	"services":    "servicelist",
	"service":     "servicelist",
	"servicelist": "servicelist",

	"features":    "featurelist",
	"feature":     "featurelist",
	"featurelist": "featurelist",

	"downloads":    "filedownload",
	"download":     "filedownload",
	"filedownload": "filedownload",
	"files":        "filedownload",

	"tabs":          "tabbedcontent",
	"tab":           "tabbedcontent",
	"tabbedcontent": "tabbedcontent",

	"gallery": "gallery",
	"images":  "gallery",

	"websitetheme": "webtheme",
	"webtheme":     "webtheme",
	"theme":        "webtheme",

	"testimonials": "testimonial",
	"testimonial":  "testimonial",

	"calltoaction": "cta",
	"cta":          "cta",
}

// canonicalKinds holds every label that selects a canonical kind.
var canonicalKinds = map[string]Kind{
	"hero":          KindHero,
	"gallery":       KindGallery,
	"video":         KindVideo,
	"map":           KindMap,
	"heading":       KindHeading,
	"bio":           KindBio,
	"contact":       KindContact,
	"testimonial":   KindTestimonial,
	"cta":           KindCTA,
	"pricing":       KindPricing,
	"faq":           KindFAQ,
	"featurelist":   KindFeatureList,
	"team":          KindTeam,
	"timeline":      KindTimeline,
	"filedownload":  KindFileDownload,
	"divider":       KindDivider,
	"portfolio":     KindPortfolio,
	"servicelist":   KindServiceList,
	"booking":       KindBooking,
	"awards":        KindAwards,
	"tabbedcontent": KindTabbedContent,
	"webtheme":      KindWebTheme,
}

// legacyKinds is keyed on the original, uncleaned type string.
var legacyKinds = map[string]Kind{
	"TextComponent":          KindText,
	"RichTextComponent":      KindRichText,
	"ProductHeaderComponent": KindProductHeader,
	"BulletedListComponent":  KindBulletedList,
	"SpecTableComponent":     KindSpecTable,
	"ImageComponent":         KindImage,
	"AudioComponent":         KindAudio,
	"MapLocationComponent":   KindMapLocation,
	"CardComponent":          KindCard,
	"ColumnComponent":        KindColumn,
	"RowComponent":           KindRow,
	"ExpandableComponent":    KindExpandable,
	"CommentsComponent":      KindComments,
}

// partialNames maps canonical kinds to the partial that draws them. KindWebTheme has
// no partial: theme tokens are applied by the page shell.
var partialNames = map[Kind]string{
	KindHero:          "hero.html",
	KindGallery:       "gallery.html",
	KindVideo:         "video.html",
	KindMap:           "map.html",
	KindHeading:       "heading.html",
	KindBio:           "bio.html",
	KindContact:       "contact.html",
	KindTestimonial:   "testimonials.html",
	KindCTA:           "cta.html",
	KindPricing:       "pricing.html",
	KindFAQ:           "faq.html",
	KindFeatureList:   "features.html",
	KindTeam:          "team.html",
	KindTimeline:      "timeline.html",
	KindFileDownload:  "downloads.html",
	KindDivider:       "divider.html",
	KindPortfolio:     "portfolio.html",
	KindServiceList:   "services.html",
	KindBooking:       "booking.html",
	KindAwards:        "awards.html",
	KindTabbedContent: "tabs.html",
}

// CleanLabel strips the Profile/Component noise from a raw type and applies the synonym table.
func CleanLabel(rawType string) string {
	bare := strings.ToLower(strings.TrimSpace(rawType))
	for _, noise := range []string{"profile", "component"} {
		bare = strings.ReplaceAll(bare, noise, "")
	}
	if canonical, ok := synonyms[bare]; ok {
		return canonical
	}
	return bare
}

// ResolveKind picks the canonical kind for a cleaned label, falling back to the legacy
// catalog keyed on the raw type.
func ResolveKind(cleanLabel, rawType string) Kind {
	if k, ok := canonicalKinds[cleanLabel]; ok {
		return k
	}
	if k, ok := legacyKinds[rawType]; ok {
		return k
	}
	return KindUnrecognized
}
