package component

import "strings"

// CleanKindKey is the attribute Normalize writes the canonical label into.
const CleanKindKey = "clean_kind"

// MaxDepth bounds how deep nested components are followed, both when normalizing and when
// building a Tree. Anything below it is dropped.
const MaxDepth = 8

// raw type lives under different keys depending on which client wrote the record
var rawTypeKeys = []string{"type", "Type", "componentType", "kind"}

// RawType returns the declared type string of rec, or "" when none is present.
func RawType(rec Record) string {
	for _, key := range rawTypeKeys {
		if s, ok := rec[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// Normalize enriches a component record in place with its clean_kind and repairs known
// attribute drift. Values that are not records are returned unchanged. Running it twice
// gives the same result as running it once.
func Normalize(v any) any {
	return normalize(v, 0)
}

// NormalizeList decodes a stored component collection and normalizes each entry.
func NormalizeList(raw any) []any {
	list := ParseList(raw)
	for i, item := range list {
		list[i] = Normalize(item)
	}
	return list
}

func normalize(v any, depth int) any {
	rec, ok := asRecord(v)
	if !ok {
		return v
	}

	clean := CleanLabel(RawType(rec))
	rec[CleanKindKey] = clean

	switch clean {
	case "gallery":
		repairGallery(rec)
	case "testimonial":
		repairTestimonials(rec)
	case "tabbedcontent":
		if depth < MaxDepth {
			normalizeTabs(rec, depth)
		}
	}

	return rec
}

// gallery images were stored under several names and as either strings or {url: ...}
func repairGallery(rec Record) {
	source, ok := rec["imageUrls"].([]any)
	if !ok {
		source = List(rec, "images", "items")
	}

	urls := make([]any, 0, len(source))
	for _, item := range source {
		if u := URLOf(item); u != "" {
			urls = append(urls, u)
		}
	}
	rec["imageUrls"] = urls
}

func repairTestimonials(rec Record) {
	for _, entry := range Records(rec, "testimonials") {
		if _, has := entry["authorImageUrl"]; has {
			continue
		}
		if img, has := entry["imageUrl"]; has {
			entry["authorImageUrl"] = img
		}
	}
}

func normalizeTabs(rec Record, depth int) {
	for _, tab := range Records(rec, "tabs") {
		children := ParseList(tab["components"])
		for i, child := range children {
			children[i] = normalize(child, depth+1)
		}
		tab["components"] = children
	}
}
