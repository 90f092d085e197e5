package component

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) Record {
	t.Helper()
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(src), &rec))
	return rec
}

func TestCleanLabel_Synonyms(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ProfileServicesComponent", "servicelist"},
		{"services", "servicelist"},
		{"service", "servicelist"},
		{"servicelist", "servicelist"},
		{"ProfileFeaturesComponent", "featurelist"},
		{"Files", "filedownload"},
		{"ProfileTabbedContentComponent", "tabbedcontent"},
		{"tab", "tabbedcontent"},
		{"ProfileWebsiteThemeComponent", "webtheme"},
		{"profilewebsitethemecomponent", "webtheme"},
		{"THEME", "webtheme"},
		{"GalleryComponent", "gallery"},
		{"images", "gallery"},
		{"ProfileTestimonialsComponent", "testimonial"},
		{"CallToActionComponent", "cta"},
		{"ProfileHeroComponent", "hero"},
		{"TextComponent", "text"},
		{"  ", ""},
		{"SomethingNewComponent", "somethingnew"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanLabel(tt.raw), tt.raw)
	}
}

func TestResolveKind(t *testing.T) {
	assert.Equal(t, KindServiceList, ResolveKind("servicelist", "ProfileServicesComponent"))
	assert.Equal(t, KindVideo, ResolveKind("video", "VideoComponent"))
	assert.Equal(t, KindProductHeader, ResolveKind("productheader", "ProductHeaderComponent"))
	assert.Equal(t, KindUnrecognized, ResolveKind("productheader", "productheader"))
	assert.Equal(t, KindUnrecognized, ResolveKind("somethingnew", "SomethingNewComponent"))
}

func TestKindTables_Partitioned(t *testing.T) {
	for label, k := range canonicalKinds {
		assert.True(t, k > KindUnrecognized && k <= KindWebTheme, label)
	}
	for label, k := range legacyKinds {
		assert.True(t, k > KindWebTheme && int(k) < KindTotal, label)
	}
}

func TestNormalize_SynonymsShareKind(t *testing.T) {
	for _, raw := range []string{"services", "service", "servicelist", "ProfileServicesComponent"} {
		rec := Normalize(Record{"type": raw}).(Record)
		assert.Equal(t, "servicelist", rec[CleanKindKey], raw)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"type":"GalleryComponent","images":["a.jpg",{"url":"b.jpg"}]}`,
		`{"type":"ProfileTestimonialsComponent","testimonials":[{"imageUrl":"x.png","quote":"hi"}]}`,
		`{"type":"ProfileTabbedContentComponent","tabs":[{"title":"One","components":[{"type":"TextComponent","text":"a"}]}]}`,
		`{"type":"ProfileHeroComponent","title":"Shop"}`,
		`{"kind":"faq"}`,
		`{}`,
	}

	for _, src := range inputs {
		once := Normalize(decode(t, src))
		onceJSON, err := json.Marshal(once)
		require.NoError(t, err)

		twice := Normalize(decode(t, string(onceJSON)))
		twiceJSON, err := json.Marshal(twice)
		require.NoError(t, err)

		assert.JSONEq(t, string(onceJSON), string(twiceJSON), src)
	}
}

func TestNormalize_GalleryBackfill(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []any
	}{
		{"strings under images", `{"type":"GalleryComponent","images":["a.jpg","b.jpg"]}`, []any{"a.jpg", "b.jpg"}},
		{"objects under items", `{"type":"gallery","items":[{"url":"a.jpg"},{"url":"b.jpg"}]}`, []any{"a.jpg", "b.jpg"}},
		{"mixed", `{"type":"ProfileGalleryComponent","images":[{"url":"a.jpg"},"b.jpg",{"caption":"no url"},3]}`, []any{"a.jpg", "b.jpg"}},
		{"existing list kept", `{"type":"gallery","imageUrls":["z.jpg"],"images":["a.jpg"]}`, []any{"z.jpg"}},
		{"nothing to backfill", `{"type":"gallery"}`, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(decode(t, tt.src)).(Record)
			assert.Equal(t, tt.want, rec["imageUrls"])
		})
	}
}

func TestNormalize_TestimonialAvatar(t *testing.T) {
	rec := Normalize(decode(t, `{"type":"ProfileTestimonialComponent","testimonials":[
		{"imageUrl":"a.png"},
		{"imageUrl":"b.png","authorImageUrl":"keep.png"},
		{"quote":"no image"},
		"not a record"
	]}`)).(Record)

	entries := rec["testimonials"].([]any)
	assert.Equal(t, "a.png", entries[0].(Record)["authorImageUrl"])
	assert.Equal(t, "keep.png", entries[1].(Record)["authorImageUrl"])
	assert.NotContains(t, entries[2].(Record), "authorImageUrl")
}

func TestNormalize_TabsRecurse(t *testing.T) {
	rec := Normalize(decode(t, `{"type":"ProfileTabbedContentComponent","tabs":[
		{"title":"One","components":[{"type":"RichTextComponent","markdownText":"first"}]},
		{"title":"Two","components":"[{\"type\":\"RichTextComponent\",\"markdownText\":\"second\"}]"}
	]}`)).(Record)

	for _, tab := range rec["tabs"].([]any) {
		children := tab.(Record)["components"].([]any)
		require.Len(t, children, 1)
		assert.Equal(t, "richtext", children[0].(Record)[CleanKindKey])
	}
}

func TestNormalize_NonRecordPassThrough(t *testing.T) {
	for _, v := range []any{nil, "ProfileHeroComponent", 42.0, []any{"a"}, true} {
		assert.Equal(t, v, Normalize(v))
	}
}

func TestNormalizeList_MalformedInput(t *testing.T) {
	assert.Empty(t, NormalizeList(`{not json`))
	assert.Empty(t, NormalizeList(`{"type":"hero"}`))
	assert.Empty(t, NormalizeList(12))
	assert.Empty(t, NormalizeList(nil))
	assert.Empty(t, NormalizeList(""))

	list := NormalizeList(`[{"type":"ProfileHeroComponent"}, "stray", 7]`)
	require.Len(t, list, 3)
	assert.Equal(t, "hero", list[0].(Record)[CleanKindKey])
	assert.Equal(t, "stray", list[1])
}
