package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SkipsNonRecords(t *testing.T) {
	tree := Build([]any{"stray", Record{"type": "ProfileHeroComponent"}, nil, 5.0})

	require.Len(t, tree.Roots, 1)
	assert.Equal(t, KindHero, tree.Node(tree.Roots[0]).Kind)
}

func TestBuild_ContainersAndTabs(t *testing.T) {
	tree := BuildFrom(`[
		{"type":"CardComponent","children":[{"type":"TextComponent","text":"a"},{"type":"DividerComponent"}]},
		{"type":"ProfileTabbedContentComponent","tabs":[
			{"title":"One","components":[{"type":"TextComponent","text":"x"}]},
			{"title":"Two","components":[]}
		]}
	]`)

	require.Len(t, tree.Roots, 2)
	card := tree.Node(tree.Roots[0])
	assert.Equal(t, KindCard, card.Kind)
	require.Len(t, card.Children, 2)
	assert.Equal(t, KindText, tree.Node(card.Children[0]).Kind)
	assert.Equal(t, KindDivider, tree.Node(card.Children[1]).Kind)

	tabs := tree.Node(tree.Roots[1])
	assert.Equal(t, KindTabbedContent, tabs.Kind)
	require.Len(t, tabs.Tabs, 2)
	assert.Equal(t, "One", tabs.Tabs[0].Title)
	assert.Len(t, tabs.Tabs[0].Children, 1)
	assert.Empty(t, tabs.Tabs[1].Children)
}

func TestBuild_CyclicRecordIsBounded(t *testing.T) {
	card := Record{"type": "CardComponent"}
	card["children"] = []any{card}

	tree := Build([]any{card})

	assert.Equal(t, MaxDepth+1, tree.Len())
	assert.Equal(t, 1, tree.Dropped)
}

func TestTree_Split(t *testing.T) {
	tree := BuildFrom(`[
		{"type":"ProfileBioComponent"},
		{"type":"ProfileHeroComponent","title":"first"},
		{"type":"ProfileWebsiteThemeComponent","accentColor":"#111111"},
		{"type":"ProfileHeroComponent","title":"second"},
		{"type":"ProfileTabbedContentComponent"},
		{"type":"MysteryComponent"},
		{"type":"ProfileGalleryComponent"}
	]`)

	layout := tree.Split()
	require.GreaterOrEqual(t, layout.Hero, 0)
	assert.Equal(t, "first", tree.Node(layout.Hero).Attrs["title"])
	assert.GreaterOrEqual(t, layout.Tabs, 0)
	assert.GreaterOrEqual(t, layout.Theme, 0)

	var kinds []Kind
	for _, i := range layout.Rest {
		kinds = append(kinds, tree.Node(i).Kind)
	}
	assert.Equal(t, []Kind{KindBio, KindUnrecognized, KindGallery}, kinds)
}

func TestTree_SplitEmpty(t *testing.T) {
	layout := BuildFrom(`garbage`).Split()

	assert.Equal(t, -1, layout.Hero)
	assert.Equal(t, -1, layout.Tabs)
	assert.Equal(t, -1, layout.Theme)
	assert.Empty(t, layout.Rest)
}

func TestTree_Theme(t *testing.T) {
	theme := BuildFrom(`[{"type":"ProfileWebsiteThemeComponent","accentColor":"#111111"}]`).Theme()
	assert.False(t, theme.IsDefault)
	assert.Equal(t, "#111111", theme.Accent)
	assert.Equal(t, DefaultTheme().Background, theme.Background)

	legacy := BuildFrom(`[{"type":"theme","primaryColor":"#222222","backgroundColor":"#000000"}]`).Theme()
	assert.Equal(t, "#222222", legacy.Accent)
	assert.Equal(t, "#000000", legacy.Background)

	assert.Equal(t, DefaultTheme(), BuildFrom(`[]`).Theme())
}
