package component

// Theme holds the color tokens a tenant page is painted with.
type Theme struct {
	Background    string
	Surface       string
	Text          string
	SecondaryText string
	Accent        string
	Secondary     string

	// IsDefault is set when no theme component was configured.
	IsDefault bool
}

func DefaultTheme() Theme {
	return Theme{
		Background:    "#121418",
		Surface:       "#181b21",
		Text:          "#ffffff",
		SecondaryText: "#9ca3af",
		Accent:        "#f97316",
		Secondary:     "#DA03D0",
		IsDefault:     true,
	}
}

// ThemeFrom reads the tokens of a webtheme component. Tokens it does not set keep their
// default value.
func ThemeFrom(rec Record) Theme {
	def := DefaultTheme()
	return Theme{
		Background:    orDefault(Str(rec, "backgroundColor"), def.Background),
		Surface:       orDefault(Str(rec, "surfaceColor"), def.Surface),
		Text:          orDefault(Str(rec, "textColor"), def.Text),
		SecondaryText: orDefault(Str(rec, "secondaryTextColor"), def.SecondaryText),
		Accent:        orDefault(Str(rec, "accentColor", "primaryColor"), def.Accent),
		Secondary:     orDefault(Str(rec, "secondaryColor"), def.Secondary),
	}
}

// Theme returns the tokens of the tree's first theme root, or the default set.
func (t *Tree) Theme() Theme {
	if i := t.Split().Theme; i >= 0 {
		return ThemeFrom(t.Nodes[i].Attrs)
	}
	return DefaultTheme()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
