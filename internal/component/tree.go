package component

// Node is one component in a Tree. Children and tab bodies are indices into Tree.Nodes.
type Node struct {
	Kind     Kind
	Label    string // cleaned label, kept for unrecognized kinds
	RawType  string
	Attrs    Record
	Children []int
	Tabs     []Tab
}

type Tab struct {
	Title    string
	Icon     string
	Children []int
}

// Tree owns every node of a component list. Parents refer to children by index, so a
// cyclic input record can never produce a cyclic tree.
type Tree struct {
	Nodes []Node
	Roots []int

	// Dropped counts records skipped because they sat deeper than MaxDepth.
	Dropped int
}

// Build normalizes items and lays them out as a Tree in a single pass.
// Entries that are not records are skipped.
func Build(items []any) *Tree {
	t := &Tree{}
	t.Roots = t.addAll(items, 0)
	return t
}

// BuildFrom decodes a stored collection (list or JSON text) and builds it.
func BuildFrom(raw any) *Tree {
	return Build(ParseList(raw))
}

func (t *Tree) Node(i int) *Node {
	return &t.Nodes[i]
}

func (t *Tree) Len() int {
	return len(t.Nodes)
}

func (t *Tree) addAll(items []any, depth int) []int {
	var out []int
	for _, item := range items {
		if i, ok := t.add(item, depth); ok {
			out = append(out, i)
		}
	}
	return out
}

func (t *Tree) add(item any, depth int) (int, bool) {
	rec, ok := asRecord(item)
	if !ok {
		return 0, false
	}
	if depth > MaxDepth {
		t.Dropped++
		return 0, false
	}

	normalize(rec, MaxDepth) // tabs are walked below, not inside normalize
	raw := RawType(rec)
	label, _ := rec[CleanKindKey].(string)

	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		Kind:    ResolveKind(label, raw),
		Label:   label,
		RawType: raw,
		Attrs:   rec,
	})

	switch t.Nodes[idx].Kind {
	case KindTabbedContent:
		tabs := t.addTabs(rec, depth)
		t.Nodes[idx].Tabs = tabs
	case KindCard, KindColumn, KindRow, KindExpandable:
		children := t.addAll(ParseList(rec["children"]), depth+1)
		t.Nodes[idx].Children = children
	}

	return idx, true
}

func (t *Tree) addTabs(rec Record, depth int) []Tab {
	var tabs []Tab
	for _, tab := range Records(rec, "tabs") {
		children := t.addAll(ParseList(tab["components"]), depth+1)
		tabs = append(tabs, Tab{
			Title:    Str(tab, "title", "label", "name"),
			Icon:     Str(tab, "icon"),
			Children: children,
		})
	}
	return tabs
}

// Layout is a tenant page split into its structural singletons and the remaining stack.
type Layout struct {
	Hero  int // -1 when absent
	Tabs  int // -1 when absent
	Theme int // -1 when absent
	Rest  []int
}

// Split picks the first hero, tabbed-content and theme roots and keeps every other root in
// storage order.
func (t *Tree) Split() Layout {
	l := Layout{Hero: -1, Tabs: -1, Theme: -1}
	for _, i := range t.Roots {
		switch t.Nodes[i].Kind {
		case KindHero:
			if l.Hero < 0 {
				l.Hero = i
			}
		case KindTabbedContent:
			if l.Tabs < 0 {
				l.Tabs = i
			}
		case KindWebTheme:
			if l.Theme < 0 {
				l.Theme = i
			}
		default:
			l.Rest = append(l.Rest, i)
		}
	}
	return l
}
