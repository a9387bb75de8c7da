package syllabus

import (
	"slices"
	"strings"
)

// Fragments returns the identifier fragments contributed by one section,
// in declaration order: "section:key" for a topic without sub-items, or one
// "section:key:sub" per sub-item.
func Fragments(s Section) []string {
	var out []string
	for _, t := range s.Topics {
		if len(t.SubItems) == 0 {
			out = append(out, s.Name+Separator+t.Key)
			continue
		}
		for _, sub := range t.SubItems {
			out = append(out, s.Name+Separator+t.Key+Separator+sub)
		}
	}
	return out
}

// Expand returns the Cartesian product of the fragments of all sections.
// Zero sections yield no items, and so does any section without topics.
func Expand(sections []Section) []string {
	return ExpandFrom(nil, sections)
}

// ExpandFrom folds sections into an existing accumulator. A non-empty acc
// is treated as the product of sections already expanded; acc itself is
// never modified.
func ExpandFrom(acc []string, sections []Section) []string {
	items := slices.Clone(acc)
	started := len(items) > 0
	for _, s := range sections {
		frags := Fragments(s)
		if !started {
			items = frags
			started = true
			continue
		}
		next := make([]string, 0, len(items)*len(frags))
		for _, x := range items {
			for _, y := range frags {
				next = append(next, x+Separator+y)
			}
		}
		items = next
	}
	return items
}

// ItemIDs returns the fully qualified identifiers of every item in src.
func ItemIDs(src Source) []string {
	items := Expand(src.Sections)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = src.Name + Separator + it
	}
	return ids
}

// splitSubItems splits a comma-separated value into trimmed, non-empty
// sub-items. A blank value has no sub-items.
func splitSubItems(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	var subs []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			subs = append(subs, p)
		}
	}
	return subs
}
