package widgets

import "strings"

// TagList is an ordered collection of unique, non-empty tags. Append order
// is display order.
type TagList struct {
	tags []string
}

func NewTagList(tags ...string) *TagList {
	l := &TagList{}
	for _, t := range tags {
		l.Add(t)
	}
	return l
}

// Add trims the text and appends it. Empty strings and exact (case
// sensitive) duplicates are rejected; the list is left unchanged.
func (l *TagList) Add(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, t := range l.tags {
		if t == trimmed {
			return false
		}
	}
	l.tags = append(l.tags, trimmed)
	return true
}

// Remove deletes the first exact match, preserving the order of the rest.
func (l *TagList) Remove(text string) bool {
	for i, t := range l.tags {
		if t == text {
			l.tags = append(l.tags[:i], l.tags[i+1:]...)
			return true
		}
	}
	return false
}

func (l *TagList) Len() int {
	return len(l.tags)
}

// Tags returns a copy of the tag slice in display order.
func (l *TagList) Tags() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}
