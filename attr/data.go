package attr

import (
	"sort"
	"strings"

	"github.com/npillmayer/tagtree/capability"
)

// DataPrefix is prepended to every key of a Data attribute.
const DataPrefix = "data-"

// Entry is a single key/value pair of a Data attribute.
type Entry struct {
	Key   string
	Value string
}

// Data holds all the data-* attributes of an element. It is expanded into
// one fact per entry when rendered:
//
//     data-foo="bar" data-baz="1"
//
// Entries are kept in insertion order and rendered in that order. Keys are
// unique; adding a key a second time replaces the value in place.
type Data struct {
	entries []Entry
}

// NewData creates a Data attribute from a list of entries.
func NewData(entries ...Entry) Data {
	d := Data{}
	for _, e := range entries {
		d = d.With(e.Key, e.Value)
	}
	return d
}

// DataFromMap creates a Data attribute from an (unordered) map. As Go maps
// do not have a defined iteration order, entries are sorted by key.
func DataFromMap(m map[string]string) Data {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d := Data{entries: make([]Entry, 0, len(keys))}
	for _, k := range keys {
		d.entries = append(d.entries, Entry{Key: k, Value: m[k]})
	}
	return d
}

// With returns a copy of d with key set to value. d itself is unchanged.
func (d Data) With(key, value string) Data {
	entries := make([]Entry, len(d.entries), len(d.entries)+1)
	copy(entries, d.entries)
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			return Data{entries: entries}
		}
	}
	return Data{entries: append(entries, Entry{Key: key, Value: value})}
}

// Len returns the number of entries.
func (d Data) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the entries, in rendering order.
func (d Data) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// Get returns the value for key, if present.
func (d Data) Get(key string) (string, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Capabilities is part of interface capability.Bearer.
func (d Data) Capabilities() capability.Set {
	return defaultCaps
}

// Facts expands d into one `data-<key>` fact per entry.
func (d Data) Facts() []Fact {
	facts := make([]Fact, len(d.entries))
	for i, e := range d.entries {
		facts[i] = Fact{name: DataPrefix + e.Key, value: e.Value}
	}
	return facts
}

// Render joins the expanded facts with a single space.
// An empty Data renders as the empty string. Elements still write the
// separating space in front of it, so `<div data>` with no entries renders
// as `<div  />`.
func (d Data) Render() string {
	return d.RenderWith(verbatim)
}

// RenderWith renders like Render, but passes values through esc first.
func (d Data) RenderWith(esc func(string) string) string {
	var b strings.Builder
	for i, f := range d.Facts() {
		if i > 0 {
			b.WriteByte(' ')
		}
		f.renderTo(&b, esc)
	}
	return b.String()
}

var _ Multi = Data{}
