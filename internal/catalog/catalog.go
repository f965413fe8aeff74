package catalog

import "strings"

// Record holds the base-language (English) agronomic advice for one disease
// class. Records are immutable after construction.
type Record struct {
	Cause      string
	Treatment  string
	Prevention string
	Fertilizer string
}

// Unknown is returned when no catalog entry matches. Lookup never fails; a
// missing entry degrades to this record so the request still succeeds.
var Unknown = Record{
	Cause:      "Leaf pattern analysis detected an anomaly. Consult a local agricultural expert.",
	Treatment:  "Consult with a local agricultural expert for correct diagnosis and treatment.",
	Prevention: "Practice good crop rotation and field sanitation.",
	Fertilizer: "Maintain balanced soil nutrition based on a recent soil test.",
}

// Catalog maps class labels to disease records. Iteration for the fallback
// lookup follows definition order.
type Catalog struct {
	keys    []string
	records map[string]Record
}

// New builds a catalog preserving the given definition order.
func New(keys []string, records map[string]Record) *Catalog {
	return &Catalog{keys: keys, records: records}
}

// Lookup resolves a class label to its record. Exact match first; otherwise
// both sides are normalised (separator underscores collapsed to spaces,
// case-insensitive) and the first matching entry in definition order wins.
// An unmatched label returns Unknown.
func (c *Catalog) Lookup(label string) Record {
	if rec, ok := c.records[label]; ok {
		return rec
	}

	want := normalizeKey(label)
	for _, key := range c.keys {
		if normalizeKey(key) == want {
			return c.records[key]
		}
	}
	return Unknown
}

// Has reports whether label resolves to a real catalog entry.
func (c *Catalog) Has(label string) bool {
	if _, ok := c.records[label]; ok {
		return true
	}
	want := normalizeKey(label)
	for _, key := range c.keys {
		if normalizeKey(key) == want {
			return true
		}
	}
	return false
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// DisplayName derives the human-facing disease name from a stored label,
// e.g. "Potato___Early_Blight" becomes "Potato Early Blight". This is part of
// the response contract.
func DisplayName(label string) string {
	return strings.ReplaceAll(strings.ReplaceAll(label, "___", " "), "_", " ")
}

func normalizeKey(s string) string {
	return strings.ToLower(DisplayName(s))
}
