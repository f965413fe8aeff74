package catalog

import "testing"

func TestLookupExact(t *testing.T) {
	c := Default()
	rec := c.Lookup("Corn___Common_Rust")
	if rec == Unknown {
		t.Fatal("exact key returned Unknown")
	}
	if rec.Cause == "" || rec.Treatment == "" || rec.Prevention == "" || rec.Fertilizer == "" {
		t.Error("record has empty fields")
	}
}

func TestLookupNormalized(t *testing.T) {
	c := Default()
	want := c.Lookup("Corn___Common_Rust")

	tests := []string{
		"corn common rust",
		"CORN COMMON RUST",
		"Corn_Common_Rust",
		"corn___common___rust",
	}
	for _, query := range tests {
		if got := c.Lookup(query); got != want {
			t.Errorf("Lookup(%q) did not match the cataloged record", query)
		}
	}
}

func TestLookupSingleUnderscoreKeys(t *testing.T) {
	c := Default()
	// The sugarcane keys mix single underscores and literal spaces.
	if got := c.Lookup("sugarcane red rot"); got != c.Lookup("Sugarcane_Red Rot") {
		t.Error("normalized lookup failed for mixed-separator key")
	}
}

func TestLookupUnknownReturnsDefault(t *testing.T) {
	c := Default()
	got := c.Lookup("Banana___Imaginary_Spot")
	if got != Unknown {
		t.Errorf("Lookup(unknown) = %+v, want Unknown record", got)
	}
	if c.Has("Banana___Imaginary_Spot") {
		t.Error("Has(unknown) = true")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Potato___Early_Blight", "Potato Early Blight"},
		{"Sugarcane_Red Rot", "Sugarcane Red Rot"},
		{"Wheat___Healthy", "Wheat Healthy"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.label); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestDefaultCoversAllClasses(t *testing.T) {
	c := Default()
	if c.Len() != 22 {
		t.Errorf("Len() = %d, want 22", c.Len())
	}
	for _, key := range c.keys {
		if _, ok := c.records[key]; !ok {
			t.Errorf("key %q has no record", key)
		}
	}
}
