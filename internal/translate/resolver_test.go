package translate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agritech/cropscan-api/internal/catalog"
	"github.com/agritech/cropscan-api/internal/llm"
)

// stubGenerator returns a fixed reply and counts invocations.
type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubGenerator) Chat(ctx context.Context, history []llm.Turn, message string) (string, error) {
	return s.Generate(ctx, message)
}

var base = catalog.Record{
	Cause:      "base cause",
	Treatment:  "base treatment",
	Prevention: "base prevention",
	Fertilizer: "base fertilizer",
}

func TestResolveBaseLanguageSkipsAllTiers(t *testing.T) {
	gen := &stubGenerator{reply: `{"cause":"x"}`}
	r := NewResolver(gen, nil, time.Second)

	for _, lang := range []string{"en", "", "en-US"} {
		got := r.Resolve(context.Background(), "Corn___Common_Rust", lang, base)
		if got != base {
			t.Errorf("Resolve(lang=%q) = %+v, want base record", lang, got)
		}
	}
	if gen.calls != 0 {
		t.Errorf("remote model invoked %d times for base-language requests", gen.calls)
	}
}

func TestResolveLocalTierWinsOverRemote(t *testing.T) {
	gen := &stubGenerator{reply: `{"cause":"remote"}`}
	r := NewResolver(gen, nil, time.Second)

	got := r.Resolve(context.Background(), "Corn___Common_Rust", "hi", base)
	want := localTranslations["Corn___Common_Rust"]["hi"]
	if got != want {
		t.Errorf("Resolve() = %+v, want local table entry", got)
	}
	if gen.calls != 0 {
		t.Errorf("remote model invoked %d times despite local hit", gen.calls)
	}
}

func TestResolveLocalTierHandlesRegionTags(t *testing.T) {
	r := NewResolver(nil, nil, time.Second)
	got := r.Resolve(context.Background(), "Corn___Common_Rust", "hi-IN", base)
	if got != localTranslations["Corn___Common_Rust"]["hi"] {
		t.Error("hi-IN did not resolve to the hi table entry")
	}
}

func TestResolveRemoteTier(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n{\"cause\":\"remote cause\",\"treatment\":\"remote treatment\"}\n```"}
	r := NewResolver(gen, nil, time.Second)

	got := r.Resolve(context.Background(), "Potato___Healthy", "ta", base)
	if got.Cause != "remote cause" || got.Treatment != "remote treatment" {
		t.Errorf("remote fields not applied: %+v", got)
	}
	// Fields absent from the reply keep the base text.
	if got.Prevention != base.Prevention || got.Fertilizer != base.Fertilizer {
		t.Errorf("missing fields should fall back to base: %+v", got)
	}
	if gen.calls != 1 {
		t.Errorf("remote model invoked %d times, want 1", gen.calls)
	}
}

func TestResolveRemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"network error", &stubGenerator{err: errors.New("connection refused")}},
		{"malformed reply", &stubGenerator{reply: "I cannot translate that, sorry!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.gen, nil, time.Second)
			got := r.Resolve(context.Background(), "Potato___Healthy", "ta", base)
			if got != base {
				t.Errorf("Resolve() = %+v, want base record on remote failure", got)
			}
		})
	}
}

func TestResolveWithoutGenerator(t *testing.T) {
	r := NewResolver(nil, nil, time.Second)
	got := r.Resolve(context.Background(), "Potato___Healthy", "ta", base)
	if got != base {
		t.Errorf("Resolve() = %+v, want base record when remote tier disabled", got)
	}
}

// memCache is an in-memory Cache for tests.
type memCache struct {
	data map[string]string
}

func (m *memCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(ctx context.Context, key, value string) {
	m.data[key] = value
}

func TestResolveCachesRemoteResults(t *testing.T) {
	gen := &stubGenerator{reply: `{"cause":"remote cause"}`}
	cache := &memCache{data: map[string]string{}}
	r := NewResolver(gen, cache, time.Second)

	first := r.Resolve(context.Background(), "Potato___Healthy", "ta", base)
	second := r.Resolve(context.Background(), "Potato___Healthy", "ta", base)

	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if gen.calls != 1 {
		t.Errorf("remote model invoked %d times, want 1 (second hit from cache)", gen.calls)
	}
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"en-US", "en"},
		{"hi-IN", "hi"},
		{"MR", "mr"},
		{"!!", "!!"},
	}
	for _, tt := range tests {
		if got := NormalizeLang(tt.in); got != tt.want {
			t.Errorf("NormalizeLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
