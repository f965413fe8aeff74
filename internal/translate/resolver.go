package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/agritech/cropscan-api/internal/catalog"
	"github.com/agritech/cropscan-api/internal/llm"
	"github.com/agritech/cropscan-api/internal/logx"
)

// BaseLanguage is the language the catalog text is authored in.
const BaseLanguage = "en"

// Resolver localizes disease records through three tiers: the reviewed local
// table, an on-demand remote translation, and finally the base-language text.
// Resolve never fails; every error degrades to a lower tier.
type Resolver struct {
	local   map[string]map[string]catalog.Record
	gen     llm.Generator // nil disables the remote tier
	cache   Cache         // nil disables caching of remote results
	timeout time.Duration
}

// NewResolver builds a resolver. gen and cache may be nil.
func NewResolver(gen llm.Generator, cache Cache, timeout time.Duration) *Resolver {
	return &Resolver{
		local:   localTranslations,
		gen:     gen,
		cache:   cache,
		timeout: timeout,
	}
}

// Resolve returns the record for label in the requested language. Base-language
// requests return base unchanged and never touch the remote model.
func (r *Resolver) Resolve(ctx context.Context, label, lang string, base catalog.Record) catalog.Record {
	lang = NormalizeLang(lang)
	if lang == BaseLanguage {
		return base
	}

	if byLang, ok := r.local[label]; ok {
		if rec, ok := byLang[lang]; ok {
			return rec
		}
	}

	if r.cache != nil {
		if raw, ok := r.cache.Get(ctx, cacheKey(label, lang)); ok {
			if tr, err := Parse(raw); err == nil {
				return tr.Apply(base)
			}
		}
	}

	if r.gen == nil {
		return base
	}

	rec, ok := r.remote(ctx, label, lang, base)
	if !ok {
		return base
	}
	return rec
}

// remote runs the translation prompt under the resolver's timeout. Any
// failure reports !ok so the caller falls back to the base language.
func (r *Resolver) remote(ctx context.Context, label, lang string, base catalog.Record) (catalog.Record, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.gen.Generate(callCtx, translationPrompt(base, lang))
	if err != nil {
		logx.Warn().Err(err).Str("language", lang).Str("disease", label).
			Msg("remote translation failed, using base language")
		return catalog.Record{}, false
	}

	tr, err := Parse(raw)
	if err != nil {
		logx.Warn().Err(err).Str("language", lang).Str("disease", label).
			Msg("unparseable translation reply, using base language")
		return catalog.Record{}, false
	}

	if r.cache != nil {
		if encoded, err := json.Marshal(tr); err == nil {
			r.cache.Set(ctx, cacheKey(label, lang), string(encoded))
		}
	}
	return tr.Apply(base), true
}

func translationPrompt(base catalog.Record, lang string) string {
	return fmt.Sprintf(`Translate the following agricultural advice into the %q language.
Reply ONLY with a JSON object of the form {"cause": "...", "treatment": "...", "prevention": "...", "fertilizer": "..."}.

cause: %s
treatment: %s
prevention: %s
fertilizer: %s`, lang, base.Cause, base.Treatment, base.Prevention, base.Fertilizer)
}

// NormalizeLang reduces a BCP-47 tag to its base language ("hi-IN" to "hi").
// Unparseable values are lowercased as-is; empty means the base language.
func NormalizeLang(lang string) string {
	if lang == "" {
		return BaseLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	b, _ := tag.Base()
	return b.String()
}
