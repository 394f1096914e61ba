package moedict

import (
	"github.com/tidwall/gjson"

	"github.com/meowdict/meowdict/internal/domain"
)

// normalize maps a raw moedict response body into a LookupResult.
// It never fails as a whole: every optional field is extracted
// independently and a structural mismatch (missing key, wrong type)
// leaves that field absent without touching its siblings.
func normalize(word string, body string) *domain.LookupResult {
	result := &domain.LookupResult{Word: word}
	root := gjson.Parse(body)

	if h := root.Get("h"); h.IsArray() {
		for _, sense := range h.Array() {
			result.Entries = append(result.Entries, normalizeEntry(sense))
		}
	}

	if tr := root.Get("translation"); tr.IsObject() {
		result.Translations = normalizeTranslations(tr)
	}

	return result
}

func normalizeEntry(sense gjson.Result) domain.Entry {
	var entry domain.Entry

	if p := sense.Get("p"); p.Type == gjson.String {
		s := p.String()
		entry.Pinyin = &s
	}
	if b := sense.Get("b"); b.Type == gjson.String {
		s := b.String()
		entry.Bopomofo = &s
	}
	if d := sense.Get("d"); d.IsArray() {
		entry.Definitions = normalizeDefinitions(d)
	}

	return entry
}

// qelKeys are pooled into the current definition group after the
// definition text itself, in this fixed order.
var qelKeys = []string{"q", "e", "l"}

func normalizeDefinitions(d gjson.Result) *domain.DefinitionList {
	defs := domain.NewDefinitionList()
	for _, item := range d.Array() {
		tag := "notype"
		if t := item.Get("type"); t.Type == gjson.String {
			tag = t.String()
		}
		// One group per raw item, even when the item contributes
		// no strings: rendering depends on group-count parity.
		defs.AppendGroup(tag)

		if f := item.Get("f"); f.Type == gjson.String {
			defs.PushToLast(tag, f.String())
		}
		for _, key := range qelKeys {
			v := item.Get(key)
			if !v.IsArray() {
				continue
			}
			for _, el := range v.Array() {
				if el.Type == gjson.String {
					defs.PushToLast(tag, el.String())
				}
			}
		}
	}
	return defs
}

// normalizeTranslations converts the top-level translation object.
// The whole mapping is rejected (nil) when any language value is not
// an array of strings; key order follows the response document.
func normalizeTranslations(tr gjson.Result) *domain.TranslationSet {
	set := domain.NewTranslationSet()
	valid := true
	tr.ForEach(func(lang, value gjson.Result) bool {
		if !value.IsArray() {
			valid = false
			return false
		}
		var values []string
		for _, el := range value.Array() {
			if el.Type != gjson.String {
				valid = false
				return false
			}
			values = append(values, el.String())
		}
		set.Add(lang.String(), values)
		return true
	})
	if !valid {
		return nil
	}
	return set
}
