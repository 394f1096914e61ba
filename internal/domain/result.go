package domain

// LookupResult is the normalized form of one moedict response.
// It is built fresh per query and read-only afterwards.
type LookupResult struct {
	// Word is the keyword the result was fetched for.
	Word string

	// Entries holds one element per matched headword sense,
	// in the order the service returned them.
	Entries []Entry

	// Translations is nil when the service provided none
	// or the translation section had an invalid shape.
	Translations *TranslationSet
}

// Entry is a single headword sense. Every field that can fail to
// parse independently is optional: a malformed field is absent,
// never an error that discards its siblings.
type Entry struct {
	Pinyin   *string
	Bopomofo *string

	// Definitions is nil when the raw sense had no definition array
	// (or a non-array one). An empty, non-nil list means the array
	// was present but empty.
	Definitions *DefinitionList
}

// DefinitionList maps a part-of-speech tag to its definition groups,
// preserving the order tags first appeared. Each group is the flat
// string list produced from one raw definition item: the definition
// text first (when present), then its quotations, examples and links
// in their original relative order.
type DefinitionList struct {
	tags   []string
	groups map[string][][]string
}

// NewDefinitionList returns an empty list. It is non-nil on purpose:
// a sense with a present-but-empty definition array is distinct from
// a sense with no definition array at all.
func NewDefinitionList() *DefinitionList {
	return &DefinitionList{groups: make(map[string][][]string)}
}

// AppendGroup starts a new, empty group under tag, registering the tag
// on first sight. One group is appended per raw definition item, even
// when the item contributes no strings; downstream rendering relies on
// group-count parity with the raw item count.
func (d *DefinitionList) AppendGroup(tag string) {
	if _, ok := d.groups[tag]; !ok {
		d.tags = append(d.tags, tag)
	}
	d.groups[tag] = append(d.groups[tag], []string{})
}

// PushToLast appends s to the most recently appended group for tag.
// It is a no-op when the tag has no group yet.
func (d *DefinitionList) PushToLast(tag, s string) {
	gs := d.groups[tag]
	if len(gs) == 0 {
		return
	}
	gs[len(gs)-1] = append(gs[len(gs)-1], s)
	d.groups[tag] = gs
}

// Tags returns the part-of-speech tags in first-seen order.
func (d *DefinitionList) Tags() []string {
	return d.tags
}

// Groups returns the definition groups for tag, in emission order.
func (d *DefinitionList) Groups(tag string) [][]string {
	return d.groups[tag]
}

// Len returns the number of distinct tags.
func (d *DefinitionList) Len() int {
	return len(d.tags)
}

// TranslationSet maps a language code to its translation strings,
// preserving the key order of the service response.
type TranslationSet struct {
	langs  []string
	byLang map[string][]string
}

// NewTranslationSet returns an empty set.
func NewTranslationSet() *TranslationSet {
	return &TranslationSet{byLang: make(map[string][]string)}
}

// Add records the translations for lang. A repeated lang keeps its
// original position and overwrites the values.
func (t *TranslationSet) Add(lang string, values []string) {
	if _, ok := t.byLang[lang]; !ok {
		t.langs = append(t.langs, lang)
	}
	t.byLang[lang] = values
}

// Languages returns the language codes in response order.
func (t *TranslationSet) Languages() []string {
	return t.langs
}

// Get returns the translations for lang, nil when absent.
func (t *TranslationSet) Get(lang string) []string {
	return t.byLang[lang]
}

// Len returns the number of languages.
func (t *TranslationSet) Len() int {
	return len(t.langs)
}

// JyutpingResult holds the Cantonese readings for each character of
// a queried word.
type JyutpingResult struct {
	Word  string
	Chars []CharReading
}

// CharReading is one character with its known jyutping readings,
// most frequent first.
type CharReading struct {
	Char     string
	Readings []string
}
