package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"

	"github.com/keyscribe/keyscribe/internal/transform"
)

var (
	// ErrBadLanguage indicates an unparseable language tag.
	ErrBadLanguage = errors.New("translate: bad language tag")

	// ErrNoDictionary indicates no dictionary covers the requested pair.
	ErrNoDictionary = errors.New("translate: no dictionary for language pair")
)

// Pair identifies a translation direction.
type Pair struct {
	From language.Tag
	To   language.Tag
}

// ParsePair builds a Pair from BCP 47 tags.
func ParsePair(from, to string) (Pair, error) {
	f, err := language.Parse(from)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadLanguage, from)
	}
	t, err := language.Parse(to)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadLanguage, to)
	}
	return Pair{From: f, To: t}, nil
}

// String returns a form like "en→es".
func (p Pair) String() string {
	return p.From.String() + "→" + p.To.String()
}

// Dictionary maps lowercase source words to target words.
type Dictionary map[string]string

// Translator is a transform.Transformer selecting a dictionary by the
// request's "from" and "to" arguments.
type Translator struct {
	dicts map[Pair]Dictionary
}

// New creates a Translator with no dictionaries.
func New() *Translator {
	return &Translator{dicts: make(map[Pair]Dictionary)}
}

// Add registers a dictionary for a pair, merging into any existing one.
func (t *Translator) Add(p Pair, d Dictionary) {
	existing, ok := t.dicts[p]
	if !ok {
		existing = make(Dictionary, len(d))
		t.dicts[p] = existing
	}
	for k, v := range d {
		existing[strings.ToLower(k)] = v
	}
}

// Pairs returns the registered translation directions.
func (t *Translator) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.dicts))
	for p := range t.dicts {
		pairs = append(pairs, p)
	}
	return pairs
}

// Name returns "translate".
func (*Translator) Name() string { return "translate" }

// Transform implements transform.Transformer.
func (t *Translator) Transform(ctx context.Context, req transform.Request) (string, error) {
	if req.Text == "" {
		return "", transform.ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pair, err := ParsePair(req.Arg("from", "en"), req.Arg("to", ""))
	if err != nil {
		return "", err
	}
	dict, err := t.dictionary(pair)
	if err != nil {
		return "", err
	}

	return mapWords(req.Text, func(word string) string {
		target, ok := dict[strings.ToLower(word)]
		if !ok {
			return word
		}
		return matchCase(word, target)
	}), nil
}

// dictionary finds the pair's dictionary, falling back to a base
// language match so "en-US"→"es" resolves an "en"→"es" dictionary.
func (t *Translator) dictionary(p Pair) (Dictionary, error) {
	if d, ok := t.dicts[p]; ok {
		return d, nil
	}

	fromBase, _ := p.From.Base()
	toBase, _ := p.To.Base()
	for reg, d := range t.dicts {
		rf, _ := reg.From.Base()
		rt, _ := reg.To.Base()
		if rf == fromBase && rt == toBase {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoDictionary, p)
}

// mapWords applies fn to every maximal letter run, copying everything
// else through verbatim.
func mapWords(text string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		b.WriteString(fn(string(runes[i:j])))
		i = j
	}
	return b.String()
}

// matchCase shapes target like source: all-caps stays all-caps, a
// leading capital is preserved, everything else is the dictionary form.
func matchCase(source, target string) string {
	src := []rune(source)
	if len(src) > 1 && allUpper(src) {
		return strings.ToUpper(target)
	}
	if unicode.IsUpper(src[0]) {
		tr := []rune(target)
		tr[0] = unicode.ToUpper(tr[0])
		return string(tr)
	}
	return target
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
