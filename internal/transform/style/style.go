package style

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/keyscribe/keyscribe/internal/transform"
)

// ErrUnknownStyle indicates a request for a style with no mapping.
var ErrUnknownStyle = errors.New("style: unknown style")

// Styler is a transform.Transformer applying the style named by the
// request's "style" argument. Case styles honor an optional "lang"
// argument (BCP 47 tag) for locale-aware casing.
type Styler struct{}

// New creates a Styler.
func New() *Styler { return &Styler{} }

// Name returns "style".
func (*Styler) Name() string { return "style" }

// Transform implements transform.Transformer.
func (*Styler) Transform(ctx context.Context, req transform.Request) (string, error) {
	if req.Text == "" {
		return "", transform.ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := req.Arg("style", "")
	tag := language.Make(req.Arg("lang", "und"))

	switch name {
	case "upper":
		return cases.Upper(tag).String(req.Text), nil
	case "lower":
		return cases.Lower(tag).String(req.Text), nil
	case "title":
		return cases.Title(tag).String(req.Text), nil
	}

	lf, ok := letterforms[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return lf.apply(req.Text), nil
}

// Styles returns every accepted style name, sorted.
func Styles() []string {
	names := []string{"upper", "lower", "title"}
	for name := range letterforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
