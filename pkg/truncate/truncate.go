// Package truncate bounds any full (non cache-deferred) text payload to a
// maximum size, appending a footer that tells the caller how to get the rest.
package truncate

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DefaultLimit is the maximum characters returned when no limit is supplied.
const DefaultLimit = 25000

const defaultHint = "Request a narrower range or use summary mode to page through the rest."

type Result struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
	// OriginalLength is set only when Truncated is true.
	OriginalLength int `json:"original_length,omitempty"`
}

type options struct {
	limit int
	hint  string
}

type Option func(*options)

func WithLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

func WithHint(hint string) Option {
	return func(o *options) {
		if hint != "" {
			o.hint = hint
		}
	}
}

// Truncate returns text unchanged when it fits within the limit. Otherwise it
// cuts the text so that content plus footer stays within the limit, which
// makes re-truncating an already truncated result a no-op.
func Truncate(text string, opts ...Option) Result {
	o := options{limit: DefaultLimit, hint: defaultHint}
	for _, opt := range opts {
		opt(&o)
	}

	if len(text) <= o.limit {
		return Result{Text: text, Truncated: false}
	}

	keep := o.limit
	footer := footerFor(len(text), keep, o.hint)
	if keep > len(footer) {
		keep -= len(footer)
		footer = footerFor(len(text), keep, o.hint)
	}

	return Result{
		Text:           text[:keep] + footer,
		Truncated:      true,
		OriginalLength: len(text),
	}
}

func footerFor(original, shown int, hint string) string {
	return fmt.Sprintf(
		"\n\n--- OUTPUT TRUNCATED ---\nShowing %s of %s characters.\n%s",
		humanize.Comma(int64(shown)),
		humanize.Comma(int64(original)),
		hint,
	)
}
