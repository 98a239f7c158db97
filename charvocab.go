package charvocab

import (
	"github.com/dustin/go-humanize"
	"github.com/lwch/logging"
)

type options struct {
	start     string
	end       string
	skipBlank bool
}

// Option changes how a Vocab is built.
type Option func(*options)

// WithSentinels replaces the default <s> and <e> tokens.
func WithSentinels(start, end string) Option {
	return func(o *options) {
		o.start = start
		o.end = end
	}
}

// WithSkipBlank drops names made of whitespace only before indexing.
func WithSkipBlank(skip bool) Option {
	return func(o *options) {
		o.skipBlank = skip
	}
}

func buildOptions(opts []Option) options {
	o := options{
		start: StartToken,
		end:   EndToken,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build loads the names in column of sheet from the xlsx file at path and
// returns their character vocabulary.
func Build(path, sheet, column string, opts ...Option) (*Vocab, error) {
	names, err := LoadNames(path, sheet, column)
	if err != nil {
		return nil, err
	}
	logging.Info("%s names loaded from %q/%q", humanize.Comma(int64(len(names))), sheet, column)
	return BuildNames(names, opts...)
}

// BuildNames returns the character vocabulary of names. Indices are
// assigned in code point order so equal input always gives equal output.
func BuildNames(names []string, opts ...Option) (*Vocab, error) {
	o := buildOptions(opts)
	names = Normalize(names, o.skipBlank)
	dict := buildDict(names)
	logging.Info("dict size: %d", dict.Size())
	v, err := newVocab(dict, o.start, o.end)
	if err != nil {
		logging.Error("build vocab: %v", err)
		return nil, err
	}
	logging.Info("vocab size: %d", v.Len())
	return v, nil
}
