// Package bnl defines options and sentinel errors for preference selection.
package bnl

import (
	"context"
	"errors"
)

var (
	// ErrNilTerm indicates Select received a nil preference term.
	ErrNilTerm = errors.New("bnl: preference term is nil")

	// ErrUnboundDataset indicates Select received a nil or empty dataset.
	ErrUnboundDataset = errors.New("bnl: no dataset bound")

	// ErrIndexOutOfRange indicates a supplied row index outside 0..n-1.
	ErrIndexOutOfRange = errors.New("bnl: row index out of range")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bnl: invalid option")
)

// Dataset is the minimal view of tabular data the selector needs.
type Dataset interface {
	// Len returns the number of rows.
	Len() int
}

// Option configures preference selection.
type Option func(*Options)

// Options holds configurable parameters for Select and SelectGrouped.
type Options struct {
	// Ctx allows cancellation of grouped selection;
	// defaults to context.Background().
	Ctx context.Context

	// TopK, if >= 1, selects the k best rows by layered maxima instead of
	// the single maxima layer. 0 means plain skyline selection.
	TopK int

	// Indices, if non-nil, restricts selection to this row subset
	// (Select only; grouped selection takes its subsets from the groups).
	Indices []int

	// err records the first invalid option; checked before selection.
	err error
}

// DefaultOptions returns a background context, plain (non-top-k) selection,
// and the full row range.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context for grouped selection.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTopK selects the k best rows via layered maxima.
// k < 1 is an ErrOptionViolation.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.TopK = k
	}
}

// WithIndices restricts selection to the given row subset.
// An empty subset is an ErrOptionViolation.
func WithIndices(v []int) Option {
	return func(o *Options) {
		if len(v) == 0 {
			o.err = ErrOptionViolation

			return
		}
		o.Indices = v
	}
}
