// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// enumValue is a flag holding one of a component's named constants. Bad
// values are rejected while the command line is parsed.
type enumValue[T fmt.Stringer] struct {
	value *T
	parse func(string) (T, error)
}

func newEnumValue[T fmt.Stringer](p *T, def T, parse func(string) (T, error)) pflag.Value {
	*p = def
	return &enumValue[T]{value: p, parse: parse}
}

func (e *enumValue[T]) String() string {
	return (*e.value).String()
}

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return err
	}
	*e.value = v
	return nil
}

func (e *enumValue[T]) Type() string {
	return "string"
}

// override copies a flag's value over the configured one when the user
// set it.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
