// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknown is returned by [New] for an unregistered throbber name.
var ErrUnknown = errors.New("unknown throbber")

// registry maps throbber names to their constructors.
var registry = map[string]func() Throbber{
	"arrows": func() Throbber { return NewChasingArrows() },
	"star":   func() Throbber { return NewStar() },
}

// Names returns the sorted names of all throbbers.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// New returns a new throbber with the given name.
func New(name string) (Throbber, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("throbber.New: %w %q (must be one of %v)", ErrUnknown, name, Names())
	}
	return fn(), nil
}
