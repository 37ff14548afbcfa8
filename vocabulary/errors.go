// SPDX-License-Identifier: MIT
package vocabulary

import "errors"

// Sentinel errors for the vocabulary package. Callers branch with errors.Is.
var (
	// ErrEmptyName indicates an empty string was offered as a vocabulary key.
	ErrEmptyName = errors.New("vocabulary: empty name")

	// ErrNotNumeric indicates a name could not be parsed as a decimal
	// unsigned integer in a numeric-mode Vocabulary.
	ErrNotNumeric = errors.New("vocabulary: name is not a decimal integer")

	// ErrIDOutOfRange indicates Name(id) was called with an id that has
	// never been inserted.
	ErrIDOutOfRange = errors.New("vocabulary: id out of range")
)
