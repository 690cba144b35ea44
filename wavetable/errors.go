// SPDX-License-Identifier: EPL-2.0

package wavetable

import "errors"

var (
	// ErrEmptySource is returned when an imported cycle holds no samples.
	ErrEmptySource = errors.New("wavetable source has no samples")

	// ErrSourceTooLong is returned when an imported cycle exceeds MaxImportSamples.
	ErrSourceTooLong = errors.New("wavetable source exceeds import limit")
)
