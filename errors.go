// SPDX-License-Identifier: EPL-2.0

package ddsgen

import "errors"

var (
	ErrInvalidRate   = errors.New("sample rate must be positive")
	ErrInvalidLength = errors.New("sample count must be positive")
)
