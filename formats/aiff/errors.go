// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a readable AIFF stream.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates a sample size other than 16 bits.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates a COMM chunk without a usable format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
