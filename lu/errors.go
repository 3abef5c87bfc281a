// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

package lu

import "errors"

// ErrScratchSizeOverflow is returned by the size-inquiry functions
// (LUInPlaceReq, SolveReq) when the scratch requirement for the given
// dimensions overflows a Go int. A caller receiving it cannot proceed
// with dimensions that large.
var ErrScratchSizeOverflow = errors.New("lu: scratch size requirement overflows int")
