// File: region/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package region provides the concrete api.Region implementations:
// PackedSlice over borrowed memory, Owned over inline storage, and Chain
// for bounded non-contiguous sequences.
package region
