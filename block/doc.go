// Package block converts whole planes of samples between dtype sample
// types.
//
// A Converter fans the work out across chunks with one pooled
// arbitrary-precision scratch value per worker, so even conversions with no
// fixed-width fast path run without per-sample allocation. Masked
// conversion restricts the work to a caller-supplied set of sample indices
// (region-of-interest style selections). Converted planes can be written to
// and restored from compressed binary snapshots.
package block
