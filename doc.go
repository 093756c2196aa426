// Package dtype provides numeric sample-type descriptors and conversion for
// image data.
//
// Every concrete sample representation (8-bit unsigned, 12-bit unsigned,
// 32-bit float, arbitrary-precision complex, ...) is described by a Type
// descriptor that reports which fixed-width representations the type
// supports and knows how to move values in and out of them. Cast uses the
// descriptors to pick the cheapest shared representation, so converting
// between two bounded types never touches arbitrary-precision arithmetic.
//
// # Quick Start
//
//	var out float32
//	err := dtype.Cast(dtype.Int16, int16(-5), dtype.Float32, &out)
//
// Types without a fixed-width representation (complex and unbounded types)
// need a scratch value; CastWith never fails:
//
//	tmp := bigcomplex.New()
//	var c complex128
//	dtype.CastWith(dtype.Complex64, complex64(1+2i), dtype.Complex128, &c, tmp)
//
// The scratch value is caller-owned and reusable across any number of
// conversions. For whole planes of samples, see the block package.
package dtype
