// Package matrix provides Overlay, a flat row-major float64 grid the
// disambiguation package uses to accumulate and blend per-color
// resolution weights before normalizing them into tint opacities.
//
// Adapted from the teacher's matrix package: Dense's flat row-major
// []float64 backing store and the element-wise normalize/scale kernels,
// narrowed from a general linear-algebra library down to the one
// concrete shape this module needs.
package matrix
