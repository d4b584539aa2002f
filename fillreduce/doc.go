// Package fillreduce applies an externally computed fill-reducing ordering
// to a sparse matrix ahead of symbolic analysis.
//
// The ordering itself (AMD, COLAMD, nested dissection, …) is not computed
// here; it is injected as a Strategy. Without a strategy the Applier is the
// identity and says so through IsApplied.
//
//	ap := fillreduce.NewApplier(
//		fillreduce.WithStrategy(fillreduce.Fixed{Row: p}),
//		fillreduce.WithSymmetric(true),
//	)
//	C, err := ap.Apply(A) // upper triangle of P·A·Pᵗ
//	pinv := ap.Pinv()
package fillreduce
