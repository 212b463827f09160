// Package divergence measures how differently two hyperedges distribute
// their affinity over nodes.
//
// 🚀 What:
//
//	KullbackLeibler  KL(p‖q) = Σ p_i·log2(p_i/q_i), terms with p_i = 0 are 0.
//	JensenShannon    JSD(p,q) = ½·KL(p‖m) + ½·KL(q‖m), m = ½(p+q), in bits.
//	Similarity       1 − JSD between two hyperedges' gamma distributions,
//	                 each restricted to the union of both member lists,
//	                 zero-padded and L1-normalised.
//
// The natural-log kernels come from gonum's stat package; results are
// converted to bits so that 0 ≤ JSD ≤ 1 for valid distributions.
//
// Errors:
//
//   - ErrLengthMismatch: p and q differ in length.
//   - ErrNotDistribution: an input does not sum to 1 (within Tolerance) or
//     holds a negative entry.
package divergence
