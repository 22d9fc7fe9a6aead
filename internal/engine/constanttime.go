/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package engine

// b2i converts bit to 1 or 0. This bool->int conversion is the only step
// of the select written as a conditional; callers turn its result into a
// mask and blend values with arithmetic rather than branching on them.
func b2i(bit bool) uint64 {
	var b uint64
	if bit {
		b = 1
	}
	return b
}

// CmovFp conditionally replaces dst's contents with src's, selected by bit:
// both limb arrays are always read and blended through a mask derived from
// bit by arithmetic negation (0 or all-ones), not by branching on the field
// elements' values. This is the Go analogue of Constantine's cneg primitive
// (spec.md §9), used to pick the correct root of y^2 = x^3 + b during
// decompression without a secret-dependent jump.
func CmovFp(dst *FpElement, src *FpElement, bit bool) {
	mask := -b2i(bit)
	for i := range dst {
		dst[i] = (dst[i] &^ mask) | (src[i] & mask)
	}
}

// CmovFp2 is CmovFp lifted componentwise to the quadratic extension field
// G2 coordinates live in.
func CmovFp2(dst *Fp2, src *Fp2, bit bool) {
	CmovFp(&dst.A0, &src.A0, bit)
	CmovFp(&dst.A1, &src.A1, bit)
}

// NegFp returns -x in Fp.
func NegFp(x *FpElement) FpElement {
	var r FpElement
	r.Neg(x)
	return r
}

// NegFp2 returns -x in Fp2.
func NegFp2(x *Fp2) Fp2 {
	var r Fp2
	r.Neg(x)
	return r
}
