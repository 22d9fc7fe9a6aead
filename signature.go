/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import (
	"math/big"

	"github.com/mratsim/constantine-eth-bls/internal/engine"
)

// Signature wraps an affine point S in G2, the prime-order subgroup of the
// sextic twist E'(Fp2): y^2 = x^3 + 4(1+u) (spec.md §3). The zero value is
// the point at infinity, valid only when explicitly representing an
// aggregation neutral element.
type Signature struct {
	point engine.G2
}

// g2B is the BLS12-381 G2 twist curve coefficient: y^2 = x^3 + 4(1+u).
var g2B = func() engine.Fp2 {
	var b engine.Fp2
	b.A0.SetUint64(4)
	b.A1.SetUint64(4)
	return b
}()

// IsZero reports whether sig is the G2 neutral element.
func (sig Signature) IsZero() bool {
	return engine.IsInfinityG2(&sig.point)
}

// AreEqual reports whether sig and other encode the same G2 point.
func (sig Signature) AreEqual(other Signature) bool {
	return sig.point.Equal(&other.point)
}

// Validate runs validate_signature (spec.md §4.A) over the twist curve.
func (sig Signature) Validate() Status {
	if sig.IsZero() {
		return StatusPointAtInfinity
	}
	if !sig.point.IsOnCurve() {
		return StatusPointNotOnCurve
	}
	if !sig.point.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}

// fpCoordSignBit computes the sign-of-y predicate for a single Fp element:
// lexicographically largest iff y_as_integer >= (p+1)/2.
func fpCoordSignBit(y *engine.FpElement) bool {
	yBig := new(big.Int)
	y.BigInt(yBig)
	return yBig.Cmp(engine.HalfBaseFieldOrder()) >= 0
}

// fp2SignBit applies the §4.B Fp2 sign rule: examine y.c1 first; if it is
// zero, fall back to the Fp rule on y.c0.
func fp2SignBit(y *engine.Fp2) bool {
	if y.A1.IsZero() {
		return fpCoordSignBit(&y.A0)
	}
	return fpCoordSignBit(&y.A1)
}

// SerializeCompressed writes sig's 96-byte compressed Zcash encoding to
// dst. The Fp2 x coordinate packs x.c1 into the first 48 bytes (carrying
// the metadata bits) and x.c0 into the second 48 bytes (spec.md §4.B).
func (sig Signature) SerializeCompressed(dst *[SignatureSize]byte) Status {
	var out [SignatureSize]byte
	if sig.IsZero() {
		out[0] = bitCompressed | bitInfinity
		*dst = out
		return StatusSuccess
	}

	c1Big, c0Big := new(big.Int), new(big.Int)
	sig.point.X.A1.BigInt(c1Big)
	sig.point.X.A0.BigInt(c0Big)
	copy(out[:PublicKeySize], c1Big.FillBytes(make([]byte, PublicKeySize)))
	copy(out[PublicKeySize:], c0Big.FillBytes(make([]byte, PublicKeySize)))

	sortBit := byte(0)
	if fp2SignBit(&sig.point.Y) {
		sortBit = bitSort
	}
	out[0] |= bitCompressed | sortBit
	*dst = out
	return StatusSuccess
}

// deserializeG2Compressed mirrors deserializeG1Compressed over Fp2; the two
// are kept as separate, parallel implementations rather than unified under
// one generic function (spec.md §9 sanctions "duplication kept in sync by
// tests" as one of the three acceptable strategies, alongside compile-time
// generics and tagged dispatch) because the Fp2 sign rule and two-limb x
// packing do not collapse cleanly into the single-coordinate Fp path.
func deserializeG2Compressed(src [SignatureSize]byte) (engine.G2, Status) {
	var zero engine.G2

	if src[0]&bitCompressed == 0 {
		return zero, StatusInvalidEncoding
	}
	if src[0]&bitInfinity != 0 {
		// Every other bit of byte 0 besides C (required set) and I (just
		// checked set) — i.e. the sort bit and the non-metadata x bits —
		// and every subsequent byte must be zero.
		if src[0]&(metadataMask&^bitInfinity&^bitCompressed) != 0 || src[0]&^metadataMask != 0 || !allZero(src[1:]) {
			return zero, StatusInvalidEncoding
		}
		return zero, StatusPointAtInfinity
	}

	maskedC1 := src[:PublicKeySize]
	c1Buf := make([]byte, PublicKeySize)
	copy(c1Buf, maskedC1)
	c1Buf[0] &^= metadataMask
	c1 := new(big.Int).SetBytes(c1Buf)
	c0 := new(big.Int).SetBytes(src[PublicKeySize:])

	if c1.Cmp(engine.BaseFieldOrder) >= 0 || c0.Cmp(engine.BaseFieldOrder) >= 0 {
		return zero, StatusCoordinateGreaterOrEqualThanModulus
	}

	var x, rhs, y engine.Fp2
	x.A1.SetBigInt(c1)
	x.A0.SetBigInt(c0)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, &g2B)

	ySqrt := new(engine.Fp2).Sqrt(&rhs)
	if ySqrt == nil {
		return zero, StatusPointNotOnCurve
	}
	y = *ySqrt

	computedLargest := fp2SignBit(&y)
	wantedLargest := src[0]&bitSort != 0

	negY := engine.NegFp2(&y)
	engine.CmovFp2(&y, &negY, computedLargest != wantedLargest)

	var p engine.G2
	p.X, p.Y = x, y
	return p, StatusSuccess
}

// DeserializeSignatureCompressedUnchecked decodes src without a subgroup
// check; callers MUST establish subgroup membership separately before using
// the result with Verify/AggregateVerify/FastAggregateVerify (spec.md §4.B,
// §9).
func DeserializeSignatureCompressedUnchecked(src [SignatureSize]byte) (Signature, Status) {
	p, st := deserializeG2Compressed(src)
	return Signature{point: p}, st
}

// DeserializeSignatureCompressed runs the unchecked decode and additionally
// requires subgroup membership (spec.md §4.B "Deserialize (checked)").
func DeserializeSignatureCompressed(src [SignatureSize]byte) (Signature, Status) {
	p, st := deserializeG2Compressed(src)
	if st != StatusSuccess {
		return Signature{point: p}, st
	}
	if !p.IsInSubGroup() {
		return Signature{}, StatusPointNotInSubgroup
	}
	return Signature{point: p}, StatusSuccess
}
