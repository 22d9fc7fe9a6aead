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

// PublicKey wraps an affine point P in G1, the prime-order subgroup of
// E(Fp): y^2 = x^3 + 4 (spec.md §3). The zero value is the point at
// infinity, which is only a valid PublicKey when explicitly representing
// an aggregation neutral element (spec.md §3, §4.D).
type PublicKey struct {
	point engine.G1
}

// g1B is the BLS12-381 G1 short-Weierstrass curve coefficient: y^2 = x^3 + 4.
var g1B = func() engine.FpElement {
	var b engine.FpElement
	b.SetUint64(4)
	return b
}()

// IsZero reports whether pub is the G1 neutral element.
func (pub PublicKey) IsZero() bool {
	return engine.IsInfinityG1(&pub.point)
}

// AreEqual reports whether pub and other encode the same G1 point.
func (pub PublicKey) AreEqual(other PublicKey) bool {
	return pub.point.Equal(&other.point)
}

// Validate runs validate_pubkey (spec.md §4.A): PointAtInfinity on the
// neutral element, PointNotOnCurve when y^2 != x^3+4, PointNotInSubgroup
// when [r]P != O, else Success. The subgroup check is the expensive step
// and may be amortised by callers who cache its result per point.
func (pub PublicKey) Validate() Status {
	if pub.IsZero() {
		return StatusPointAtInfinity
	}
	if !pub.point.IsOnCurve() {
		return StatusPointNotOnCurve
	}
	if !pub.point.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}

// SerializeCompressed writes pub's 48-byte compressed Zcash encoding to dst
// (spec.md §4.B).
func (pub PublicKey) SerializeCompressed(dst *[PublicKeySize]byte) Status {
	var out [PublicKeySize]byte
	if pub.IsZero() {
		out[0] = bitCompressed | bitInfinity
		*dst = out
		return StatusSuccess
	}

	xBig := new(big.Int)
	pub.point.X.BigInt(xBig)
	xBytes := xBig.FillBytes(make([]byte, PublicKeySize))
	copy(out[:], xBytes)

	yBig := new(big.Int)
	pub.point.Y.BigInt(yBig)
	sortBit := byte(0)
	if yBig.Cmp(engine.HalfBaseFieldOrder()) >= 0 {
		sortBit = bitSort
	}
	out[0] |= bitCompressed | sortBit
	*dst = out
	return StatusSuccess
}

// deserializeG1Compressed implements spec.md §4.B's unchecked-deserialize
// algorithm for G1. It returns StatusPointAtInfinity (not an error) on a
// well-formed infinity encoding, matching the contract that callers decide
// whether infinity is acceptable.
func deserializeG1Compressed(src [PublicKeySize]byte) (engine.G1, Status) {
	var zero engine.G1

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

	masked := src
	masked[0] &^= metadataMask
	t := new(big.Int).SetBytes(masked[:])
	if t.Cmp(engine.BaseFieldOrder) >= 0 {
		return zero, StatusCoordinateGreaterOrEqualThanModulus
	}

	var x, rhs, y engine.FpElement
	x.SetBigInt(t)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, &g1B)

	ySqrt := new(engine.FpElement).Sqrt(&rhs)
	if ySqrt == nil {
		return zero, StatusPointNotOnCurve
	}
	y = *ySqrt

	yBig := new(big.Int)
	y.BigInt(yBig)
	computedLargest := yBig.Cmp(engine.HalfBaseFieldOrder()) >= 0
	wantedLargest := src[0]&bitSort != 0

	negY := engine.NegFp(&y)
	engine.CmovFp(&y, &negY, computedLargest != wantedLargest)

	var p engine.G1
	p.X, p.Y = x, y
	return p, StatusSuccess
}

// DeserializePubkeyCompressedUnchecked runs the unchecked decode only: it does
// not perform the subgroup check, so callers MUST NOT feed its output to
// Verify/AggregateVerify/FastAggregateVerify unless the subgroup has been
// separately established (spec.md §4.B, §9).
func DeserializePubkeyCompressedUnchecked(src [PublicKeySize]byte) (PublicKey, Status) {
	p, st := deserializeG1Compressed(src)
	return PublicKey{point: p}, st
}

// DeserializePubkeyCompressed runs the unchecked decode and additionally requires
// the point be in the G1 subgroup (spec.md §4.B "Deserialize (checked)").
func DeserializePubkeyCompressed(src [PublicKeySize]byte) (PublicKey, Status) {
	p, st := deserializeG1Compressed(src)
	if st != StatusSuccess {
		return PublicKey{point: p}, st
	}
	if !p.IsInSubGroup() {
		return PublicKey{}, StatusPointNotInSubgroup
	}
	return PublicKey{point: p}, StatusSuccess
}
