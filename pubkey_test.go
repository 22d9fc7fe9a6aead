/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import (
	"testing"

	"github.com/mratsim/constantine-eth-bls/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestDeserializePubkeyInfinity(t *testing.T) {
	var src [PublicKeySize]byte
	src[0] = bitCompressed | bitInfinity
	pub, st := DeserializePubkeyCompressed(src)
	require.Equal(t, StatusPointAtInfinity, st)
	require.True(t, pub.IsZero())
}

func TestDeserializePubkeyMissingCompressedBit(t *testing.T) {
	var src [PublicKeySize]byte
	_, st := DeserializePubkeyCompressed(src)
	require.Equal(t, StatusInvalidEncoding, st)
}

func TestDeserializePubkeyCoordinateGreaterOrEqualModulus(t *testing.T) {
	var src [PublicKeySize]byte
	copy(src[:], mustDecodeHex(t, baseFieldOrderHex))
	src[0] |= bitCompressed
	_, st := DeserializePubkeyCompressed(src)
	require.Equal(t, StatusCoordinateGreaterOrEqualThanModulus, st)
}

func TestPubkeyRoundTripFromDerivedKey(t *testing.T) {
	var src [SecretKeySize]byte
	src[SecretKeySize-1] = 42
	sk, st := DeserializeSecretKey(src)
	require.Equal(t, StatusSuccess, st)

	pub, st := sk.DerivePublicKey()
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, StatusSuccess, pub.Validate())

	var out [PublicKeySize]byte
	require.Equal(t, StatusSuccess, pub.SerializeCompressed(&out))

	decoded, st := DeserializePubkeyCompressed(out)
	require.Equal(t, StatusSuccess, st)
	require.True(t, pub.AreEqual(decoded))

	// sign-of-y predicate: byte0 bit 5 set iff y >= (p+1)/2 (spec.md §8 item 5).
	wantSortBit := fpCoordSignBit(&pub.point.Y)

	unchecked, st := DeserializePubkeyCompressedUnchecked(out)
	require.Equal(t, StatusSuccess, st)
	require.True(t, decoded.AreEqual(unchecked))
	require.Equal(t, wantSortBit, out[0]&bitSort != 0)
}

func TestPubkeyNotInSubgroupRejected(t *testing.T) {
	// x=0 solves y^2 = x^3 + 4 trivially (y=2), landing on a low-order
	// point of E(Fp) that is on-curve but, with overwhelming probability
	// given the curve's large cofactor, outside the prime-order G1
	// subgroup — the classic "small subgroup" footgun spec.md §9 warns
	// implementers about.
	var y engine.FpElement
	y.SetUint64(2)
	p := engine.G1{Y: y}
	require.True(t, p.IsOnCurve())
	require.False(t, p.IsInSubGroup())

	pub := PublicKey{point: p}
	require.Equal(t, StatusPointNotInSubgroup, pub.Validate())

	var encoded [PublicKeySize]byte
	require.Equal(t, StatusSuccess, pub.SerializeCompressed(&encoded))
	_, st := DeserializePubkeyCompressed(encoded)
	require.Equal(t, StatusPointNotInSubgroup, st)
}
