/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeserializeSignatureInfinity(t *testing.T) {
	var src [SignatureSize]byte
	src[0] = bitCompressed | bitInfinity
	sig, st := DeserializeSignatureCompressed(src)
	require.Equal(t, StatusPointAtInfinity, st)
	require.True(t, sig.IsZero())
}

func TestDeserializeSignatureMissingCompressedBit(t *testing.T) {
	var src [SignatureSize]byte
	_, st := DeserializeSignatureCompressed(src)
	require.Equal(t, StatusInvalidEncoding, st)
}

func TestDeserializeSignatureCoordinateGreaterOrEqualModulus(t *testing.T) {
	var src [SignatureSize]byte
	copy(src[:PublicKeySize], mustDecodeHex(t, baseFieldOrderHex))
	src[0] |= bitCompressed
	_, st := DeserializeSignatureCompressed(src)
	require.Equal(t, StatusCoordinateGreaterOrEqualThanModulus, st)
}

func TestSignatureRoundTripFromSign(t *testing.T) {
	var skBytes [SecretKeySize]byte
	skBytes[SecretKeySize-1] = 99
	sk, st := DeserializeSecretKey(skBytes)
	require.Equal(t, StatusSuccess, st)

	sig, st := sk.Sign([]byte("abc"))
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, StatusSuccess, sig.Validate())

	var out [SignatureSize]byte
	require.Equal(t, StatusSuccess, sig.SerializeCompressed(&out))

	decoded, st := DeserializeSignatureCompressed(out)
	require.Equal(t, StatusSuccess, st)
	require.True(t, sig.AreEqual(decoded))
}

func TestVerifyNegativeOnBitFlip(t *testing.T) {
	var skBytes [SecretKeySize]byte
	skBytes[SecretKeySize-1] = 7
	sk, _ := DeserializeSecretKey(skBytes)
	pub, _ := sk.DerivePublicKey()
	msg := []byte("abc")
	sig, _ := sk.Sign(msg)

	require.Equal(t, StatusSuccess, pub.Verify(msg, sig))

	var encoded [SignatureSize]byte
	require.Equal(t, StatusSuccess, sig.SerializeCompressed(&encoded))
	encoded[SignatureSize-1] ^= 0x01

	flipped, st := DeserializeSignatureCompressed(encoded)
	if st != StatusSuccess {
		// Flipping the lowest bit of a valid encoding can itself produce
		// an invalid encoding (e.g. a non-residue x); either outcome
		// demonstrates the bit flip broke the signature.
		return
	}
	require.Equal(t, StatusVerificationFailure, pub.Verify(msg, flipped))
}
