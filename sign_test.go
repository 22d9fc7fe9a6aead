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

func testSecretKey(t *testing.T, last byte) SecretKey {
	t.Helper()
	var b [SecretKeySize]byte
	b[SecretKeySize-1] = last
	sk, st := DeserializeSecretKey(b)
	require.Equal(t, StatusSuccess, st)
	return sk
}

func TestSignVerifyRoundTrip(t *testing.T) {
	sk := testSecretKey(t, 123)
	pub, st := sk.DerivePublicKey()
	require.Equal(t, StatusSuccess, st)

	msg := []byte("abc")
	sig, st := sk.Sign(msg)
	require.Equal(t, StatusSuccess, st)

	require.Equal(t, StatusSuccess, pub.Verify(msg, sig))
	require.Equal(t, StatusVerificationFailure, pub.Verify([]byte("def"), sig))
}

func TestSignOnInvalidKeyYieldsNeutralSignature(t *testing.T) {
	var sk SecretKey // zero value: s == 0, invalid
	sig, st := sk.Sign([]byte("abc"))
	require.Equal(t, StatusZeroSecretKey, st)
	require.True(t, sig.IsZero())

	pub, st := sk.DerivePublicKey()
	require.Equal(t, StatusZeroSecretKey, st)
	require.True(t, pub.IsZero())
}

func TestVerifyRejectsInfinityInputs(t *testing.T) {
	sk := testSecretKey(t, 1)
	pub, _ := sk.DerivePublicKey()
	msg := []byte("abc")
	sig, _ := sk.Sign(msg)

	require.Equal(t, StatusPointAtInfinity, PublicKey{}.Verify(msg, sig))
	require.Equal(t, StatusPointAtInfinity, pub.Verify(msg, Signature{}))
}

// TestVerifyEquivalentToFastAggregateVerifySingleKey is spec.md §8 item 3:
// verify(pk, m, sig) == Success iff fast_aggregate_verify([pk], m, sig) == Success.
func TestVerifyEquivalentToFastAggregateVerifySingleKey(t *testing.T) {
	sk := testSecretKey(t, 55)
	pub, _ := sk.DerivePublicKey()
	msg := []byte("abc")
	sig, _ := sk.Sign(msg)

	require.Equal(t, pub.Verify(msg, sig), FastAggregateVerify([]PublicKey{pub}, msg, sig))

	wrongMsg := []byte("xyz")
	require.Equal(t, pub.Verify(wrongMsg, sig), FastAggregateVerify([]PublicKey{pub}, wrongMsg, sig))
}
