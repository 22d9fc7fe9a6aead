/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import (
	"github.com/mratsim/constantine-eth-bls/internal/engine"
)

// DerivePublicKey computes pk = [sk] * G1Generator (spec.md §4.C).
// Precondition: sk.Validate() == Success; on an invalid key the zero
// PublicKey (point at infinity) is returned alongside the validation
// status.
func (sk SecretKey) DerivePublicKey() (PublicKey, Status) {
	if st := sk.Validate(); st != StatusSuccess {
		return PublicKey{}, st
	}
	return PublicKey{point: engine.G1ScalarMulGenerator(sk.scalar())}, StatusSuccess
}

// Sign computes sig = [sk] * hash_to_G2(msg, DST) (spec.md §4.C). On an
// invalid secret key the signature is set to the neutral element and the
// key's validation status is surfaced (spec.md §7 "signature buffer set to
// neutral" error path).
func (sk SecretKey) Sign(msg []byte) (Signature, Status) {
	if st := sk.Validate(); st != StatusSuccess {
		return Signature{}, st
	}
	q, err := engine.HashToG2(msg, DST)
	if err != nil {
		return Signature{}, StatusInvalidEncoding
	}
	return Signature{point: engine.G2ScalarMul(&q, sk.scalar())}, StatusSuccess
}

// Verify checks e(G1Generator, sig) == e(pk, hash_to_G2(msg, DST)) via the
// standard two-pairing form e(-G1, sig) . e(pk, Q) == 1 (spec.md §4.C). pk
// and sig are assumed on-curve and subgroup-checked by the caller's prior
// use of Validate, DeserializePubkeyCompressed or
// DeserializeSignatureCompressed (spec.md §4.C, §9); Verify does not
// repeat the subgroup check.
func (pk PublicKey) Verify(msg []byte, sig Signature) Status {
	if pk.IsZero() || sig.IsZero() {
		return StatusPointAtInfinity
	}
	q, err := engine.HashToG2(msg, DST)
	if err != nil {
		return StatusInvalidEncoding
	}
	negG1 := engine.NegG1Generator()
	ok, err := engine.PairingCheck([]engine.G1{negG1, pk.point}, []engine.G2{sig.point, q})
	if err != nil || !ok {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
