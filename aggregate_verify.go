/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import "github.com/mratsim/constantine-eth-bls/internal/engine"

// FastAggregateVerify verifies one message against many keys and a single
// aggregated signature (spec.md §4.E): apk = Sum(pks), then checks
// e(-G1, agg_sig) . e(apk, Q) == 1 where Q = hash_to_G2(msg, DST).
func FastAggregateVerify(pubkeys []PublicKey, msg []byte, aggSig Signature) Status {
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	for i := range pubkeys {
		if pubkeys[i].IsZero() {
			return StatusPointAtInfinity
		}
	}
	if aggSig.IsZero() {
		return StatusPointAtInfinity
	}

	apk := AggregatePubkeysUnstable(pubkeys)

	q, err := engine.HashToG2(msg, DST)
	if err != nil {
		return StatusInvalidEncoding
	}
	negG1 := engine.NegG1Generator()
	ok, err := engine.PairingCheck([]engine.G1{negG1, apk.point}, []engine.G2{aggSig.point, q})
	if err != nil || !ok {
		return StatusVerificationFailure
	}
	return StatusSuccess
}

// AggregateVerify verifies many (pubkey, distinct message) pairs against a
// single aggregated signature (spec.md §4.E):
// e(-G1, agg_sig) . Prod_i e(pks[i], hash_to_G2(msgs[i], DST)) == 1.
//
// Callers MUST enforce uniqueness of msgs, or rely on Proof-of-Possession
// at the protocol layer, to avoid rogue-key and split-zero attacks; this
// function does not and cannot check that on its own (spec.md §4.E).
func AggregateVerify(pubkeys []PublicKey, msgs [][]byte, aggSig Signature) Status {
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	if len(pubkeys) != len(msgs) {
		return StatusInconsistentLengthsOfInputs
	}
	if aggSig.IsZero() {
		return StatusPointAtInfinity
	}
	for i := range pubkeys {
		if pubkeys[i].IsZero() {
			return StatusPointAtInfinity
		}
	}

	ps := make([]engine.G1, 0, len(pubkeys)+1)
	qs := make([]engine.G2, 0, len(pubkeys)+1)
	ps = append(ps, engine.NegG1Generator())
	qs = append(qs, aggSig.point)
	for i := range pubkeys {
		q, err := engine.HashToG2(msgs[i], DST)
		if err != nil {
			return StatusInvalidEncoding
		}
		ps = append(ps, pubkeys[i].point)
		qs = append(qs, q)
	}

	ok, err := engine.PairingCheck(ps, qs)
	if err != nil || !ok {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
