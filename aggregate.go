/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import "github.com/mratsim/constantine-eth-bls/internal/engine"

// AggregatePubkeysUnstable sums pubkeys on G1, returning the neutral
// element on an empty slice without an error return — the C ABI's
// aggregate_pubkeys_unstable_api contract, preserved verbatim for callers
// porting code that depends on it (spec.md §4.D, §9).
func AggregatePubkeysUnstable(pubkeys []PublicKey) PublicKey {
	var agg engine.G1 // zero value is the G1 neutral element
	for i := range pubkeys {
		agg = engine.G1Add(&agg, &pubkeys[i].point)
	}
	return PublicKey{point: agg}
}

// AggregatePubkeys is the status-returning promotion of
// AggregatePubkeysUnstable: ZeroLengthAggregation on an empty slice instead
// of a silent neutral element. This resolves the Open Question spec.md §9
// raises about the unstable aggregation API (see DESIGN.md).
func AggregatePubkeys(pubkeys []PublicKey) (PublicKey, Status) {
	if len(pubkeys) == 0 {
		return PublicKey{}, StatusZeroLengthAggregation
	}
	return AggregatePubkeysUnstable(pubkeys), StatusSuccess
}

// AggregateSignaturesUnstable sums signatures on G2, returning the neutral
// element on an empty slice (spec.md §4.D, §9).
func AggregateSignaturesUnstable(signatures []Signature) Signature {
	var agg engine.G2
	for i := range signatures {
		agg = engine.G2Add(&agg, &signatures[i].point)
	}
	return Signature{point: agg}
}

// AggregateSignatures is the status-returning promotion of
// AggregateSignaturesUnstable.
func AggregateSignatures(signatures []Signature) (Signature, Status) {
	if len(signatures) == 0 {
		return Signature{}, StatusZeroLengthAggregation
	}
	return AggregateSignaturesUnstable(signatures), StatusSuccess
}
