/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

import (
	"github.com/mratsim/constantine-eth-bls/internal/engine"
	"github.com/mratsim/constantine-eth-bls/internal/prf"
	"github.com/mratsim/constantine-eth-bls/logger"
)

// BatchVerifyTriplet is one independent (pubkey, message, signature) triplet
// in an array-of-structs batch verify call (spec.md §4.F).
type BatchVerifyTriplet struct {
	Pubkey    PublicKey
	Message   []byte
	Signature Signature
}

// BatchAccumulator streams triplets into a single multi-pairing batch
// verification, mirroring the teacher's alloc/init/update/finalVerify
// accumulator (spec.md §5 "Long batch verifies may be segmented by the
// caller"). Unlike the teacher it needs no separate allocate/free step:
// NewBatchAccumulator plus Go's garbage collection replace the C ABI's
// opaque-pointer lifetime management.
type BatchAccumulator struct {
	secureRandomBytes [32]byte
	sigSum            engine.G2
	scaledPubkeys     []engine.G1
	hashedMessages    []engine.G2
	index             uint64
	failed            bool
}

// NewBatchAccumulator initializes a streaming accumulator keyed by
// secureRandomBytes, a fresh 32 bytes of caller-supplied randomness
// (spec.md §4.F step 3).
func NewBatchAccumulator(secureRandomBytes [32]byte) *BatchAccumulator {
	return &BatchAccumulator{secureRandomBytes: secureRandomBytes}
}

// Update folds one more (pubkey, message, signature) triplet into the
// accumulator. It returns false immediately, without mutating the running
// sums further, when pub or sig is the neutral element (spec.md §4.F step
// 2) — the same "mistakenly zero-init pubkey/signature" guard the teacher
// applies before accepting a triplet into the accumulator.
func (acc *BatchAccumulator) Update(pub PublicKey, message []byte, sig Signature) bool {
	if pub.IsZero() || sig.IsZero() {
		acc.failed = true
		l := logger.Logger()
		l.Warn().Uint64("index", acc.index).Msg("batch accumulator: triplet has a point-at-infinity pubkey or signature")
		return false
	}

	transcript := batchTranscript(pub, message, sig)
	c, err := prf.DeriveCoefficient(acc.secureRandomBytes, transcript, acc.index)
	acc.index++
	if err != nil {
		acc.failed = true
		return false
	}

	q, err := engine.HashToG2(message, DST)
	if err != nil {
		acc.failed = true
		return false
	}

	scaledSig := engine.G2ScalarMul(&sig.point, c)
	acc.sigSum = engine.G2Add(&acc.sigSum, &scaledSig)
	acc.scaledPubkeys = append(acc.scaledPubkeys, engine.G1ScalarMul(&pub.point, c))
	acc.hashedMessages = append(acc.hashedMessages, q)
	return true
}

// FinalVerify closes the batch: checks
// e(-G1, Sum [c_i] sig_i) . Prod_i e([c_i] pk_i, Q_i) == 1 (spec.md §4.F
// step 4). It returns false if any prior Update call failed.
func (acc *BatchAccumulator) FinalVerify() bool {
	if acc.failed || len(acc.scaledPubkeys) == 0 {
		return false
	}
	ps := make([]engine.G1, 0, len(acc.scaledPubkeys)+1)
	qs := make([]engine.G2, 0, len(acc.hashedMessages)+1)
	ps = append(ps, engine.NegG1Generator())
	qs = append(qs, acc.sigSum)
	ps = append(ps, acc.scaledPubkeys...)
	qs = append(qs, acc.hashedMessages...)

	ok, err := engine.PairingCheck(ps, qs)
	return err == nil && ok
}

// batchTranscript binds a coefficient's PRF input to the full triplet, so
// coefficients cannot be predicted from the secureRandomBytes seed alone
// without also knowing the triplet (spec.md §4.F step 3).
func batchTranscript(pub PublicKey, message []byte, sig Signature) []byte {
	var pubBytes [PublicKeySize]byte
	var sigBytes [SignatureSize]byte
	_ = pub.SerializeCompressed(&pubBytes)
	_ = sig.SerializeCompressed(&sigBytes)

	out := make([]byte, 0, PublicKeySize+SignatureSize+len(message))
	out = append(out, pubBytes[:]...)
	out = append(out, sigBytes[:]...)
	out = append(out, message...)
	return out
}

// BatchVerifySoA verifies n independent triplets given as parallel slices
// (struct-of-arrays layout) with one multi-pairing (spec.md §4.F).
func BatchVerifySoA(pubkeys []PublicKey, messages [][]byte, signatures []Signature, secureRandomBytes [32]byte) Status {
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return StatusInconsistentLengthsOfInputs
	}
	for i := range pubkeys {
		if pubkeys[i].IsZero() || signatures[i].IsZero() {
			return StatusPointAtInfinity
		}
	}

	acc := NewBatchAccumulator(secureRandomBytes)
	for i := range pubkeys {
		if !acc.Update(pubkeys[i], messages[i], signatures[i]) {
			return StatusVerificationFailure
		}
	}
	if !acc.FinalVerify() {
		return StatusVerificationFailure
	}
	return StatusSuccess
}

// BatchVerifyAoS is BatchVerifySoA over an array-of-structs triplet slice.
func BatchVerifyAoS(triplets []BatchVerifyTriplet, secureRandomBytes [32]byte) Status {
	if len(triplets) == 0 {
		return StatusZeroLengthAggregation
	}
	for i := range triplets {
		if triplets[i].Pubkey.IsZero() || triplets[i].Signature.IsZero() {
			return StatusPointAtInfinity
		}
	}

	acc := NewBatchAccumulator(secureRandomBytes)
	for i := range triplets {
		if !acc.Update(triplets[i].Pubkey, triplets[i].Message, triplets[i].Signature) {
			return StatusVerificationFailure
		}
	}
	if !acc.FinalVerify() {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
