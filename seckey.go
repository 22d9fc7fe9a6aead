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

// SecretKey wraps a scalar s in Fr, the BLS12-381 scalar field, stored as
// its canonical 32-byte big-endian encoding (spec.md §3). The zero value is
// the implementation-private "uninitialised" state; a SecretKey only
// becomes meaningful once DeserializeSecretKey succeeds.
// The single field sits at offset 0, keeping the teacher's ABI discipline
// even though this rebuild has no FFI boundary of its own (spec.md §9).
type SecretKey struct {
	b [SecretKeySize]byte
}

// Clear zeroises the secret key's backing bytes. Callers owning a SecretKey
// past its useful lifetime MUST call this (spec.md §5 "Secret-data
// lifetime"); the standard library gives no stronger guarantee than
// overwriting the bytes, which is what this does.
func (sk *SecretKey) Clear() {
	for i := range sk.b {
		sk.b[i] = 0
	}
}

// Validate runs validate_seckey (spec.md §4.A): ZeroSecretKey when s == 0,
// SecretKeyLargerThanCurveOrder when s >= r, else Success.
func (sk SecretKey) Validate() Status {
	s := new(big.Int).SetBytes(sk.b[:])
	if s.Sign() == 0 {
		return StatusZeroSecretKey
	}
	if s.Cmp(engine.ScalarFieldOrder) >= 0 {
		return StatusSecretKeyLargerThanCurveOrder
	}
	return StatusSuccess
}

// Serialize writes sk's canonical big-endian encoding to dst.
func (sk SecretKey) Serialize(dst *[SecretKeySize]byte) Status {
	if st := sk.Validate(); st != StatusSuccess {
		return st
	}
	*dst = sk.b
	return StatusSuccess
}

// DeserializeSecretKey decodes src as a big-endian scalar and validates it
// (spec.md §4.B "SecretKey codec is straight big-endian marshal/unmarshal
// followed by validate_seckey"). On any failure the destination is
// zeroised before returning, per spec.md §7.
func DeserializeSecretKey(src [SecretKeySize]byte) (SecretKey, Status) {
	sk := SecretKey{b: src}
	if st := sk.Validate(); st != StatusSuccess {
		sk.Clear()
		return SecretKey{}, st
	}
	return sk, StatusSuccess
}

// scalar returns sk's value as a big.Int, for internal use by operations
// that need to feed the scalar into the engine's scalar-multiplication.
// Precondition: sk.Validate() == Success.
func (sk SecretKey) scalar() *big.Int {
	return new(big.Int).SetBytes(sk.b[:])
}
