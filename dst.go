/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

// DST is the domain separation tag for the Proof-of-Possession ciphersuite
// this package implements exclusively (spec.md §1, §4.C). Every hash-to-curve
// call in this package is fixed to this tag; the augmentation string is
// empty, as required by the PoP ciphersuite.
const DST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

// hashToCurveSecurityBits records the ciphersuite's fixed security
// parameter for expand_message_xmd. It is not passed anywhere:
// engine.HashToG2 takes only the message and the DST.
const hashToCurveSecurityBits = 128

const (
	// SecretKeySize is the fixed big-endian encoding width of a SecretKey.
	SecretKeySize = 32
	// PublicKeySize is the fixed compressed (Zcash) encoding width of a
	// PublicKey, a G1 point.
	PublicKeySize = 48
	// SignatureSize is the fixed compressed (Zcash) encoding width of a
	// Signature, a G2 point.
	SignatureSize = 96
)
