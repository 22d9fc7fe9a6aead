/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

// Package engine adapts github.com/consensys/gnark-crypto's BLS12-381
// implementation to the minimal "external collaborator" interfaces
// described by the core specification: scalar field Fr, base/twist fields
// Fp/Fp2, curves G1/G2, hash-to-curve, and the pairing engine. Nothing in
// the rest of this module imports gnark-crypto directly — it only talks to
// this package, so the collaborator can be swapped without touching the
// BLS protocol logic.
package engine

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

type (
	// G1 is an affine point on E(Fp), the curve public keys live on.
	G1 = bls12381.G1Affine
	// G2 is an affine point on E'(Fp2), the twist signatures live on.
	G2 = bls12381.G2Affine
	// Fp2 is the quadratic extension field G2 coordinates live in.
	Fp2 = bls12381.E2
	// FpElement is the BLS12-381 base field.
	FpElement = fp.Element
	// FrElement is the BLS12-381 scalar field, order r.
	FrElement = fr.Element
)

var (
	// ScalarFieldOrder is r, the shared order of G1 and G2.
	ScalarFieldOrder = fr.Modulus()
	// BaseFieldOrder is p, the BLS12-381 base field modulus.
	BaseFieldOrder = fp.Modulus()

	g1Gen, g2Gen       = generators()
	negG1Gen           = negateG1(g1Gen)
	halfBaseFieldOrder = new(big.Int).Rsh(new(big.Int).Add(BaseFieldOrder, big.NewInt(1)), 1)
)

func generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}

func negateG1(p G1) G1 {
	var n G1
	n.Neg(&p)
	return n
}

// G1Generator returns the canonical BLS12-381 G1 generator.
func G1Generator() G1 { return g1Gen }

// G2Generator returns the canonical BLS12-381 G2 generator.
func G2Generator() G2 { return g2Gen }

// NegG1Generator returns -G1Generator, used by the two-pairing verification
// form e(-G1, sig) . e(pk, Q) == 1.
func NegG1Generator() G1 { return negG1Gen }

// HalfBaseFieldOrder is (p+1)/2, the threshold the sign-of-y predicate
// compares a y-coordinate's integer value against (spec "lexicographically
// largest root" rule).
func HalfBaseFieldOrder() *big.Int { return halfBaseFieldOrder }

// G1ScalarMul returns [s] * base.
func G1ScalarMul(base *G1, s *big.Int) G1 {
	var p G1
	p.ScalarMultiplication(base, s)
	return p
}

// G1ScalarMulGenerator returns [s] * G1Generator.
func G1ScalarMulGenerator(s *big.Int) G1 {
	return G1ScalarMul(&g1Gen, s)
}

// G2ScalarMul returns [s] * base.
func G2ScalarMul(base *G2, s *big.Int) G2 {
	var p G2
	p.ScalarMultiplication(base, s)
	return p
}

// G1Add returns a + b using the curve's mixed/affine addition law.
func G1Add(a, b *G1) G1 {
	var r G1
	r.Add(a, b)
	return r
}

// G2Add returns a + b using the twist's mixed/affine addition law.
func G2Add(a, b *G2) G2 {
	var r G2
	r.Add(a, b)
	return r
}

// IsInfinityG1 reports whether p is the G1 neutral element. gnark-crypto
// represents the affine point at infinity as the (0, 0) coordinate pair.
func IsInfinityG1(p *G1) bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// IsInfinityG2 reports whether p is the G2 neutral element.
func IsInfinityG2(p *G2) bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// HashToG2 maps msg to a G2 point via expand_message_xmd(SHA-256) feeding
// the SSWU map and cofactor clearing, per the ciphersuite's hash-to-curve
// suite.
func HashToG2(msg []byte, dst string) (G2, error) {
	return bls12381.HashToG2(msg, []byte(dst))
}

// PairingCheck returns whether the product of pairings Π e(ps[i], qs[i])
// equals 1 in GT, using gnark-crypto's multi-Miller-loop + single final
// exponentiation optimization.
func PairingCheck(ps []G1, qs []G2) (bool, error) {
	return bls12381.PairingCheck(ps, qs)
}
