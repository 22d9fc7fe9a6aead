/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

package ctteth

// Compressed (Zcash) encoding metadata bits, packed into the three
// most-significant bits of the first output byte (spec.md §4.B).
const (
	bitCompressed byte = 1 << 7 // C: must be 1 for this codec
	bitInfinity   byte = 1 << 6 // I: point-at-infinity flag
	bitSort       byte = 1 << 5 // S: sign of y
	metadataMask  byte = bitCompressed | bitInfinity | bitSort
)

// allZero reports whether every byte of b is zero. Used to validate the
// "every other bit of byte 0 AND every subsequent byte must be 0" rule for
// infinity encodings (spec.md §4.B step 2).
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
