/** constantine-eth-bls
 *  Licensed and distributed under either of
 *    * MIT license (license terms in the root directory or at http://opensource.org/licenses/MIT).
 *    * Apache v2 license (license terms in the root directory or at http://www.apache.org/licenses/LICENSE-2.0).
 *  at your option. This file may not be copied, modified, or distributed except according to those terms.
 */

// Package logger provides a configurable logger shared by this module's
// packages, grounded on the teacher pack's own logger.go (Consensys-gnark's
// logger package): a github.com/rs/zerolog root logger, quiet by default
// under `go test`, overridable by a caller that wants its own sink.
//
// The cryptographic core itself never logs on the hot path. Its one log
// call is a warning from BatchAccumulator.Update when a triplet carries a
// point-at-infinity pubkey or signature; Verify, AggregateVerify and
// FastAggregateVerify do not log.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput redirects the package logger's sink.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set overrides the package logger entirely.
func Set(l zerolog.Logger) {
	log = l
}

// Disable silences the package logger.
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the shared logger for a component to derive a sublogger
// from, e.g. logger.Logger().With().Str("component", "batch_verify").Logger().
func Logger() zerolog.Logger {
	return log
}
