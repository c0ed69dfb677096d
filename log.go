package bigint

import "github.com/decred/slog"

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
//
// The engine only logs at trace level, for rarely taken paths such as the
// add-back correction in long division and the even-modulus path of ModPow.
func UseLogger(logger slog.Logger) {
	log = logger
}
