package m6809

import "errors"

// Sentinel errors for the three recoverable CPU fault conditions named in
// §7. None of these are ever panicked across the CPU↔Scheduler boundary;
// they are returned from Step/Run alongside the matching Event bit, and
// checked by callers with errors.Is, not by inspecting message text.
var (
	ErrInvalidInstruction              = errors.New("m6809: invalid instruction")
	ErrInvalidPostbyte                 = errors.New("m6809: invalid indexed postbyte")
	ErrInvalidExchangeTransferRegister = errors.New("m6809: invalid TFR/EXG register")
)
