package charset

import "errors"

// ErrInvalidCharCode is returned (wrapped) when a constructor is given a
// code point outside of [0, MaxCodePoint].
var ErrInvalidCharCode = errors.New("invalid character code")
