package textenc

import "errors"

// ErrUndecodable reports input that is not valid text in any of the
// supported encodings.
var ErrUndecodable = errors.New("undecodable text")
