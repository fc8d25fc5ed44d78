package engine

import "errors"

// ErrConfiguration marks fatal activation errors: invalid options or a
// missing measurement source. No partial engine is constructed when it is
// returned. Malformed runtime input (a bad pointer sample) is never an error;
// the offending event is dropped instead
var ErrConfiguration = errors.New("carousel: invalid configuration")
