package csrgraph

import "github.com/pkg/errors"

// ErrInvalidCSR is wrapped with a specific cause by New and FromEdges
// whenever the supplied arrays fail validation.
var ErrInvalidCSR = errors.New("csrgraph: invalid CSR arrays")
