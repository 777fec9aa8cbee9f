package analytics

import "errors"

var ErrQuery = errors.New("analytics query failed")
