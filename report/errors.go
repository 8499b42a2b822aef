package report

import "errors"

var ErrUnsupportedFormat = errors.New("output format must be .json or .csv")
