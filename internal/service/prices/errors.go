package prices

import "errors"

var (
	ErrNoDataFound = errors.New("no data found")
)
