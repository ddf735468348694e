package cart

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
