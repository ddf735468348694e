package product

import "errors"

var (
	// -- Validation & Input --
	ErrTitleRequired = errors.New("title cannot be empty")

	// -- Resource State --
	ErrNotFound = errors.New("product not found")

	// -- Authorization --
	ErrForbidden = errors.New("only the owner may modify this listing")
)
