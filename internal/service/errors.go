package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrUnexpectedObjectType = fmt.Errorf("%w: unexpected object type", ErrInvalidIdentifier)

	ErrMissingPageNumber   = errors.New("missing thumbnail page number")
	ErrInvalidPageNumber   = errors.New("invalid thumbnail page number")
	ErrNoOriginalBitstream = errors.New("item has no original bitstream")
	ErrNoPageSource        = errors.New("no thumbnail page source configured")

	ErrChecksumMismatch    = errors.New("uploaded bitstream checksum mismatch")
	ErrVerificationFailed  = errors.New("owning collection was not changed")
	ErrMigrationIncomplete = errors.New("migration finished with failed items")
)
