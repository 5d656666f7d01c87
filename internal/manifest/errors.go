package manifest

import "errors"

var (
	ErrMissing     = errors.New("manifest not found")
	ErrUnparseable = errors.New("manifest not parseable")
)
