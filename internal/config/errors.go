package config

import "errors"

// ErrMalformed indicates a config file that exists but is not valid TOML.
var ErrMalformed = errors.New("malformed config file")
