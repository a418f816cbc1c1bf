package config

import "errors"

var (
	ErrFailedToLoadConfig   = errors.New("failed to load config")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrParseToml            = errors.New("failed to parse TOML")
	ErrInterpolation        = errors.New("failed to interpolate config values")
)
