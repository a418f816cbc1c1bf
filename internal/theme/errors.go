package theme

import "errors"

var (
	ErrNilSink           = errors.New("theme sink is nil")
	ErrNoConfig          = errors.New("config callback returned no agent configuration")
	ErrRenderStylesheet  = errors.New("failed to render stylesheet")
	ErrWriteStylesheet   = errors.New("failed to write stylesheet")
	ErrApplyThemeToken   = errors.New("failed to apply theme token")
	ErrInvalidThemeToken = errors.New("invalid theme token")
	ErrUnsupportedColor  = errors.New("unsupported color")
)
