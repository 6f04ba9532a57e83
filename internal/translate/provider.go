package translate

import (
	"context"

	"github.com/thiha-ko/linetrans/internal/detect"
)

// Provider defines the interface for translation providers.
type Provider interface {
	// Translate translates text from source to target and returns the
	// translated text. Failures are reported as *Error.
	Translate(ctx context.Context, text string, source, target detect.Lang) (string, error)
	// Name returns the name of this provider.
	Name() string
}
