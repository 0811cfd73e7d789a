package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "gallery.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("items[1].kind", "unknown media kind", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "items[1].kind", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown media kind")
}

func TestLoadErrorIncludesItemContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file")
	err := NewLoadError(3, "media/clip.mp4", underlying)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, 3, loadErr.Index)
	require.Equal(t, "media/clip.mp4", loadErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "item 3")
}

func TestLoadErrorWrapsKindMismatch(t *testing.T) {
	t.Parallel()

	err := NewLoadError(0, "", &KindMismatchError{Declared: "image", Detected: "video/mp4"})

	var mismatch *KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "video/mp4", mismatch.Detected)
	require.Equal(t, "load error on item 0: declared image but content is video/mp4", err.Error())
}
