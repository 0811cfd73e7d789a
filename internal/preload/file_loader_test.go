package preload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/media"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// Smallest valid PNG: signature plus IHDR chunk header is enough for
// content sniffing.
var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89,
}

func writeFixture(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestFileLoaderAcceptsMatchingContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "cover.png", pngHeader)

	loader := FileLoader{Root: dir}
	err := loader.Load(context.Background(), 0, media.Image{Source: "cover.png"})
	require.NoError(t, err)
}

func TestFileLoaderRejectsKindMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "clip.mp4", pngHeader)

	loader := FileLoader{Root: dir}
	err := loader.Load(context.Background(), 2, media.Video{Source: "clip.mp4"})
	require.Error(t, err)

	var loadErr *vitrineerrors.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Index)

	var mismatch *vitrineerrors.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "video", mismatch.Declared)
	assert.Equal(t, "image/png", mismatch.Detected)
}

func TestFileLoaderReportsMissingFile(t *testing.T) {
	t.Parallel()

	loader := FileLoader{Root: t.TempDir()}
	err := loader.Load(context.Background(), 1, media.Image{Source: "missing.png"})

	var loadErr *vitrineerrors.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, os.IsNotExist(loadErr.Err))
}

func TestFileLoaderSkipsRemoteAndEmbedded(t *testing.T) {
	t.Parallel()

	loader := FileLoader{}
	ctx := context.Background()
	assert.NoError(t, loader.Load(ctx, 0, media.Image{Source: "https://example.com/a.png"}))
	assert.NoError(t, loader.Load(ctx, 1, media.Map{Source: "geo:48.85,2.35"}))
	assert.NoError(t, loader.Load(ctx, 2, media.Embedded{Content: text("inline")}))
}

func TestFileLoaderMapOnlyNeedsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "route.geojson", []byte(`{"type":"FeatureCollection","features":[]}`))

	loader := FileLoader{Root: dir}
	assert.NoError(t, loader.Load(context.Background(), 0, media.Map{Source: "route.geojson"}))
}

func TestFileLoaderHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := FileLoader{}.Load(ctx, 0, media.Image{Source: "a.png"})
	assert.ErrorIs(t, err, context.Canceled)
}
