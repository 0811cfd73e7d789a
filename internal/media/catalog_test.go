package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticText string

func (s staticText) View() string { return string(s) }

func TestNormalize(t *testing.T) {
	t.Parallel()

	img := Image{Source: "a.png", AltText: "a"}
	vid := Video{Source: "b.mp4", AltText: "b", DurationLabel: "0:42"}

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "nil input", input: nil, want: 0},
		{name: "single descriptor", input: img, want: 1},
		{name: "descriptor slice", input: []Descriptor{img, vid}, want: 2},
		{name: "slice with nil entries", input: []Descriptor{img, nil, vid}, want: 2},
		{name: "existing catalog", input: NewCatalog(img, vid, img), want: 3},
		{name: "unsupported type", input: 42, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input).Len())
		})
	}
}

func TestCatalogAtAndItemsCopy(t *testing.T) {
	t.Parallel()

	cat := NewCatalog(Image{Source: "a.png"}, Video{Source: "b.mp4"})

	item, ok := cat.At(1)
	require.True(t, ok)
	assert.Equal(t, KindVideo, item.Kind())
	assert.True(t, cat.IsVideo(1))
	assert.False(t, cat.IsVideo(0))

	_, ok = cat.At(2)
	assert.False(t, ok)
	_, ok = cat.At(-1)
	assert.False(t, ok)

	items := cat.Items()
	items[0] = nil
	first, _ := cat.At(0)
	assert.NotNil(t, first, "mutating Items() must not affect the catalog")
}

func TestCatalogStep(t *testing.T) {
	t.Parallel()

	cat := NewCatalog(Image{}, Image{}, Image{})

	tests := []struct {
		name      string
		index     int
		direction int
		loop      bool
		want      int
		moved     bool
	}{
		{name: "forward", index: 0, direction: 1, loop: true, want: 1, moved: true},
		{name: "wrap forward", index: 2, direction: 1, loop: true, want: 0, moved: true},
		{name: "wrap backward", index: 0, direction: -1, loop: true, want: 2, moved: true},
		{name: "clamp at end", index: 2, direction: 1, loop: false, want: 2, moved: false},
		{name: "clamp at start", index: 0, direction: -1, loop: false, want: 0, moved: false},
		{name: "zero direction", index: 1, direction: 0, loop: true, want: 1, moved: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, moved := cat.Step(tt.index, tt.direction, tt.loop)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.moved, moved)
		})
	}
}

func TestCatalogNeighbors(t *testing.T) {
	t.Parallel()

	three := NewCatalog(Image{}, Image{}, Image{})
	assert.Equal(t, []int{1, 2}, three.Neighbors(0, true))
	assert.Equal(t, []int{1}, three.Neighbors(0, false))
	assert.Equal(t, []int{1}, three.Neighbors(2, false))

	two := NewCatalog(Image{}, Image{})
	assert.Equal(t, []int{1}, two.Neighbors(0, true))

	one := NewCatalog(Image{})
	assert.Empty(t, one.Neighbors(0, true))
}

type recordingVisitor struct {
	kinds []Kind
}

func (r *recordingVisitor) VisitImage(int, Image)       { r.kinds = append(r.kinds, KindImage) }
func (r *recordingVisitor) VisitVideo(int, Video)       { r.kinds = append(r.kinds, KindVideo) }
func (r *recordingVisitor) VisitMap(int, Map)           { r.kinds = append(r.kinds, KindMap) }
func (r *recordingVisitor) VisitEmbedded(int, Embedded) { r.kinds = append(r.kinds, KindEmbedded) }

func TestVisitDispatchesEveryVariant(t *testing.T) {
	t.Parallel()

	items := []Descriptor{
		Image{Source: "a.png"},
		&Video{Source: "b.mp4"},
		Map{Source: "geo:0,0"},
		Embedded{Content: staticText("hello")},
	}

	var rec recordingVisitor
	for i, item := range items {
		Visit(i, item, &rec)
	}

	assert.Equal(t, []Kind{KindImage, KindVideo, KindMap, KindEmbedded}, rec.kinds)
	assert.Equal(t, "b.mp4", SourceOf(items[1]))
	assert.Equal(t, "", SourceOf(items[3]))
}

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindImage, KindVideo, KindMap, KindEmbedded} {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseKind("audio")
	assert.False(t, ok)
}
