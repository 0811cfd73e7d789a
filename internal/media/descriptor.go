// Package media defines the media descriptors shown by the viewer and the
// ordered catalog that holds them.
//
// Descriptors form a closed set of variants (Image, Video, Map, Embedded).
// Consumers dispatch over them with Visit, whose Visitor interface has one
// method per variant, so adding a variant breaks every consumer at compile
// time instead of silently falling through a type switch.
package media

// Kind identifies a descriptor variant.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindMap
	KindEmbedded
)

// String returns the lowercase name used in catalog documents.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindMap:
		return "map"
	case KindEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

// ParseKind converts a catalog document name back into a Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "image":
		return KindImage, true
	case "video":
		return KindVideo, true
	case "map":
		return KindMap, true
	case "embedded":
		return KindEmbedded, true
	default:
		return 0, false
	}
}

// Renderable is content that can draw itself. Embedded descriptors carry one.
type Renderable interface {
	View() string
}

// Descriptor is one item of a catalog. The unexported method seals the set of
// implementations to this package.
type Descriptor interface {
	Kind() Kind
	Alt() string
	descriptor()
}

// Image is a still picture.
type Image struct {
	Source  string
	AltText string
}

// Video is a playable clip. PosterSource and DurationLabel are optional.
type Video struct {
	Source        string
	AltText       string
	PosterSource  string
	DurationLabel string
}

// Map is an embedded map view addressed by Source.
type Map struct {
	Source  string
	AltText string
}

// Embedded is arbitrary caller-supplied content.
type Embedded struct {
	Content Renderable
	AltText string
}

func (Image) Kind() Kind    { return KindImage }
func (Video) Kind() Kind    { return KindVideo }
func (Map) Kind() Kind      { return KindMap }
func (Embedded) Kind() Kind { return KindEmbedded }

func (i Image) Alt() string    { return i.AltText }
func (v Video) Alt() string    { return v.AltText }
func (m Map) Alt() string      { return m.AltText }
func (e Embedded) Alt() string { return e.AltText }

func (Image) descriptor()    {}
func (Video) descriptor()    {}
func (Map) descriptor()      {}
func (Embedded) descriptor() {}

// Visitor handles every descriptor variant.
type Visitor interface {
	VisitImage(index int, item Image)
	VisitVideo(index int, item Video)
	VisitMap(index int, item Map)
	VisitEmbedded(index int, item Embedded)
}

// Visit dispatches item to the matching Visitor method. Nil items are ignored.
func Visit(index int, item Descriptor, v Visitor) {
	switch d := item.(type) {
	case Image:
		v.VisitImage(index, d)
	case *Image:
		if d != nil {
			v.VisitImage(index, *d)
		}
	case Video:
		v.VisitVideo(index, d)
	case *Video:
		if d != nil {
			v.VisitVideo(index, *d)
		}
	case Map:
		v.VisitMap(index, d)
	case *Map:
		if d != nil {
			v.VisitMap(index, *d)
		}
	case Embedded:
		v.VisitEmbedded(index, d)
	case *Embedded:
		if d != nil {
			v.VisitEmbedded(index, *d)
		}
	}
}

// SourceOf returns the addressable source of a descriptor, or "" for
// embedded content.
func SourceOf(item Descriptor) string {
	var src sourceVisitor
	Visit(0, item, &src)
	return src.source
}

type sourceVisitor struct{ source string }

func (s *sourceVisitor) VisitImage(_ int, item Image)    { s.source = item.Source }
func (s *sourceVisitor) VisitVideo(_ int, item Video)    { s.source = item.Source }
func (s *sourceVisitor) VisitMap(_ int, item Map)        { s.source = item.Source }
func (s *sourceVisitor) VisitEmbedded(_ int, _ Embedded) { s.source = "" }
