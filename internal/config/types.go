package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is a catalog file: the viewer options plus the ordered media
// items it shows.
type Document struct {
	Version     string         `yaml:"version" validate:"required,semver"`
	Name        string         `yaml:"name" validate:"required,min=1,max=100"`
	Description string         `yaml:"description,omitempty"`
	Viewer      ViewerOptions  `yaml:"viewer,omitempty"`
	Overlay     OverlayOptions `yaml:"overlay,omitempty"`
	Items       []Item         `yaml:"items" validate:"required,min=1,dive"`

	// BaseDir is the directory relative sources resolve against. It is set
	// by ParseCatalog and never read from the document.
	BaseDir string `yaml:"-"`
}

// ViewerOptions mirrors the carousel toggles. Keys absent from the document
// keep their defaults.
type ViewerOptions struct {
	ShowDots           bool          `yaml:"show_dots"`
	ShowArrows         bool          `yaml:"show_arrows"`
	Loop               bool          `yaml:"loop"`
	AutoPlay           bool          `yaml:"auto_play"`
	AutoPlayInterval   time.Duration `yaml:"auto_play_interval" validate:"min=0"`
	EnableSwipe        bool          `yaml:"enable_swipe"`
	PreloadNext        bool          `yaml:"preload_next"`
	Transition         string        `yaml:"transition" validate:"omitempty,oneof=slide fade"`
	TransitionDuration time.Duration `yaml:"transition_duration" validate:"min=0"`
	InitialIndex       int           `yaml:"initial_index" validate:"min=0"`
	VideoControls      VideoControls `yaml:"video_controls"`
}

// VideoControls configures video items.
type VideoControls struct {
	Muted        bool `yaml:"muted"`
	AutoPlay     bool `yaml:"auto_play"`
	ShowDuration bool `yaml:"show_duration"`
}

// OverlayOptions configures the full-screen surface.
type OverlayOptions struct {
	// ZIndex pins the overlay's stacking order. Zero lets the stack manager
	// assign one.
	ZIndex          int  `yaml:"z_index,omitempty" validate:"min=0"`
	CloseOnEscape   bool `yaml:"close_on_escape"`
	CloseOnBackdrop bool `yaml:"close_on_backdrop"`
}

// DefaultViewerOptions returns the documented viewer defaults.
func DefaultViewerOptions() ViewerOptions {
	return ViewerOptions{
		ShowDots:           true,
		ShowArrows:         true,
		Loop:               true,
		AutoPlayInterval:   5 * time.Second,
		EnableSwipe:        true,
		PreloadNext:        true,
		Transition:         "slide",
		TransitionDuration: 300 * time.Millisecond,
		VideoControls:      VideoControls{Muted: true, ShowDuration: true},
	}
}

// DefaultOverlayOptions returns the overlay defaults.
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{CloseOnEscape: true, CloseOnBackdrop: true}
}

// Item is one media entry. Exactly one variant pointer is set, selected by
// Kind.
type Item struct {
	Kind string `yaml:"kind" validate:"required,media_kind"`
	Alt  string `yaml:"alt,omitempty" validate:"max=500"`

	Image    *ImageItem    `yaml:",inline,omitempty"`
	Video    *VideoItem    `yaml:",inline,omitempty"`
	Map      *MapItem      `yaml:",inline,omitempty"`
	Embedded *EmbeddedItem `yaml:",inline,omitempty"`
}

// UnmarshalYAML decodes the variant named by kind without field conflicts.
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	type baseItem struct {
		Kind string `yaml:"kind"`
		Alt  string `yaml:"alt"`
	}

	var base baseItem
	if err := value.Decode(&base); err != nil {
		return err
	}

	i.Kind = strings.ToLower(strings.TrimSpace(base.Kind))
	i.Alt = base.Alt

	i.Image = nil
	i.Video = nil
	i.Map = nil
	i.Embedded = nil

	switch i.Kind {
	case "image":
		var img ImageItem
		if err := value.Decode(&img); err != nil {
			return err
		}
		i.Image = &img
	case "video":
		var vid VideoItem
		if err := value.Decode(&vid); err != nil {
			return err
		}
		i.Video = &vid
	case "map":
		var m MapItem
		if err := value.Decode(&m); err != nil {
			return err
		}
		i.Map = &m
	case "embedded":
		if hasYAMLKey(value, "source") {
			return fmt.Errorf("line %d: embedded items take text, not source", value.Line)
		}
		var emb EmbeddedItem
		if err := value.Decode(&emb); err != nil {
			return err
		}
		i.Embedded = &emb
	}

	return nil
}

// ImageItem is a still image.
type ImageItem struct {
	Source string `yaml:"source" validate:"required,media_source"`
}

// VideoItem is a playable video.
type VideoItem struct {
	Source   string `yaml:"source" validate:"required,media_source"`
	Poster   string `yaml:"poster,omitempty" validate:"omitempty,media_source"`
	Duration string `yaml:"duration,omitempty" validate:"omitempty,duration_label"`
}

// MapItem is a map view, usually a geo: URI or a GeoJSON file.
type MapItem struct {
	Source string `yaml:"source" validate:"required,media_source"`
}

// EmbeddedItem is inline content rendered as-is.
type EmbeddedItem struct {
	Text string `yaml:"text" validate:"required"`
}

// UnmarshalYAML keeps the block scalar verbatim except for one trailing
// newline.
func (e *EmbeddedItem) UnmarshalYAML(value *yaml.Node) error {
	type rawEmbedded EmbeddedItem
	var temp rawEmbedded
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*e = EmbeddedItem(temp)
	e.Text = strings.TrimSuffix(e.Text, "\n")
	return nil
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
