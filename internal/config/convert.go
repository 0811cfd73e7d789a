package config

import (
	"github.com/alexisbeaulieu97/vitrine/internal/carousel"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
)

// Text is embedded content that renders as its literal text.
type Text string

// View implements media.Renderable.
func (t Text) View() string { return string(t) }

// Descriptor converts the item into its media variant.
func (i Item) Descriptor() (media.Descriptor, bool) {
	switch {
	case i.Image != nil:
		return media.Image{Source: i.Image.Source, AltText: i.Alt}, true
	case i.Video != nil:
		return media.Video{
			Source:        i.Video.Source,
			AltText:       i.Alt,
			PosterSource:  i.Video.Poster,
			DurationLabel: i.Video.Duration,
		}, true
	case i.Map != nil:
		return media.Map{Source: i.Map.Source, AltText: i.Alt}, true
	case i.Embedded != nil:
		return media.Embedded{Content: Text(i.Embedded.Text), AltText: i.Alt}, true
	default:
		return nil, false
	}
}

// Catalog builds the ordered media catalog. Items that fail to convert are
// skipped; validated documents have none.
func (d *Document) Catalog() media.Catalog {
	items := make([]media.Descriptor, 0, len(d.Items))
	for _, item := range d.Items {
		if desc, ok := item.Descriptor(); ok {
			items = append(items, desc)
		}
	}
	return media.NewCatalog(items...)
}

// CarouselConfig maps the viewer options onto a carousel configuration.
func (d *Document) CarouselConfig() carousel.Config {
	v := d.Viewer
	return carousel.Config{
		ShowDots:         v.ShowDots,
		ShowArrows:       v.ShowArrows,
		Loop:             v.Loop,
		AutoPlay:         v.AutoPlay,
		AutoPlayInterval: v.AutoPlayInterval,
		EnableSwipe:      v.EnableSwipe,
		PreloadNext:      v.PreloadNext,
		Transition:       carousel.Transition(v.Transition),
		VideoControls: carousel.VideoControls{
			Muted:        v.VideoControls.Muted,
			AutoPlay:     v.VideoControls.AutoPlay,
			ShowDuration: v.VideoControls.ShowDuration,
		},
		TransitionDuration: v.TransitionDuration,
		InitialIndex:       v.InitialIndex,
	}
}
