package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/carousel"
)

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Toggle   key.Binding
	Open     key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "full screen"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Toggle, k.Open, k.Close},
		{k.Help, k.Quit},
	}
}

// carouselKey translates a key press into the controller's key set.
func (k KeyMap) carouselKey(msg tea.KeyMsg) (carousel.Key, bool) {
	switch {
	case key.Matches(msg, k.Previous):
		return carousel.KeyLeft, true
	case key.Matches(msg, k.Next):
		return carousel.KeyRight, true
	case key.Matches(msg, k.First):
		return carousel.KeyHome, true
	case key.Matches(msg, k.Last):
		return carousel.KeyEnd, true
	case key.Matches(msg, k.Toggle):
		return carousel.KeySpace, true
	default:
		return 0, false
	}
}
