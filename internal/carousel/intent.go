package carousel

import "fmt"

// IntentKind enumerates the navigation requests a host can issue.
type IntentKind int

const (
	IntentNext IntentKind = iota
	IntentPrevious
	IntentFirst
	IntentLast
	IntentGoTo
	IntentTogglePlayback
)

func (k IntentKind) String() string {
	switch k {
	case IntentNext:
		return "next"
	case IntentPrevious:
		return "previous"
	case IntentFirst:
		return "first"
	case IntentLast:
		return "last"
	case IntentGoTo:
		return "goto"
	case IntentTogglePlayback:
		return "toggle-playback"
	default:
		return fmt.Sprintf("intent(%d)", int(k))
	}
}

// Intent is a single navigation request. Index is only read for IntentGoTo
// and IntentTogglePlayback.
type Intent struct {
	Kind  IntentKind
	Index int
}

func Next() Intent     { return Intent{Kind: IntentNext} }
func Previous() Intent { return Intent{Kind: IntentPrevious} }
func First() Intent    { return Intent{Kind: IntentFirst} }
func Last() Intent     { return Intent{Kind: IntentLast} }

// GoTo requests a jump to index.
func GoTo(index int) Intent { return Intent{Kind: IntentGoTo, Index: index} }

// TogglePlayback requests play/pause of the video at index.
func TogglePlayback(index int) Intent { return Intent{Kind: IntentTogglePlayback, Index: index} }

// Key is a host-neutral keyboard key the controller reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyHome
	KeyEnd
	KeySpace
)

// ParseKey maps common key names to a Key.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "left", "ArrowLeft", "h":
		return KeyLeft, true
	case "right", "ArrowRight", "l":
		return KeyRight, true
	case "home", "Home", "g":
		return KeyHome, true
	case "end", "End", "G":
		return KeyEnd, true
	case " ", "space", "Space":
		return KeySpace, true
	default:
		return 0, false
	}
}
