package media

// Catalog is an ordered, immutable list of descriptors. An item's identity is
// its position; reordering the input produces a different catalog.
type Catalog struct {
	items []Descriptor
}

// NewCatalog builds a catalog from the given descriptors, skipping nil
// entries.
func NewCatalog(items ...Descriptor) Catalog {
	out := make([]Descriptor, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, item)
	}
	return Catalog{items: out}
}

// Normalize accepts a single descriptor, a slice of descriptors, an existing
// catalog, or nil, and returns the equivalent catalog. Unsupported inputs
// yield an empty catalog.
func Normalize(input any) Catalog {
	switch v := input.(type) {
	case nil:
		return Catalog{}
	case Catalog:
		return v
	case *Catalog:
		if v == nil {
			return Catalog{}
		}
		return *v
	case []Descriptor:
		return NewCatalog(v...)
	case Descriptor:
		return NewCatalog(v)
	default:
		return Catalog{}
	}
}

// Len reports the number of items.
func (c Catalog) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the catalog has no items.
func (c Catalog) IsEmpty() bool {
	return len(c.items) == 0
}

// At returns the item at index, or false when index is out of range.
func (c Catalog) At(index int) (Descriptor, bool) {
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

// Items returns a copy of the underlying slice.
func (c Catalog) Items() []Descriptor {
	out := make([]Descriptor, len(c.items))
	copy(out, c.items)
	return out
}

// IsVideo reports whether the item at index is a Video.
func (c Catalog) IsVideo(index int) bool {
	item, ok := c.At(index)
	return ok && item.Kind() == KindVideo
}

// Contains reports whether index addresses an item.
func (c Catalog) Contains(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Step returns the index reached by moving direction steps from index under
// the viewer's bounds policy: wraparound when loop is set, clamping
// otherwise. The boolean is false when the move lands on index itself, which
// callers treat as a no-op.
func (c Catalog) Step(index, direction int, loop bool) (int, bool) {
	n := len(c.items)
	if n == 0 || direction == 0 {
		return index, false
	}
	var next int
	if loop {
		next = ((index+direction)%n + n) % n
	} else {
		next = index + direction
		if next < 0 {
			next = 0
		}
		if next > n-1 {
			next = n - 1
		}
	}
	return next, next != index
}

// Neighbors returns the next and previous indices of index that differ from
// it, in that order. A two-item looping catalog yields a single neighbor.
func (c Catalog) Neighbors(index int, loop bool) []int {
	out := make([]int, 0, 2)
	if next, ok := c.Step(index, 1, loop); ok {
		out = append(out, next)
	}
	if prev, ok := c.Step(index, -1, loop); ok && (len(out) == 0 || out[0] != prev) {
		out = append(out, prev)
	}
	return out
}
