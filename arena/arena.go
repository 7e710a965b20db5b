// Package arena implements a paged bump allocator. Allocations are cut
// sequentially out of fixed-capacity pages; when no page has room a new
// tail page is grown by doubling. Individual allocations are never freed:
// Clear recycles every page at once and Free releases them. An Arena is
// not safe for concurrent use.
package arena

type page struct {
	buf  []byte
	used int
}

// Arena hands out byte slices carved from its pages. Slices stay valid
// until Clear or Free; after Clear the same memory is handed out again.
type Arena struct {
	pages      []*page
	defaultCap int
}

// New returns an Arena with a single empty page of defaultPageCapacity
// bytes. A capacity less than one yields nil.
func New(defaultPageCapacity int) *Arena {
	if defaultPageCapacity <= 0 {
		return nil
	}
	return &Arena{
		pages:      []*page{{buf: make([]byte, defaultPageCapacity)}},
		defaultCap: defaultPageCapacity,
	}
}

// Alloc returns a slice of exactly size bytes from the first page with
// room. When every page is too full, a new tail page is appended whose
// capacity doubles from the default until the request fits, so a single
// oversized allocation gets a page of its own size class. Slices from the
// same arena generation never overlap; the capacity of each returned slice
// is clipped so appends cannot bleed into a neighbor.
//
// Alloc returns nil for a non-positive size, a nil arena, or a freed
// arena.
func (a *Arena) Alloc(size int) []byte {
	if a == nil || a.pages == nil || size <= 0 {
		return nil
	}
	for _, p := range a.pages {
		if p.used+size <= len(p.buf) {
			b := p.buf[p.used : p.used+size : p.used+size]
			p.used += size
			return b
		}
	}
	capacity := a.defaultCap
	for capacity < size {
		capacity *= 2
	}
	p := &page{buf: make([]byte, capacity), used: size}
	a.pages = append(a.pages, p)
	return p.buf[:size:size]
}

// Clear resets every page's used length to zero without releasing memory,
// so the pages are reused by later Allocs. Slices handed out before the
// Clear alias recycled memory afterwards; page contents are not zeroed.
func (a *Arena) Clear() {
	if a == nil {
		return
	}
	for _, p := range a.pages {
		p.used = 0
	}
}

// Free releases every page. The arena allocates nothing afterwards; Alloc
// returns nil.
func (a *Arena) Free() {
	if a == nil {
		return
	}
	a.pages = nil
}

// Pages reports how many pages the arena currently holds.
func (a *Arena) Pages() int {
	if a == nil {
		return 0
	}
	return len(a.pages)
}
