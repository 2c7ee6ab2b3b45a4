// Package navigator implements the lightbox state machine.
//
// A Navigator tracks which item of a list is shown, at most one pending
// transition, and the set of media URLs known to be loaded. It never loads
// anything itself: operations return Preload requests, and the caller feeds
// the outcome back through Resolve. All methods must be called from a single
// goroutine, such as a bubbletea update loop or one HTTP request.
package navigator

import (
	"errors"

	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/util"
	"github.com/samber/mo"
)

var (
	ErrNotFound   = errors.New("navigator: item not found")
	ErrOutOfRange = errors.New("navigator: index out of range")
)

// Direction is the visual direction of a transition.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Preload asks the caller to load URL.
// Gate is set when a pending transition waits on the result.
type Preload struct {
	Session uint64
	Index   int
	URL     string
	Gate    bool
}

// Resolve builds the Resolution reporting the outcome of p.
func (p Preload) Resolve(err error) Resolution {
	return Resolution{Session: p.Session, Index: p.Index, URL: p.URL, Err: err}
}

// Resolution is the outcome of a Preload. Err is nil on success.
type Resolution struct {
	Session uint64
	Index   int
	URL     string
	Err     error
}

// Frame is everything a shell needs to draw the lightbox.
type Frame struct {
	Open      bool
	Item      *media.Item
	Index     int
	Total     int
	Pending   bool
	Target    int
	Direction Direction
}

type set map[string]struct{}

func (s set) has(k string) bool {
	_, ok := s[k]
	return ok
}

type Navigator struct {
	items     []*media.Item
	current   mo.Option[int]
	pending   mo.Option[int]
	direction Direction
	session   uint64

	// resolved is never evicted; inflight is reset with every session.
	resolved set
	inflight set
}

// New returns a closed navigator.
func New() *Navigator {
	return &Navigator{
		resolved: make(set),
		inflight: make(set),
	}
}

// Open shows the item with the given id and returns preloads for its neighbours.
// An unknown id leaves the navigator untouched.
func (n *Navigator) Open(items []*media.Item, id string) ([]Preload, error) {
	idx, err := media.IndexOf(items, id)
	if err != nil {
		return nil, ErrNotFound
	}

	n.session++
	n.items = items
	n.current = mo.Some(idx)
	n.pending = mo.None[int]()
	n.direction = None
	n.inflight = make(set)

	return n.adjacent(), nil
}

// Close returns to the closed state. Outstanding preloads are ignored when they resolve.
func (n *Navigator) Close() {
	n.session++
	n.items = nil
	n.current = mo.None[int]()
	n.pending = mo.None[int]()
	n.direction = None
	n.inflight = make(set)
}

// RequestNext moves to the following item, wrapping at the end.
func (n *Navigator) RequestNext() []Preload {
	cur, ok := n.current.Get()
	if !ok {
		return nil
	}
	return n.request(util.Wrap(cur+1, len(n.items)), Forward)
}

// RequestPrevious moves to the preceding item, wrapping at the start.
func (n *Navigator) RequestPrevious() []Preload {
	cur, ok := n.current.Get()
	if !ok {
		return nil
	}
	return n.request(util.Wrap(cur-1, len(n.items)), Backward)
}

// RequestIndex jumps to i. The direction follows the relative position.
func (n *Navigator) RequestIndex(i int) ([]Preload, error) {
	cur, ok := n.current.Get()
	if !ok {
		return nil, nil
	}
	if i < 0 || i >= len(n.items) {
		return nil, ErrOutOfRange
	}

	dir := None
	switch {
	case i > cur:
		dir = Forward
	case i < cur:
		dir = Backward
	}
	return n.request(i, dir), nil
}

func (n *Navigator) request(target int, dir Direction) []Preload {
	cur, ok := n.current.Get()
	if !ok || n.pending.IsPresent() {
		return nil
	}

	if target == cur {
		n.direction = None
		return nil
	}

	n.direction = dir
	url := n.items[target].URL

	if n.resolved.has(url) {
		n.current = mo.Some(target)
		return n.adjacent()
	}

	n.pending = mo.Some(target)
	if n.inflight.has(url) {
		return nil
	}
	n.inflight[url] = struct{}{}

	return []Preload{{Session: n.session, Index: target, URL: url, Gate: true}}
}

// Resolve records the outcome of a preload. When it is the one a pending
// transition waits on, the transition commits whether or not loading succeeded.
// Results from an earlier session are discarded.
func (n *Navigator) Resolve(r Resolution) []Preload {
	if r.Session != n.session || n.current.IsAbsent() {
		return nil
	}

	delete(n.inflight, r.URL)
	if r.Err == nil {
		n.resolved[r.URL] = struct{}{}
	}

	target, ok := n.pending.Get()
	if !ok || n.items[target].URL != r.URL {
		return nil
	}

	n.current = mo.Some(target)
	n.pending = mo.None[int]()
	return n.adjacent()
}

// adjacent requests the neighbours of the current item that are neither
// loaded nor already requested.
func (n *Navigator) adjacent() []Preload {
	cur, ok := n.current.Get()
	if !ok {
		return nil
	}

	var preloads []Preload
	for _, i := range Adjacent(len(n.items), cur) {
		url := n.items[i].URL
		if url == "" || n.resolved.has(url) || n.inflight.has(url) {
			continue
		}
		n.inflight[url] = struct{}{}
		preloads = append(preloads, Preload{Session: n.session, Index: i, URL: url})
	}
	return preloads
}

// Adjacent returns the distinct wrapped neighbours of i in a list of n items,
// previous first. The result never contains i itself.
func Adjacent(n, i int) []int {
	if n <= 1 {
		return nil
	}
	prev, next := util.Wrap(i-1, n), util.Wrap(i+1, n)
	if prev == next {
		return []int{next}
	}
	return []int{prev, next}
}

// View projects the current state.
func (n *Navigator) View() Frame {
	cur, ok := n.current.Get()
	if !ok {
		return Frame{Index: -1, Target: -1}
	}
	return Frame{
		Open:      true,
		Item:      n.items[cur],
		Index:     cur,
		Total:     len(n.items),
		Pending:   n.pending.IsPresent(),
		Target:    n.pending.OrElse(-1),
		Direction: n.direction,
	}
}

func (n *Navigator) IsOpen() bool {
	return n.current.IsPresent()
}

func (n *Navigator) Current() mo.Option[int] {
	return n.current
}

func (n *Navigator) Pending() mo.Option[int] {
	return n.pending
}

func (n *Navigator) Direction() Direction {
	return n.direction
}

func (n *Navigator) Session() uint64 {
	return n.session
}

// Loaded reports whether url has been preloaded successfully.
func (n *Navigator) Loaded(url string) bool {
	return n.resolved.has(url)
}
