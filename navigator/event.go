package navigator

import (
	"fmt"

	"github.com/folio-cli/folio/media"
)

// Event is an input to Handle.
type Event interface {
	event()
}

type (
	OpenEvent struct {
		Items []*media.Item
		ID    string
	}
	CloseEvent    struct{}
	NextEvent     struct{}
	PreviousEvent struct{}
	JumpEvent     struct{ Index int }
	ResolvedEvent struct{ Resolution Resolution }
)

func (OpenEvent) event()     {}
func (CloseEvent) event()    {}
func (NextEvent) event()     {}
func (PreviousEvent) event() {}
func (JumpEvent) event()     {}
func (ResolvedEvent) event() {}

// Handle applies ev and returns the preloads it produced.
func (n *Navigator) Handle(ev Event) ([]Preload, error) {
	switch e := ev.(type) {
	case OpenEvent:
		return n.Open(e.Items, e.ID)
	case CloseEvent:
		n.Close()
		return nil, nil
	case NextEvent:
		return n.RequestNext(), nil
	case PreviousEvent:
		return n.RequestPrevious(), nil
	case JumpEvent:
		return n.RequestIndex(e.Index)
	case ResolvedEvent:
		return n.Resolve(e.Resolution), nil
	default:
		return nil, fmt.Errorf("navigator: unknown event %T", ev)
	}
}
