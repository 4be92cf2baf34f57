package fsm

import "github.com/enetx/g"

// EventSource produces the firings a machine consumes, in order. Next
// returns None when the source is exhausted, which ends the run. The run
// loop never looks ahead and never pushes back; a source that blocks in
// Next blocks the whole machine.
type EventSource interface {
	Next() g.Option[Firing]
}

// SourceFunc adapts a plain function to an EventSource.
type SourceFunc func() g.Option[Firing]

func (f SourceFunc) Next() g.Option[Firing] { return f() }

// SliceSource yields a fixed, finite sequence of firings. A machine that
// halts on an end state leaves the remainder unconsumed; a second run
// resumes from it.
type SliceSource struct {
	firings g.Slice[Firing]
	next    int
}

// NewSliceSource creates a source over the given firings.
func NewSliceSource(firings ...Firing) *SliceSource {
	return &SliceSource{firings: g.SliceOf(firings...)}
}

// Events creates a SliceSource from bare events carrying no parameters.
func Events(events ...Event) *SliceSource {
	var firings g.Slice[Firing]
	for _, event := range events {
		firings.Push(Firing{Event: event})
	}

	return &SliceSource{firings: firings}
}

func (s *SliceSource) Next() g.Option[Firing] {
	if s.next >= len(s.firings) {
		return g.None[Firing]()
	}

	firing := s.firings[s.next]
	s.next++

	return g.Some(firing)
}

// ChanSource pulls firings from a channel. Closing the channel ends the
// run; that is the way to thread cancellation through a machine.
type ChanSource struct {
	ch <-chan Firing
}

// NewChanSource creates a source reading from ch.
func NewChanSource(ch <-chan Firing) *ChanSource {
	return &ChanSource{ch: ch}
}

func (s *ChanSource) Next() g.Option[Firing] {
	firing, ok := <-s.ch
	if !ok {
		return g.None[Firing]()
	}

	return g.Some(firing)
}
