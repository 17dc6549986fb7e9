package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{EnterpriseID: 1, Action: "available_hours_updated"})
	d.Dispatch(Event{EnterpriseID: 1, Action: "barber_deactivated"})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, "available_hours_updated", sink.events[0].Action)
}

func TestDispatcherLogsSinkErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink, zap.New(core))

	d.Dispatch(Event{EnterpriseID: 7, Action: "booking_synced"})
	d.Close()

	assert.Equal(t, 1, logs.FilterMessage("audit write failed").Len())
}
