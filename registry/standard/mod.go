package standard

import (
	"sync"

	"github.com/minotor-team/socialsim/datastructures/concurrent"
	"github.com/minotor-team/socialsim/registry"
	"github.com/minotor-team/socialsim/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// NewRegistry returns a new initialized registry.
func NewRegistry() registry.Registry {
	return &Registry{
		handlers: make(map[string]registry.Exec),
		history:  concurrent.NewSlice[types.Event](),
	}
}

// Registry dispatches events to callbacks keyed by event name.
//
// - implements registry.Registry
type Registry struct {
	sync.RWMutex
	handlers  map[string]registry.Exec
	notifiers []registry.Exec
	history   concurrent.Slice[types.Event]
}

// RegisterEventCallback implements registry.Registry.
func (r *Registry) RegisterEventCallback(e types.Event, exec registry.Exec) {
	r.Lock()
	defer r.Unlock()

	r.handlers[e.Name()] = exec
}

// ProcessEvent implements registry.Registry. The callback of the event is
// executed first, then every notifier.
func (r *Registry) ProcessEvent(e types.Event) error {
	r.RLock()
	handler, ok := r.handlers[e.Name()]
	notifiers := make([]registry.Exec, len(r.notifiers))
	copy(notifiers, r.notifiers)
	r.RUnlock()

	r.history.Append(e)

	if ok {
		err := handler(e)
		if err != nil {
			return xerrors.Errorf("failed to process %s event: %w", e.Name(), err)
		}
	}

	for _, notify := range notifiers {
		err := notify(e)
		if err != nil {
			log.Warn().Err(err).Str("event", e.Name()).Msg("notifier failed")
		}
	}

	return nil
}

// RegisterNotify implements registry.Registry.
func (r *Registry) RegisterNotify(exec registry.Exec) {
	r.Lock()
	defer r.Unlock()

	r.notifiers = append(r.notifiers, exec)
}

// GetEvents implements registry.Registry.
func (r *Registry) GetEvents() []types.Event {
	return r.history.Elements()
}
