package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/chaz8081/keysession/internal/keys"
)

// Emitter renders captured batches to text and hands them to a Sink.
type Emitter struct {
	resolver *keys.Resolver
	sink     Sink
}

// NewEmitter creates an Emitter.
func NewEmitter(resolver *keys.Resolver, sink Sink) *Emitter {
	return &Emitter{resolver: resolver, sink: sink}
}

// Render resolves events in arrival order and concatenates the tokens.
func (em *Emitter) Render(events []keys.RawKeyEvent) string {
	tokens := lo.FilterMap(events, func(ev keys.RawKeyEvent, _ int) (string, bool) {
		tok := em.resolver.Resolve(ev)
		return tok, tok != ""
	})
	return strings.Join(tokens, "")
}

// Emit publishes b. An empty batch produces nothing.
func (em *Emitter) Emit(b Batch) error {
	if len(b.Events) == 0 {
		return nil
	}

	rec := Record{
		ID:      uuid.NewString(),
		Window:  b.Window,
		Text:    em.Render(b.Events),
		Keys:    len(b.Events),
		Start:   b.Start,
		LastKey: b.LastKey,
		Flushed: b.Flushed,
	}

	if err := em.sink.Emit(rec); err != nil {
		return fmt.Errorf("emitting session %s: %w", rec.ID, err)
	}
	return nil
}
