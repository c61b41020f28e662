package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes chat messages to a fixed set of workers, sharded by
// conversation ID so messages within one conversation persist in order.
type Dispatcher struct {
	workers []chan ports.CreateMessageInput
	service ports.MessageService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.MessageService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CreateMessageInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CreateMessageInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a message to the worker responsible for its conversation.
// Persistence is best effort: when the shard's buffer is full the message is
// dropped and logged instead of blocking the calling read pump.
func (d *Dispatcher) Enqueue(msg ports.CreateMessageInput) {
	select {
	case d.workers[d.shardIndex(msg.ConversationID)] <- msg:
	default:
		d.log.Warn().
			Int64("conversation_id", msg.ConversationID).
			Msg("shard buffer full, message dropped")
	}
}

// shardIndex maps a conversation deterministically to a worker index.
func (d *Dispatcher) shardIndex(conversationID int64) int {
	idx := conversationID % int64(len(d.workers))
	if idx < 0 {
		idx = -idx
	}
	return int(idx)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CreateMessageInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.service.Create(ctx, msg); err != nil {
				d.log.Error().Err(err).
					Int64("conversation_id", msg.ConversationID).
					Int("worker_id", id).
					Msg("message persistence failed")
			}
		}
	}
}
