// Package chat implements the websocket fan-out for conversation threads.
//
// A Registry tracks which subscribers are attached to which conversation and
// rebroadcasts every inbound frame to all of them, sender included. Delivery
// is per-subscriber buffered; a subscriber that cannot keep up is dropped
// rather than stalling the rest of the conversation.
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
)

// Subscriber receives broadcast frames. Send must not block: it reports false
// when the frame could not be buffered, which evicts the subscriber.
type Subscriber interface {
	Send(data []byte) bool
	Close()
}

// Registry maps conversation IDs to their active subscribers.
type Registry struct {
	mu            sync.RWMutex
	conversations map[int64]map[Subscriber]struct{}
	log           zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		conversations: make(map[int64]map[Subscriber]struct{}),
		log:           log,
	}
}

// Join attaches a subscriber to a conversation, creating the channel entry on
// first join.
func (r *Registry) Join(conversationID int64, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.conversations[conversationID]
	if !ok {
		subs = make(map[Subscriber]struct{})
		r.conversations[conversationID] = subs
	}
	subs[sub] = struct{}{}

	r.log.Debug().
		Int64("conversation_id", conversationID).
		Int("subscribers", len(subs)).
		Msg("chat subscriber joined")
}

// Leave detaches a subscriber. The conversation entry is removed once its
// last subscriber leaves, so an idle registry holds no state.
func (r *Registry) Leave(conversationID int64, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.conversations[conversationID]
	if !ok {
		return
	}
	if _, exists := subs[sub]; !exists {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.conversations, conversationID)
	}

	r.log.Debug().
		Int64("conversation_id", conversationID).
		Int("subscribers", len(subs)).
		Msg("chat subscriber left")
}

// Broadcast delivers the frame to every subscriber of the conversation,
// sender included. Subscribers whose buffer is full are evicted and closed.
func (r *Registry) Broadcast(conversationID int64, data []byte) {
	r.mu.RLock()
	subs := make([]Subscriber, 0, len(r.conversations[conversationID]))
	for sub := range r.conversations[conversationID] {
		subs = append(subs, sub)
	}
	r.mu.RUnlock()

	if len(subs) == 0 {
		return
	}
	metrics.ChatMessagesTotal.Inc()

	for _, sub := range subs {
		if sub.Send(data) {
			continue
		}
		metrics.ChatSendFailuresTotal.Inc()
		r.Leave(conversationID, sub)
		sub.Close()
		r.log.Warn().
			Int64("conversation_id", conversationID).
			Msg("slow chat subscriber evicted")
	}
}

// Subscribers reports the number of subscribers attached to a conversation.
func (r *Registry) Subscribers(conversationID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conversations[conversationID])
}
