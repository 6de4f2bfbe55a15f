package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"pitchside/internal/common"
)

// Hub is the topic-addressed broadcast primitive. Topics are user ids and
// group ids (common.UserTopic / common.GroupTopic); every Subscription
// registered on a topic receives each event published to it.
//
// Publish is asynchronous: events go through a buffered channel drained by a
// worker pool, so a slow subscriber never stalls a sender.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}

	eventChannel chan common.Event
	subBuffer    int
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// Subscription is one client's view of the channel. Events arrive on C();
// Close unregisters from every topic.
type Subscription struct {
	hub    *Hub
	topics []string
	ch     chan common.Event

	mu     sync.Mutex
	closed bool
}

func NewHub(workers, bufferSize, subBuffer int) *Hub {
	if workers <= 0 {
		workers = 4
	}
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	if subBuffer <= 0 {
		subBuffer = 64
	}

	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		subscribers:  make(map[string]map[*Subscription]struct{}),
		eventChannel: make(chan common.Event, bufferSize),
		subBuffer:    subBuffer,
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workers; i++ {
		h.wg.Add(1)
		go h.dispatchEvents()
	}

	return h
}

// Publish queues an event for every subscriber of topic. If the hub buffer
// is full the event is dropped with a log line rather than blocking the
// request path.
func (h *Hub) Publish(topic string, event common.Event) {
	event.Topic = topic
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	select {
	case h.eventChannel <- event:

	case <-h.ctx.Done():
		return
	default:
		log.Printf("Fan-out channel full, dropping event: %s on %s", event.Type, topic)
	}
}

// Subscribe registers for one or more topics. The caller must drain C() or
// accept dropped events once its buffer fills.
func (h *Hub) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{
		hub:    h,
		topics: topics,
		ch:     make(chan common.Event, h.subBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[*Subscription]struct{})
		}
		h.subscribers[topic][sub] = struct{}{}
	}

	return sub
}

func (s *Subscription) C() <-chan common.Event {
	return s.ch
}

func (s *Subscription) Close() {
	s.hub.remove(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// send drops the event if the subscription is closed or its buffer is full.
func (s *Subscription) send(event common.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, topic := range sub.topics {
		subs, ok := h.subscribers[topic]
		if !ok {
			continue
		}
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subscribers, topic)
		}
	}
}

func (h *Hub) dispatchEvents() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.eventChannel:
			h.deliver(event)
		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) deliver(event common.Event) {
	h.mu.RLock()
	targets := make([]*Subscription, 0, len(h.subscribers[event.Topic]))
	for sub := range h.subscribers[event.Topic] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	for _, sub := range targets {
		if !sub.send(event) {
			log.Printf("Subscriber buffer full on %s, dropping event: %s", event.Topic, event.Type)
		}
	}
}

func (h *Hub) Shutdown() {
	h.cancel()
	h.wg.Wait()
	log.Println("Fan-out hub shutdown complete")
}
