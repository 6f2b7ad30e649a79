package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"sociagram_22520074/internal/queue"
)

// Manager runs a pool of workers that consume interaction events from the
// Redis stream and hand them to the Handler.
type Manager struct {
	consumer    queue.Consumer
	handler     *Handler
	workerCount int
	batchSize   int64
	blockTime   time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager creates a worker manager with the given pool size.
func NewManager(consumer queue.Consumer, handler *Handler, workerCount int) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		consumer:    consumer,
		handler:     handler,
		workerCount: workerCount,
		batchSize:   10,
		blockTime:   5 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start creates the consumer group and launches the worker goroutines.
func (m *Manager) Start() error {
	if err := m.consumer.EnsureGroup(m.ctx, queue.StreamInteractions, queue.ConsumerGroupNotifications); err != nil {
		return fmt.Errorf("ensure consumer group: %w", err)
	}

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(i)
	}

	log.Printf("[Worker] Started %d workers", m.workerCount)
	return nil
}

// Stop signals all workers to exit and waits for them to finish.
func (m *Manager) Stop() {
	m.cancel()
	m.wg.Wait()
	log.Printf("[Worker] All workers stopped")
}

func (m *Manager) runWorker(id int) {
	defer m.wg.Done()
	name := consumerNameForWorker(id)

	// Claim anything left over from a previous run before reading new
	// entries, so a crash doesn't strand half-processed events.
	m.processPending(name)

	for {
		select {
		case <-m.ctx.Done():
			return
		default:
		}

		messages, err := m.consumer.Read(m.ctx, queue.StreamInteractions, queue.ConsumerGroupNotifications, name, m.batchSize, m.blockTime)
		if err != nil {
			if m.ctx.Err() != nil {
				return
			}
			log.Printf("[Worker] %s read error: %v", name, err)
			time.Sleep(time.Second)
			continue
		}

		m.handleMessages(name, messages)
	}
}

func (m *Manager) processPending(name string) {
	messages, err := m.consumer.ReadPending(m.ctx, queue.StreamInteractions, queue.ConsumerGroupNotifications, name, m.batchSize)
	if err != nil {
		if m.ctx.Err() == nil {
			log.Printf("[Worker] %s read pending error: %v", name, err)
		}
		return
	}
	if len(messages) > 0 {
		log.Printf("[Worker] %s reprocessing %d pending messages", name, len(messages))
		m.handleMessages(name, messages)
	}
}

func (m *Manager) handleMessages(name string, messages []queue.Message) {
	for _, msg := range messages {
		if err := m.handler.HandleEvent(m.ctx, msg.Event); err != nil {
			// Leave the message pending so a restart picks it up.
			if m.ctx.Err() != nil {
				return
			}
			log.Printf("[Worker] %s handle error for %s: %v", name, msg.ID, err)
			continue
		}
		if err := m.consumer.Ack(m.ctx, queue.StreamInteractions, queue.ConsumerGroupNotifications, msg.ID); err != nil && m.ctx.Err() == nil {
			log.Printf("[Worker] %s ack error for %s: %v", name, msg.ID, err)
		}
	}
}

func consumerNameForWorker(id int) string {
	return fmt.Sprintf("worker-%d", id)
}
