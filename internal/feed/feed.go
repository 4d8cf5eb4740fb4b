// internal/feed/feed.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

const (
	publishTimeout = 2 * time.Second
	queueSize      = 256
)

// Feed publishes tracker changes on a Redis pub/sub channel so views can
// redraw from a fresh snapshot. Observer hands events to a background
// publisher, so a slow or unreachable Redis never holds up a store mutation.
type Feed struct {
	redis   *redis.Client
	channel string

	queue     chan tracker.Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewFeed(redisURL, channel string) (*Feed, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return newFeed(client, channel), nil
}

func newFeed(client *redis.Client, channel string) *Feed {
	f := &Feed{
		redis:   client,
		channel: channel,
		queue:   make(chan tracker.Event, queueSize),
		done:    make(chan struct{}),
	}
	f.wg.Add(1)
	go f.run()

	return f
}

// Close flushes queued events, giving up on whatever is left after one
// publish timeout, and closes the connection.
func (f *Feed) Close() error {
	var err error
	f.closeOnce.Do(func() {
		close(f.done)
		f.wg.Wait()
		err = f.redis.Close()
	})
	return err
}

func (f *Feed) run() {
	defer f.wg.Done()

	for {
		select {
		case event := <-f.queue:
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			f.publishLogged(ctx, event)
			cancel()
		case <-f.done:
			f.drain()
			return
		}
	}
}

func (f *Feed) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	for {
		select {
		case event := <-f.queue:
			if ctx.Err() != nil {
				logger.Error.Printf("Feed: %s %s #%d dropped on shutdown", event.Entity, event.Kind, event.ID)
				continue
			}
			f.publishLogged(ctx, event)
		default:
			return
		}
	}
}

func (f *Feed) publishLogged(ctx context.Context, event tracker.Event) {
	if err := f.Publish(ctx, event); err != nil {
		logger.Error.Printf("Feed: %s %s #%d not published: %v", event.Entity, event.Kind, event.ID, err)
	}
}

func (f *Feed) Channel() string {
	return f.channel
}

func (f *Feed) Publish(ctx context.Context, event tracker.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := f.redis.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", f.channel, err)
	}
	return nil
}

// Observer queues every store event for publishing, in order. It never
// blocks: events arriving while the queue is full or after Close are dropped
// and logged. Publish errors are only logged.
func (f *Feed) Observer() tracker.Observer {
	return func(event tracker.Event) {
		select {
		case <-f.done:
			logger.Error.Printf("Feed: %s %s #%d dropped, feed closed", event.Entity, event.Kind, event.ID)
			return
		default:
		}

		select {
		case f.queue <- event:
		default:
			logger.Error.Printf("Feed: %s %s #%d dropped, publish queue full", event.Entity, event.Kind, event.ID)
		}
	}
}

type Subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
}

// Subscribe returns once Redis confirmed the subscription, so no event
// published afterwards is missed.
func (f *Feed) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := f.redis.Subscribe(ctx, f.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", f.channel, err)
	}

	return &Subscription{pubsub: pubsub, done: make(chan struct{})}, nil
}

func (s *Subscription) Events() <-chan tracker.Event {
	out := make(chan tracker.Event)

	go func() {
		defer close(out)
		for msg := range s.pubsub.Channel() {
			var event tracker.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Error.Printf("Feed: skipping malformed message on %s: %v", msg.Channel, err)
				continue
			}

			select {
			case out <- event:
			case <-s.done:
				return
			}
		}
	}()

	return out
}

func (s *Subscription) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.pubsub.Close()
}
