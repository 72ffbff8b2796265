package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/r3labs/sse/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/cenkalti/backoff.v1"

	"github.com/tab/holy-grind/pkg/events"
)

// Events subscribes to the daemon's server-sent events. The returned channel
// is closed when ctx is done or the daemon closes the stream.
func (c *Client) Events(ctx context.Context) (<-chan events.Event, error) {
	sc := sse.NewClient(c.baseURL + "/events")
	sc.Connection = c.httpClient
	// a restarted daemon is a new subscription; callers resubscribe
	sc.ReconnectStrategy = &backoff.StopBackOff{}

	connected := make(chan struct{})
	var once sync.Once
	sc.ResponseValidator = func(_ *sse.Client, resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return fmt.Errorf("got %d subscribing to events", resp.StatusCode)
		}
		once.Do(func() { close(connected) })
		return nil
	}

	ch := make(chan events.Event)
	done := make(chan error, 1)
	go func() {
		defer close(ch)

		err := sc.SubscribeRawWithContext(ctx, func(msg *sse.Event) {
			if len(msg.Event) == 0 && len(msg.Data) == 0 {
				return
			}
			select {
			case ch <- events.Event{Name: string(msg.Event), Data: msg.Data}:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			logrus.Errorf("event stream failed: %v", err)
		}
		done <- err
	}()

	select {
	case <-connected:
		return ch, nil
	case err := <-done:
		select {
		case <-connected:
			// the stream opened and ended before we got here
			return ch, nil
		default:
		}
		if err == nil {
			err = errors.New("event stream closed")
		}
		return nil, fmt.Errorf("failed to subscribe to events: %w", err)
	}
}
