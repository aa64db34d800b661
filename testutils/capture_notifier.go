package testutils

import (
	"context"
	"sync"

	"github.com/zjm/league_manager/notify"
)

// CaptureNotifier records every transfer notice instead of publishing it.
// Err, when set, is returned from NotifyTransfer to simulate a broker
// failure.
type CaptureNotifier struct {
	mu      sync.Mutex
	Err     error
	Notices []notify.TransferNotice
}

func (c *CaptureNotifier) NotifyTransfer(_ context.Context, n notify.TransferNotice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.Notices = append(c.Notices, n)
	return nil
}

func (c *CaptureNotifier) Close() error {
	return nil
}
