// Package analytics fans donation activity out to an in-process pub/sub so
// reporting consumers never sit on the payment path.
package analytics

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"signal-for-good-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const TopicDonations = "analytics.donations"

// publishTimeout bounds how long RecordDonation may wait on a full buffer
// before the event is discarded.
const publishTimeout = 100 * time.Millisecond

type DonationRecorded struct {
	OrderId     string    `json:"order_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	PagePath    string    `json:"page_path"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Tracker publishes donation facts and keeps running totals for the admin
// metrics endpoint. Publishing is best effort; a slow consumer never blocks
// the webhook handler.
type Tracker struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger

	donationCount atomic.Int64
	amountCents   atomic.Int64
}

func NewTracker(log logger.ILogger) *Tracker {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
	t := &Tracker{pubSub: pubSub, logger: log}
	t.consume()
	return t
}

func (t *Tracker) consume() {
	messages, err := t.pubSub.Subscribe(context.Background(), TopicDonations)
	if err != nil {
		t.logger.Error("analytics", "subscribe failed", map[string]interface{}{"error": err.Error()})
		return
	}
	go func() {
		for msg := range messages {
			var rec DonationRecorded
			if err := json.Unmarshal(msg.Payload, &rec); err != nil {
				msg.Ack()
				continue
			}
			t.donationCount.Add(1)
			t.amountCents.Add(rec.AmountCents)
			msg.Ack()
		}
	}()
}

func (t *Tracker) RecordDonation(rec DonationRecorded) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	msg := message.NewMessage(uuid.NewString(), payload)

	done := make(chan error, 1)
	go func() {
		done <- t.pubSub.Publish(TopicDonations, msg)
	}()
	select {
	case err := <-done:
		if err != nil {
			t.logger.Warn("analytics", "publish failed", map[string]interface{}{"error": err.Error()})
		}
	case <-time.After(publishTimeout):
		t.logger.Warn("analytics", "publish timed out, event discarded", map[string]interface{}{"order_id": rec.OrderId})
	}
}

// Totals returns the in-process running counters since startup.
func (t *Tracker) Totals() (count int64, amountCents int64) {
	return t.donationCount.Load(), t.amountCents.Load()
}

func (t *Tracker) Close() error {
	return t.pubSub.Close()
}
