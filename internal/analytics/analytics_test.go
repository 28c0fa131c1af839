package analytics

import (
	"testing"
	"time"

	"signal-for-good-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func TestTrackerAccumulatesTotals(t *testing.T) {
	tracker := NewTracker(nopLogger{})
	defer tracker.Close()

	tracker.RecordDonation(DonationRecorded{
		OrderId:     "SFG-1",
		AmountCents: 5000,
		Currency:    "USD",
		OccurredAt:  time.Now(),
	})
	tracker.RecordDonation(DonationRecorded{
		OrderId:     "SFG-2",
		AmountCents: 2500,
		Currency:    "USD",
		OccurredAt:  time.Now(),
	})

	assert.Eventually(t, func() bool {
		count, cents := tracker.Totals()
		return count == 2 && cents == 7500
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTrackerStartsAtZero(t *testing.T) {
	tracker := NewTracker(nopLogger{})
	defer tracker.Close()

	count, cents := tracker.Totals()
	assert.Zero(t, count)
	assert.Zero(t, cents)
}
