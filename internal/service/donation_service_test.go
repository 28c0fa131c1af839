package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-test-key"

func newTestDonationService(store *fakeStore) IDonationService {
	return NewDonationService(
		newFakeFactory(store),
		nopLogger{},
		nil,
		nil,
		nil,
		testServerKey,
		false,
	)
}

func signWebhook(req *dto.MidtransWebhookRequest) {
	payload := req.OrderId + req.StatusCode + req.GrossAmount + testServerKey
	req.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(payload)))
}

func seedIntent(store *fakeStore, orderId string, amountCents int64) *entity.DonationIntent {
	email := "donor@example.com"
	intent := &entity.DonationIntent{
		Id:          uuid.New(),
		Method:      "midtrans",
		AmountCents: amountCents,
		PagePath:    "/missions",
		DonorEmail:  &email,
		Status:      entity.DonationIntentPending,
		OrderId:     &orderId,
	}
	store.intents = append(store.intents, intent)
	return intent
}

func TestCheckoutRejectsAmountOutOfRange(t *testing.T) {
	store := newFakeStore()
	svc := newTestDonationService(store)

	tests := []struct {
		name        string
		amountCents int64
	}{
		{"below minimum", 499},
		{"zero", 0},
		{"above maximum", 2_500_001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCheckout(context.Background(), &dto.DonationCheckoutRequest{
				AmountCents: tt.amountCents,
			}, "203.0.113.7", "test-agent")
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.Empty(t, store.intents)
		})
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	store := newFakeStore()
	seedIntent(store, "SFG-order-1", 5000)
	svc := newTestDonationService(store)

	req := &dto.MidtransWebhookRequest{
		OrderId:           "SFG-order-1",
		StatusCode:        "200",
		GrossAmount:       "5000",
		SignatureKey:      "forged",
		TransactionId:     "txn-1",
		TransactionStatus: "settlement",
	}

	err := svc.HandleNotification(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// Nothing was written under a bad signature.
	assert.Empty(t, store.events)
	assert.Equal(t, entity.DonationIntentPending, store.intents[0].Status)
}

func TestWebhookRejectsUnknownOrder(t *testing.T) {
	store := newFakeStore()
	svc := newTestDonationService(store)

	req := &dto.MidtransWebhookRequest{
		OrderId:           "SFG-missing",
		StatusCode:        "200",
		GrossAmount:       "5000",
		TransactionId:     "txn-2",
		TransactionStatus: "settlement",
	}
	signWebhook(req)

	err := svc.HandleNotification(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownOrder)
}

func TestWebhookSettlementCompletesIntent(t *testing.T) {
	store := newFakeStore()
	intent := seedIntent(store, "SFG-order-2", 12500)
	svc := newTestDonationService(store)

	req := &dto.MidtransWebhookRequest{
		OrderId:           "SFG-order-2",
		StatusCode:        "200",
		GrossAmount:       "12500",
		TransactionId:     "txn-3",
		TransactionStatus: "settlement",
		Currency:          "USD",
	}
	signWebhook(req)

	err := svc.HandleNotification(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.DonationIntentCompleted, store.intents[0].Status)
	require.Len(t, store.events, 1)
	assert.Equal(t, "txn-3", store.events[0].ProviderEventId)
	assert.Equal(t, intent.AmountCents, store.events[0].AmountCents)
	assert.Equal(t, "settlement", store.events[0].PaymentStatus)
}

func TestWebhookDuplicateDeliveryIsNoop(t *testing.T) {
	store := newFakeStore()
	seedIntent(store, "SFG-order-3", 2000)
	svc := newTestDonationService(store)

	req := &dto.MidtransWebhookRequest{
		OrderId:           "SFG-order-3",
		StatusCode:        "200",
		GrossAmount:       "2000",
		TransactionId:     "txn-4",
		TransactionStatus: "settlement",
	}
	signWebhook(req)

	require.NoError(t, svc.HandleNotification(context.Background(), req))
	require.NoError(t, svc.HandleNotification(context.Background(), req))

	assert.Len(t, store.events, 1)
	assert.Equal(t, entity.DonationIntentCompleted, store.intents[0].Status)
}

func TestWebhookFailureStatusesMarkIntentFailed(t *testing.T) {
	for _, status := range []string{"deny", "cancel", "expire"} {
		t.Run(status, func(t *testing.T) {
			store := newFakeStore()
			seedIntent(store, "SFG-order-4", 3000)
			svc := newTestDonationService(store)

			req := &dto.MidtransWebhookRequest{
				OrderId:           "SFG-order-4",
				StatusCode:        "202",
				GrossAmount:       "3000",
				TransactionId:     "txn-" + status,
				TransactionStatus: status,
			}
			signWebhook(req)

			require.NoError(t, svc.HandleNotification(context.Background(), req))
			assert.Equal(t, entity.DonationIntentFailed, store.intents[0].Status)
		})
	}
}

func TestWebhookPendingLeavesIntentUntouched(t *testing.T) {
	store := newFakeStore()
	seedIntent(store, "SFG-order-5", 3000)
	svc := newTestDonationService(store)

	req := &dto.MidtransWebhookRequest{
		OrderId:           "SFG-order-5",
		StatusCode:        "201",
		GrossAmount:       "3000",
		TransactionId:     "txn-5",
		TransactionStatus: "pending",
	}
	signWebhook(req)

	require.NoError(t, svc.HandleNotification(context.Background(), req))
	assert.Equal(t, entity.DonationIntentPending, store.intents[0].Status)
	// The event row is still recorded for the audit trail.
	assert.Len(t, store.events, 1)
}

func TestHashFingerprint(t *testing.T) {
	assert.Nil(t, hashFingerprint(""))

	h := hashFingerprint("Mozilla/5.0")
	require.NotNil(t, h)
	assert.Len(t, *h, 64)
	assert.NotContains(t, *h, "Mozilla")

	h2 := hashFingerprint("Mozilla/5.0")
	assert.Equal(t, *h, *h2)
}
