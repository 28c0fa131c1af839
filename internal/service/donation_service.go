package service

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"time"

	"signal-for-good-be/internal/analytics"
	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/pkg/mailer"
	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/pkg/events"
	pktNats "signal-for-good-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrInvalidAmount    = errors.New("donation amount out of range")
	ErrInvalidSignature = errors.New("webhook signature mismatch")
	ErrUnknownOrder     = errors.New("unknown order id")
)

const (
	minDonationCents = 500
	maxDonationCents = 2_500_000
)

type IDonationService interface {
	CreateCheckout(ctx context.Context, req *dto.DonationCheckoutRequest, clientIP, userAgent string) (*dto.DonationCheckoutResponse, error)
	// HandleNotification verifies and applies a provider webhook. A bad
	// signature returns ErrInvalidSignature and nothing is written.
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type donationService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	tracker        *analytics.Tracker
	snapClient     snap.Client
	serverKey      string
}

func NewDonationService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	tracker *analytics.Tracker,
	serverKey string,
	isProduction bool,
) IDonationService {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}
	var sClient snap.Client
	sClient.New(serverKey, env)

	return &donationService{
		uowFactory:     uowFactory,
		logger:         log,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		tracker:        tracker,
		snapClient:     sClient,
		serverKey:      serverKey,
	}
}

func hashFingerprint(raw string) *string {
	if raw == "" {
		return nil
	}
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
	return &sum
}

func (s *donationService) CreateCheckout(ctx context.Context, req *dto.DonationCheckoutRequest, clientIP, userAgent string) (*dto.DonationCheckoutResponse, error) {
	if req.AmountCents < minDonationCents || req.AmountCents > maxDonationCents {
		return nil, ErrInvalidAmount
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	intent := &entity.DonationIntent{
		Id:            uuid.New(),
		Method:        "midtrans",
		AmountCents:   req.AmountCents,
		PagePath:      req.PagePath,
		DonorEmail:    req.DonorEmail,
		UserAgentHash: hashFingerprint(userAgent),
		IpHash:        hashFingerprint(clientIP),
		Status:        entity.DonationIntentPending,
	}
	if err := uow.DonationRepository().CreateIntent(ctx, intent); err != nil {
		return nil, err
	}

	orderId := fmt.Sprintf("SFG-%s", intent.Id)
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: req.AmountCents,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "donation",
				Name:  "Signal For Good donation",
				Price: req.AmountCents,
				Qty:   1,
			},
		},
	}
	if req.DonorEmail != nil {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{Email: *req.DonorEmail}
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		s.logger.Error("donation", "snap transaction failed", map[string]interface{}{
			"intent_id": intent.Id.String(),
			"error":     snapErr.Error(),
		})
		return nil, snapErr
	}

	intent.OrderId = &orderId
	if err := uow.DonationRepository().UpdateIntent(ctx, intent); err != nil {
		return nil, err
	}

	s.logger.Info("donation", "checkout created", map[string]interface{}{
		"intent_id":    intent.Id.String(),
		"order_id":     orderId,
		"amount_cents": req.AmountCents,
	})

	return &dto.DonationCheckoutResponse{
		IntentId:    intent.Id,
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *donationService) verifySignature(req *dto.MidtransWebhookRequest) bool {
	payload := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(payload)))
	return expected == req.SignatureKey
}

func (s *donationService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if !s.verifySignature(req) {
		s.logger.Warn("donation", "webhook signature rejected", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return ErrInvalidSignature
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	intent, err := uow.DonationRepository().FindOneIntent(ctx, specification.Filter("order_id", req.OrderId))
	if err != nil {
		return err
	}
	if intent == nil {
		return ErrUnknownOrder
	}

	event := &entity.DonationEvent{
		Id:              uuid.New(),
		Provider:        "midtrans",
		ProviderEventId: req.TransactionId,
		OrderId:         req.OrderId,
		AmountCents:     intent.AmountCents,
		Currency:        req.Currency,
		PaymentStatus:   req.TransactionStatus,
	}
	created, err := uow.DonationRepository().CreateEvent(ctx, event)
	if err != nil {
		return err
	}
	if !created {
		// Provider retried a delivery we already processed.
		return nil
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		intent.Status = entity.DonationIntentCompleted
	case "deny", "cancel", "expire":
		intent.Status = entity.DonationIntentFailed
	default:
		// pending and other interim statuses leave the intent untouched
		return nil
	}
	intent.UpdatedAt = time.Now()
	if err := uow.DonationRepository().UpdateIntent(ctx, intent); err != nil {
		return err
	}

	if intent.Status != entity.DonationIntentCompleted {
		return nil
	}

	s.logger.Info("donation", "donation completed", map[string]interface{}{
		"order_id":     req.OrderId,
		"amount_cents": intent.AmountCents,
	})

	if s.tracker != nil {
		s.tracker.RecordDonation(analytics.DonationRecorded{
			OrderId:     req.OrderId,
			AmountCents: intent.AmountCents,
			Currency:    req.Currency,
			PagePath:    intent.PagePath,
			OccurredAt:  time.Now(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewDonationCompleted(req.OrderId, intent.AmountCents)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("donation", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.emailService != nil && intent.DonorEmail != nil {
		if err := s.emailService.SendDonationReceipt(*intent.DonorEmail, req.OrderId, intent.AmountCents); err != nil {
			s.logger.Warn("donation", "receipt email failed", map[string]interface{}{
				"order_id": req.OrderId,
				"error":    err.Error(),
			})
		}
	}

	return nil
}
