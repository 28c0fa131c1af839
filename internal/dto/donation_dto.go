package dto

import "github.com/google/uuid"

type DonationCheckoutRequest struct {
	AmountCents int64   `json:"amount_cents" validate:"required,min=500,max=2500000"`
	DonorEmail  *string `json:"donor_email" validate:"omitempty,email"`
	PagePath    string  `json:"page_path"`
}

type DonationCheckoutResponse struct {
	IntentId    uuid.UUID `json:"intent_id"`
	OrderId     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectUrl string    `json:"redirect_url"`
}

// MidtransWebhookRequest mirrors the notification payload Midtrans posts.
// SignatureKey must equal SHA512(order_id + status_code + gross_amount + server_key).
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionId     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type"`
	Currency          string `json:"currency"`
}
