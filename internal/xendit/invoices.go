package xendit

import (
	"context"
	"net/http"
)

type invoiceRequest struct {
	ExternalID  string  `json:"external_id"`
	Amount      float64 `json:"amount"`
	PayerEmail  string  `json:"payer_email"`
	Description string  `json:"description"`
}

// CreateInvoice creates a hosted invoice.
func (c *Client) CreateInvoice(ctx context.Context, externalID string, amount float64, payerEmail, description string) (*Result[Invoice], error) {
	body := invoiceRequest{
		ExternalID:  externalID,
		Amount:      amount,
		PayerEmail:  payerEmail,
		Description: description,
	}
	return send[Invoice](ctx, c, call{endpoint: "create_invoice", method: http.MethodPost, path: "/v2/invoices", body: body})
}
