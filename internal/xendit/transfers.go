package xendit

import (
	"context"
	"net/http"
)

type transferRequest struct {
	Reference         string  `json:"reference"`
	Amount            float64 `json:"amount"`
	SourceUserID      string  `json:"source_user_id"`
	DestinationUserID string  `json:"destination_user_id"`
}

// Transfer moves amount from the source account to the destination account.
func (c *Client) Transfer(ctx context.Context, reference, sourceUserID, destinationUserID string, amount float64) (*Result[TransferResult], error) {
	body := transferRequest{
		Reference:         reference,
		Amount:            amount,
		SourceUserID:      sourceUserID,
		DestinationUserID: destinationUserID,
	}
	return send[TransferResult](ctx, c, call{endpoint: "transfer", method: http.MethodPost, path: "/transfers", body: body})
}
