package xendit

import (
	"context"
	"net/http"
)

// GetBalance returns the balance of the current account.
func (c *Client) GetBalance(ctx context.Context) (*Result[Balance], error) {
	return send[Balance](ctx, c, call{endpoint: "get_balance", method: http.MethodGet, path: "/balance"})
}
