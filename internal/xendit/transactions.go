package xendit

import (
	"context"
	"net/http"
)

// GetTransactions lists transactions. Only the first page is fetched.
func (c *Client) GetTransactions(ctx context.Context) (*Result[TransactionList], error) {
	return send[TransactionList](ctx, c, call{endpoint: "get_transactions", method: http.MethodGet, path: "/transactions"})
}

// GetTransactionByID fetches one transaction.
func (c *Client) GetTransactionByID(ctx context.Context, transactionID string) (*Result[Transaction], error) {
	id, err := pathID("get_transaction_by_id", transactionID)
	if err != nil {
		return nil, err
	}
	return send[Transaction](ctx, c, call{endpoint: "get_transaction_by_id", method: http.MethodGet, path: "/transactions/" + id})
}
