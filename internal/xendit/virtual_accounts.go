package xendit

import (
	"context"
	"net/http"
)

type virtualAccountRequest struct {
	ExternalID           string `json:"external_id"`
	BankCode             string `json:"bank_code"`
	Name                 string `json:"name"`
	VirtualAccountNumber string `json:"virtual_account_number"`
}

type updateVirtualAccountRequest struct {
	ExternalID *string `json:"external_id"`
}

type simulatePaymentRequest struct {
	Amount float64 `json:"amount"`
}

// CreateVirtualAccount creates a fixed virtual account for a customer.
func (c *Client) CreateVirtualAccount(ctx context.Context, externalID, bankCode, name, virtualAccountNumber, forUserID string) (*Result[VirtualAccount], error) {
	body := virtualAccountRequest{
		ExternalID:           externalID,
		BankCode:             bankCode,
		Name:                 name,
		VirtualAccountNumber: virtualAccountNumber,
	}
	return send[VirtualAccount](ctx, c, call{
		endpoint: "create_virtual_account",
		method:   http.MethodPost,
		path:     "/callback_virtual_accounts?for-user-id=" + c.userQuery(forUserID),
		body:     body,
	})
}

// GetVirtualAccount fetches a virtual account by its Xendit id.
func (c *Client) GetVirtualAccount(ctx context.Context, accountID string) (*Result[VirtualAccount], error) {
	id, err := pathID("get_virtual_account", accountID)
	if err != nil {
		return nil, err
	}
	return send[VirtualAccount](ctx, c, call{endpoint: "get_virtual_account", method: http.MethodGet, path: "/callback_virtual_accounts/" + id})
}

// GetAllVirtualAccounts lists the banks that can issue virtual accounts.
func (c *Client) GetAllVirtualAccounts(ctx context.Context) (*Result[[]VirtualAccountBank], error) {
	return send[[]VirtualAccountBank](ctx, c, call{endpoint: "get_all_virtual_accounts", method: http.MethodGet, path: "/available_virtual_account_banks"})
}

// UpdateVirtualAccount changes the external id of a virtual account. An empty
// externalID is sent as null.
func (c *Client) UpdateVirtualAccount(ctx context.Context, accountID, externalID string) (*Result[VirtualAccount], error) {
	id, err := pathID("update_virtual_account", accountID)
	if err != nil {
		return nil, err
	}
	var body updateVirtualAccountRequest
	if externalID != "" {
		body.ExternalID = &externalID
	}
	return send[VirtualAccount](ctx, c, call{endpoint: "update_virtual_account", method: http.MethodPatch, path: "/callback_virtual_accounts/" + id, body: body})
}

// CustomerPaymentProcess simulates a customer paying amount into the virtual
// account with the given external id. Test mode only.
func (c *Client) CustomerPaymentProcess(ctx context.Context, externalID string, amount float64) (*Result[SimulatedPayment], error) {
	id, err := pathID("customer_payment_process", externalID)
	if err != nil {
		return nil, err
	}
	return send[SimulatedPayment](ctx, c, call{
		endpoint: "customer_payment_process",
		method:   http.MethodPost,
		path:     "/callback_virtual_accounts/external_id=" + id + "/simulate_payment",
		body:     simulatePaymentRequest{Amount: amount},
	})
}
