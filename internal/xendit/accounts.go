package xendit

import (
	"context"
	"net/http"
)

type managedAccountRequest struct {
	Email string      `json:"email"`
	Type  AccountType `json:"type"`
}

// public_profile is always sent for OWNED accounts, null included.
type ownedAccountRequest struct {
	Email         string         `json:"email"`
	Type          AccountType    `json:"type"`
	PublicProfile *PublicProfile `json:"public_profile"`
}

// CreateAccount creates a sub-account. An empty accountType means MANAGED.
// Any type other than MANAGED or OWNED fails with ErrInvalidAccountType
// before a request is made.
func (c *Client) CreateAccount(ctx context.Context, email string, accountType AccountType, profile *PublicProfile) (*Result[Account], error) {
	var body any
	switch accountType {
	case "", AccountTypeManaged:
		body = managedAccountRequest{Email: email, Type: AccountTypeManaged}
	case AccountTypeOwned:
		body = ownedAccountRequest{Email: email, Type: AccountTypeOwned, PublicProfile: profile}
	default:
		return nil, ErrInvalidAccountType
	}
	return send[Account](ctx, c, call{endpoint: "create_account", method: http.MethodPost, path: "/v2/accounts", body: body})
}
