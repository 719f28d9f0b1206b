package xendit

import (
	"context"
	"net/http"
)

type customerRequest struct {
	ReferenceID      string                  `json:"reference_id"`
	Email            string                  `json:"email"`
	IndividualDetail individualDetailRequest `json:"individual_detail"`
}

type individualDetailRequest struct {
	GivenNames string `json:"given_names"`
}

// CreateCustomer creates an individual customer on behalf of forUserID.
func (c *Client) CreateCustomer(ctx context.Context, referenceID, email, givenNames, forUserID string) (*Result[Customer], error) {
	body := customerRequest{
		ReferenceID:      referenceID,
		Email:            email,
		IndividualDetail: individualDetailRequest{GivenNames: givenNames},
	}
	return send[Customer](ctx, c, call{
		endpoint: "create_customers",
		method:   http.MethodPost,
		path:     "/customers?for-user-id=" + c.userQuery(forUserID),
		body:     body,
	})
}
