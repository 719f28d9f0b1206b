package xendit

import (
	"context"
	"net/http"
)

type feeRuleRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Routes      []FeeRoute `json:"routes"`
}

// CreateFeeRule creates the standard platform fee: a flat amount in IDR.
func (c *Client) CreateFeeRule(ctx context.Context, amount float64) (*Result[FeeRule], error) {
	body := feeRuleRequest{
		Name:        FeeRuleName,
		Description: FeeRuleDescription,
		Routes:      []FeeRoute{{Unit: FeeUnitFlat, Amount: amount, Currency: CurrencyIDR}},
	}
	return send[FeeRule](ctx, c, call{endpoint: "create_fee_rule", method: http.MethodPost, path: "/fee_rules", body: body})
}
