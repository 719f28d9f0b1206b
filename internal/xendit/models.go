package xendit

// Balance is the reply of GET /balance.
type Balance struct {
	Balance float64 `json:"balance"`
}

// AccountType selects how a sub-account is managed.
type AccountType string

// Account types accepted by CreateAccount.
const (
	AccountTypeManaged AccountType = "MANAGED"
	AccountTypeOwned   AccountType = "OWNED"
)

// PublicProfile is the business profile of an OWNED account.
type PublicProfile struct {
	BusinessName string `json:"business_name"`
}

// Account is a platform sub-account.
type Account struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Type          AccountType    `json:"type"`
	Status        string         `json:"status"`
	PublicProfile *PublicProfile `json:"public_profile,omitempty"`
	Created       string         `json:"created"`
	Updated       string         `json:"updated"`
}

// TransferResult is a balance transfer between two accounts.
type TransferResult struct {
	TransferID        string  `json:"transfer_id"`
	Reference         string  `json:"reference"`
	SourceUserID      string  `json:"source_user_id"`
	DestinationUserID string  `json:"destination_user_id"`
	Status            string  `json:"status"`
	Amount            float64 `json:"amount"`
	Created           string  `json:"created"`
}

// IndividualDetail holds the personal fields of a customer.
type IndividualDetail struct {
	GivenNames string `json:"given_names"`
	Surname    string `json:"surname,omitempty"`
}

// Customer is an end customer of a (sub-)account.
type Customer struct {
	ID               string            `json:"id"`
	ReferenceID      string            `json:"reference_id"`
	Email            string            `json:"email"`
	Type             string            `json:"type"`
	IndividualDetail *IndividualDetail `json:"individual_detail,omitempty"`
	Created          string            `json:"created"`
	Updated          string            `json:"updated"`
}

// Transaction is one ledger entry.
type Transaction struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	ChannelCategory string  `json:"channel_category"`
	ChannelCode     string  `json:"channel_code"`
	ReferenceID     string  `json:"reference_id"`
	Currency        string  `json:"currency"`
	Amount          float64 `json:"amount"`
	Created         string  `json:"created"`
	Updated         string  `json:"updated"`
}

// Link is a pagination link. Links are returned but never followed.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// TransactionList is the reply of GET /transactions.
type TransactionList struct {
	HasMore bool          `json:"has_more"`
	Data    []Transaction `json:"data"`
	Links   []Link        `json:"links,omitempty"`
}

// VirtualAccount is a fixed bank account number that receives payments.
type VirtualAccount struct {
	ID             string `json:"id"`
	OwnerID        string `json:"owner_id"`
	ExternalID     string `json:"external_id"`
	BankCode       string `json:"bank_code"`
	MerchantCode   string `json:"merchant_code"`
	Name           string `json:"name"`
	AccountNumber  string `json:"account_number"`
	Currency       string `json:"currency"`
	IsClosed       bool   `json:"is_closed"`
	IsSingleUse    bool   `json:"is_single_use"`
	Status         string `json:"status"`
	ExpirationDate string `json:"expiration_date"`
}

// VirtualAccountBank is a bank that can issue virtual accounts.
type VirtualAccountBank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SimulatedPayment is the acknowledgement of a simulated VA payment.
type SimulatedPayment struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Fee route constants sent by CreateFeeRule.
const (
	FeeRuleName        = "standard_platform_fee"
	FeeRuleDescription = "fee_for_all_transactions_accepted_on_behalf_of_vendors"
	FeeUnitFlat        = "flat"
	CurrencyIDR        = "IDR"
)

// FeeRoute is one fee component of a FeeRule.
type FeeRoute struct {
	Unit     string  `json:"unit"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// FeeRule is a platform fee configuration.
type FeeRule struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Routes      []FeeRoute `json:"routes"`
	Created     string     `json:"created"`
}

// Invoice is a hosted payment page.
type Invoice struct {
	ID          string  `json:"id"`
	ExternalID  string  `json:"external_id"`
	UserID      string  `json:"user_id"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	PayerEmail  string  `json:"payer_email"`
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
	InvoiceURL  string  `json:"invoice_url"`
	ExpiryDate  string  `json:"expiry_date"`
}
