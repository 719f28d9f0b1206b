package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/okian/xendit/internal/xendit"
)

// command registers its flags on fs and returns the call to make once they
// are parsed.
type command func(r *Runner, fs *flag.FlagSet) func(ctx context.Context) (reply, error)

var commands = map[string]command{
	"balance": func(r *Runner, _ *flag.FlagSet) func(context.Context) (reply, error) {
		return func(ctx context.Context) (reply, error) {
			return asReply(r.api.GetBalance(ctx))
		}
	},

	"create-account": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		email := fs.String("email", "", "account email (required)")
		accountType := fs.String("type", string(xendit.AccountTypeManaged), "MANAGED or OWNED")
		businessName := fs.String("business-name", "", "public profile business name (OWNED only)")
		return func(ctx context.Context) (reply, error) {
			if err := required("email", *email); err != nil {
				return nil, err
			}
			var profile *xendit.PublicProfile
			if *businessName != "" {
				profile = &xendit.PublicProfile{BusinessName: *businessName}
			}
			return asReply(r.api.CreateAccount(ctx, *email, xendit.AccountType(*accountType), profile))
		}
	},

	"transfer": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		reference := fs.String("reference", "", "unique transfer reference (generated when empty)")
		source := fs.String("source", "", "source user id (required)")
		destination := fs.String("destination", "", "destination user id (required)")
		amount := fs.Float64("amount", 0, "amount to move (required)")
		return func(ctx context.Context) (reply, error) {
			if err := required("source", *source); err != nil {
				return nil, err
			}
			if err := required("destination", *destination); err != nil {
				return nil, err
			}
			if err := positive("amount", *amount); err != nil {
				return nil, err
			}
			return asReply(r.api.Transfer(ctx, r.orNewID(*reference), *source, *destination, *amount))
		}
	},

	"create-customer": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		referenceID := fs.String("reference-id", "", "customer reference id (generated when empty)")
		email := fs.String("email", "", "customer email (required)")
		name := fs.String("name", "", "given names (required)")
		forUserID := fs.String("for-user-id", "", "sub-account id (default from config)")
		return func(ctx context.Context) (reply, error) {
			if err := required("email", *email); err != nil {
				return nil, err
			}
			if err := required("name", *name); err != nil {
				return nil, err
			}
			return asReply(r.api.CreateCustomer(ctx, r.orNewID(*referenceID), *email, *name, *forUserID))
		}
	},

	"transactions": func(r *Runner, _ *flag.FlagSet) func(context.Context) (reply, error) {
		return func(ctx context.Context) (reply, error) {
			return asReply(r.api.GetTransactions(ctx))
		}
	},

	"transaction": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		id := fs.String("id", "", "transaction id (required)")
		return func(ctx context.Context) (reply, error) {
			if err := required("id", *id); err != nil {
				return nil, err
			}
			return asReply(r.api.GetTransactionByID(ctx, *id))
		}
	},

	"create-va": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		externalID := fs.String("external-id", "", "external id (generated when empty)")
		bank := fs.String("bank", "", "bank code, e.g. BCA (required)")
		name := fs.String("name", "", "account holder name (required)")
		number := fs.String("number", "", "requested virtual account number")
		forUserID := fs.String("for-user-id", "", "sub-account id (default from config)")
		return func(ctx context.Context) (reply, error) {
			if err := required("bank", *bank); err != nil {
				return nil, err
			}
			if err := required("name", *name); err != nil {
				return nil, err
			}
			return asReply(r.api.CreateVirtualAccount(ctx, r.orNewID(*externalID), *bank, *name, *number, *forUserID))
		}
	},

	"get-va": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		id := fs.String("id", "", "virtual account id (required)")
		return func(ctx context.Context) (reply, error) {
			if err := required("id", *id); err != nil {
				return nil, err
			}
			return asReply(r.api.GetVirtualAccount(ctx, *id))
		}
	},

	"banks": func(r *Runner, _ *flag.FlagSet) func(context.Context) (reply, error) {
		return func(ctx context.Context) (reply, error) {
			return asReply(r.api.GetAllVirtualAccounts(ctx))
		}
	},

	"update-va": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		id := fs.String("id", "", "virtual account id (required)")
		externalID := fs.String("external-id", "", "new external id (null when empty)")
		return func(ctx context.Context) (reply, error) {
			if err := required("id", *id); err != nil {
				return nil, err
			}
			return asReply(r.api.UpdateVirtualAccount(ctx, *id, *externalID))
		}
	},

	"simulate-payment": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		externalID := fs.String("external-id", "", "virtual account external id (required)")
		amount := fs.Float64("amount", 0, "amount paid (required)")
		return func(ctx context.Context) (reply, error) {
			if err := required("external-id", *externalID); err != nil {
				return nil, err
			}
			if err := positive("amount", *amount); err != nil {
				return nil, err
			}
			return asReply(r.api.CustomerPaymentProcess(ctx, *externalID, *amount))
		}
	},

	"create-fee-rule": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		amount := fs.Float64("amount", 0, "flat fee in IDR (required)")
		return func(ctx context.Context) (reply, error) {
			if err := positive("amount", *amount); err != nil {
				return nil, err
			}
			return asReply(r.api.CreateFeeRule(ctx, *amount))
		}
	},

	"create-invoice": func(r *Runner, fs *flag.FlagSet) func(context.Context) (reply, error) {
		externalID := fs.String("external-id", "", "external id (generated when empty)")
		amount := fs.Float64("amount", 0, "invoice amount (required)")
		payerEmail := fs.String("payer-email", "", "payer email")
		description := fs.String("description", "", "invoice description")
		return func(ctx context.Context) (reply, error) {
			if err := positive("amount", *amount); err != nil {
				return nil, err
			}
			return asReply(r.api.CreateInvoice(ctx, r.orNewID(*externalID), *amount, *payerEmail, *description))
		}
	},

	"smoke": func(r *Runner, _ *flag.FlagSet) func(context.Context) (reply, error) {
		return func(ctx context.Context) (reply, error) {
			return nil, r.smoke(ctx)
		}
	},
}

// asReply drops the type parameter of a client result.
func asReply[T any](res *xendit.Result[T], err error) (reply, error) {
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Runner) orNewID(id string) string {
	if id != "" {
		return id
	}
	return r.newID()
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: -%s is required", ErrUsage, name)
	}
	return nil
}

func positive(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: -%s must be positive", ErrUsage, name)
	}
	return nil
}
