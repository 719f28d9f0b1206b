// Package cli implements the commands of the xendit binary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/xendit/internal/xendit"
	"github.com/okian/xendit/pkg/logger"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitAPIError = 2
)

// SetupLogging initializes the global logger on stderr.
func SetupLogging(level, format string) error {
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithFormat(format)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	return nil
}

// ExitCode maps the result of Runner.Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var apiErr *xendit.APIError
	if errors.As(err, &apiErr) {
		return ExitAPIError
	}
	return ExitFailure
}

// ShowHelp prints usage information.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `xendit - command line client for the Xendit API
================================================

Usage:
  xendit [global options] <command> [command options]

Global options:
  -metrics
        Print collected client metrics to stderr after the command
  -help
        Show this help message

Commands:
  balance             GET   /balance
  create-account      POST  /v2/accounts
                        -email, -type MANAGED|OWNED, -business-name
  transfer            POST  /transfers
                        -reference, -source, -destination, -amount
  create-customer     POST  /customers?for-user-id=
                        -reference-id, -email, -name, -for-user-id
  transactions        GET   /transactions
  transaction         GET   /transactions/{id}
                        -id
  create-va           POST  /callback_virtual_accounts?for-user-id=
                        -external-id, -bank, -name, -number, -for-user-id
  get-va              GET   /callback_virtual_accounts/{id}
                        -id
  banks               GET   /available_virtual_account_banks
  update-va           PATCH /callback_virtual_accounts/{id}
                        -id, -external-id
  simulate-payment    POST  /callback_virtual_accounts/external_id={id}/simulate_payment
                        -external-id, -amount
  create-fee-rule     POST  /fee_rules
                        -amount
  create-invoice      POST  /v2/invoices
                        -external-id, -amount, -payer-email, -description
  smoke               run balance, transactions and banks in sequence

Omitted references and external ids are generated.

Configuration (environment, or a YAML file named by XENDIT_CONFIG; a .env
file in the working directory is loaded first):
  XENDIT_SECRET_KEY   API secret key (required for every command)
  XENDIT_BASE_URL     API host (default https://api.xendit.co)
  XENDIT_TIMEOUT_MS   per-request timeout (default 30000)
  XENDIT_FOR_USER_ID  default sub-account for for-user-id
  XENDIT_LOG_LEVEL    debug, info, warn, error (default info)
  XENDIT_LOG_FORMAT   text or json (default text)

The response body is written to stdout unchanged. Exit status is 0 on a 2xx
reply, 2 on any other reply and 1 when no reply was received.

Examples:
  xendit balance
  xendit create-va -external-id 1 -bank BCA -name Faisal -number 9999100141
  xendit -metrics create-invoice -amount 100 -payer-email a@b.co -description "demo invoice"
`)
}
