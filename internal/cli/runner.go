package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/okian/xendit/internal/xendit"
	"github.com/okian/xendit/pkg/logger"
)

// API is the part of *xendit.Client the commands use.
type API interface {
	GetBalance(ctx context.Context) (*xendit.Result[xendit.Balance], error)
	CreateAccount(ctx context.Context, email string, accountType xendit.AccountType, profile *xendit.PublicProfile) (*xendit.Result[xendit.Account], error)
	Transfer(ctx context.Context, reference, sourceUserID, destinationUserID string, amount float64) (*xendit.Result[xendit.TransferResult], error)
	CreateCustomer(ctx context.Context, referenceID, email, givenNames, forUserID string) (*xendit.Result[xendit.Customer], error)
	GetTransactions(ctx context.Context) (*xendit.Result[xendit.TransactionList], error)
	GetTransactionByID(ctx context.Context, transactionID string) (*xendit.Result[xendit.Transaction], error)
	CreateVirtualAccount(ctx context.Context, externalID, bankCode, name, virtualAccountNumber, forUserID string) (*xendit.Result[xendit.VirtualAccount], error)
	GetVirtualAccount(ctx context.Context, accountID string) (*xendit.Result[xendit.VirtualAccount], error)
	GetAllVirtualAccounts(ctx context.Context) (*xendit.Result[[]xendit.VirtualAccountBank], error)
	UpdateVirtualAccount(ctx context.Context, accountID, externalID string) (*xendit.Result[xendit.VirtualAccount], error)
	CustomerPaymentProcess(ctx context.Context, externalID string, amount float64) (*xendit.Result[xendit.SimulatedPayment], error)
	CreateFeeRule(ctx context.Context, amount float64) (*xendit.Result[xendit.FeeRule], error)
	CreateInvoice(ctx context.Context, externalID string, amount float64, payerEmail, description string) (*xendit.Result[xendit.Invoice], error)
}

// reply is satisfied by every *xendit.Result.
type reply interface {
	Text() string
	OK() bool
	Err() *xendit.APIError
}

// Runner dispatches command lines to the API.
type Runner struct {
	api    API
	stdout io.Writer
	stderr io.Writer
	log    logger.Logger
	newID  func() string
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithStdout sets where response bodies are written.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.stdout = w
		}
	}
}

// WithStderr sets where usage errors are written.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.stderr = w
		}
	}
}

// WithLogger sets the runner logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithIDGenerator replaces the uuid generator used for omitted ids.
func WithIDGenerator(gen func() string) Option {
	return func(r *Runner) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// NewRunner creates a Runner for api.
func NewRunner(api API, opts ...Option) *Runner {
	r := &Runner{
		api:    api,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logger.Nop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes args[0] with the remaining args as its flags. The response body
// is written to stdout as received. A non-2xx reply is returned as *xendit.APIError.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		ShowHelp(r.stderr)
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownCommand, name, commandNames())
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	exec := cmd(r, fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	r.log.Debug(ctx, "running command", logger.String("command", name))
	res, err := exec(ctx)
	if err != nil {
		r.log.Error(ctx, "command failed", logger.String("command", name), logger.Error(err))
		return err
	}
	if res == nil {
		return nil
	}
	return r.emit(ctx, name, res)
}

func (r *Runner) emit(ctx context.Context, name string, res reply) error {
	if _, err := io.WriteString(r.stdout, res.Text()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, _ = io.WriteString(r.stdout, "\n")

	if apiErr := res.Err(); apiErr != nil {
		r.log.Warn(ctx, "command returned an API error",
			logger.String("command", name),
			logger.Int("status", apiErr.StatusCode),
			logger.String("error_code", apiErr.ErrorCode),
		)
		return apiErr
	}
	return nil
}

// smoke runs the read-only calls in sequence. A transport failure stops it;
// API errors are collected and returned together.
func (r *Runner) smoke(ctx context.Context) error {
	steps := []struct {
		name string
		call func(context.Context) (reply, error)
	}{
		{"balance", func(ctx context.Context) (reply, error) { return asReply(r.api.GetBalance(ctx)) }},
		{"transactions", func(ctx context.Context) (reply, error) { return asReply(r.api.GetTransactions(ctx)) }},
		{"banks", func(ctx context.Context) (reply, error) { return asReply(r.api.GetAllVirtualAccounts(ctx)) }},
	}

	var failed []error
	for _, step := range steps {
		res, err := step.call(ctx)
		if err != nil {
			return fmt.Errorf("smoke %s: %w", step.name, err)
		}
		r.log.Info(ctx, "smoke step done", logger.String("step", step.name), logger.Bool("ok", res.OK()))
		if err := r.emit(ctx, step.name, res); err != nil {
			failed = append(failed, fmt.Errorf("smoke %s: %w", step.name, err))
		}
	}
	return errors.Join(failed...)
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
