package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/okian/xendit/internal/cli"
	"github.com/okian/xendit/internal/config"
	"github.com/okian/xendit/internal/xendit"
	"github.com/okian/xendit/pkg/logger"
	"github.com/okian/xendit/pkg/metrics"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xendit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showMetrics := fs.Bool("metrics", false, "print client metrics to stderr after the command")
	help := fs.Bool("help", false, "show help")
	if err := fs.Parse(args); err != nil {
		return cli.ExitFailure
	}
	if *help || fs.NArg() == 0 {
		cli.ShowHelp(stdout)
		return cli.ExitOK
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't configured yet.
		_, _ = io.WriteString(stderr, "failed to load config: "+err.Error()+"\n")
		return cli.ExitFailure
	}

	if err := cli.SetupLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return cli.ExitFailure
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	client, err := xendit.New(
		xendit.Credentials{SecretKey: cfg.SecretKey},
		xendit.WithBaseURL(cfg.BaseURL),
		xendit.WithTimeout(cfg.Timeout()),
		xendit.WithForUserID(cfg.ForUserID),
		xendit.WithLogger(logger.Named("xendit")),
	)
	if err != nil {
		log.Error(ctx, "failed to create client", logger.Error(err))
		return cli.ExitFailure
	}
	log.Debug(ctx, "client ready",
		logger.String("base_url", cfg.BaseURL),
		logger.Secret("secret_key", cfg.SecretKey),
		logger.Duration("timeout", cfg.Timeout()),
	)

	runner := cli.NewRunner(client,
		cli.WithStdout(stdout),
		cli.WithStderr(stderr),
		cli.WithLogger(logger.Named("cli")),
	)
	err = runner.Run(ctx, fs.Args())
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
	}

	if *showMetrics {
		if werr := metrics.Default().WriteText(stderr); werr != nil {
			log.Warn(ctx, "failed to write metrics", logger.Error(werr))
		}
	}
	return cli.ExitCode(err)
}
