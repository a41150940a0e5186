// Command smtpeter-send posts a single email to the SMTPeter REST API.
//
// Configuration comes from the environment (or an env file):
// SMTPETER_TOKEN, SMTPETER_BASE_URL, SMTPETER_TIMEOUT, LOG_PROVIDER,
// LOG_LEVEL and, to export traces, TRACING_ENDPOINT.
//
// Exit status is 0 when the email was accepted, 1 when the API rejected
// it, and 2 on usage, configuration or transport errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/pure-golang/smtpeter/env"
	"github.com/pure-golang/smtpeter/logger"
	"github.com/pure-golang/smtpeter/mail/smtpeter"
	"github.com/pure-golang/smtpeter/tracing"
	"github.com/pure-golang/smtpeter/tracing/otlp"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitFailure  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	load := env.InitConfig
	if opts.envFile != "" {
		load = func(cfg any) error { return env.InitConfigFrom(opts.envFile, cfg) }
	}

	var logCfg logger.Config
	if err := load(&logCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	logger.InitDefault(logCfg)

	email := opts.email()
	if opts.dryRun {
		body, err := email.JSON()
		if err != nil {
			logger.WithErr(err).Error("failed to encode email")
			return exitFailure
		}
		fmt.Fprintln(stdout, body)
		return exitOK
	}

	var traceCfg otlp.Config
	if err := load(&traceCfg); err != nil {
		logger.WithErr(err).Error("failed to load tracing config")
		return exitFailure
	}
	if traceCfg.Enabled() {
		provider, err := tracing.Init(otlp.NewProviderBuilder(traceCfg))
		if err != nil {
			logger.WithErr(err).Warn("tracing disabled")
		}
		defer func() {
			if err := provider.Close(); err != nil {
				logger.WithErr(err).Warn("failed to flush traces")
			}
		}()
	}

	var cfg smtpeter.Config
	if err := load(&cfg); err != nil {
		logger.WithErr(err).Error("failed to load smtpeter config")
		return exitFailure
	}

	return send(ctx, smtpeter.NewClient(cfg, nil), email)
}

func send(ctx context.Context, client *smtpeter.Client, email *smtpeter.Email) int {
	res, err := client.Send(ctx, email)
	if err != nil {
		logger.FromContextWithErr(ctx, err).Error("email not sent")
		return exitFailure
	}

	if !res.OK() {
		slog.Error("email rejected",
			"status", res.StatusCode,
			"outcome", res.Outcome.String(),
			"error", res.Err().Error(),
		)
		return exitRejected
	}

	slog.Info("email accepted", "status", res.StatusCode)
	return exitOK
}
