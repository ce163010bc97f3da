// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/sslcheck/src/config"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/check"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/locale"
	"github.com/H0llyW00dzZ/sslcheck/src/internal/tlsconn"
	x509expiry "github.com/H0llyW00dzZ/sslcheck/src/internal/x509/expiry"
	"github.com/H0llyW00dzZ/sslcheck/src/logger"
	"github.com/H0llyW00dzZ/sslcheck/src/output"
	verpkg "github.com/H0llyW00dzZ/sslcheck/src/version"
)

var (
	// ErrDomainRequired is returned when no domain is given and no file is read.
	ErrDomainRequired = errors.New("cli: domain argument is required")

	// ErrCheckFailed is returned after a failed check has been reported.
	// The caller should exit non-zero without printing anything further.
	ErrCheckFailed = errors.New("cli: certificate check failed")
)

type options struct {
	short   bool
	json    bool
	table   bool
	verbose bool
	port    string
	file    string
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the sslcheck command. Every call returns an independent
// command with its own flag values.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}
	name := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   name + " [flags] <domain>",
		Short: "Prints the remainder of days of the life of a TLS certificate",
		Long: verpkg.String(version) + "\n" + verpkg.Author + "\n\n" +
			name + " <domain>         prints domain and remainder of days until cert expires",
		Example: fmt.Sprintf("  %[1]s example.com\n  %[1]s -s example.com\n  %[1]s -j -p 8443 example.com\n  %[1]s -f cert.pem", name),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate(verpkg.String(version) + "\n" + verpkg.Author + "\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.short, "short", "s", false, "prints only the days")
	flags.BoolVarP(&opts.json, "json", "j", false, "prints output as JSON")
	flags.BoolVarP(&opts.table, "table", "t", false, "prints output as a markdown table")
	flags.StringVarP(&opts.port, "port", "p", tlsconn.DefaultPort, "use custom port instead of 443")
	flags.StringVarP(&opts.file, "file", "f", "", "read the certificate from a local file instead of connecting")
	flags.BoolVar(&opts.verbose, "verbose", false, "print connection diagnostics to stderr")
	flags.BoolP("version", "v", false, "prints version")
	flags.BoolP("help", "h", false, "prints this menu")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if len(args) == 0 && opts.file == "" {
		return ErrDomainRequired
	}
	// Arguments are valid; from here on failures are reported, not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load("")
	if err != nil {
		return configFailed(cmd, args, opts, fmt.Errorf("loading config: %w", err))
	}

	defaultMode, err := output.ParseMode(cfg.Defaults.Output)
	if err != nil {
		return configFailed(cmd, args, opts, fmt.Errorf("config %s: %w", config.EnvConfigFile, err))
	}

	port := opts.port
	if !cmd.Flags().Changed("port") {
		port = cfg.Defaults.Port
	}

	mode := output.Select(opts.json, opts.short, opts.table, defaultMode)
	log := logger.New(opts.verbose, mode == output.JSON)
	log.SetOutput(cmd.ErrOrStderr())

	printer := locale.NewPrinter(locale.Detect(os.Getenv))
	formatter := output.New(mode, printer, cmd.OutOrStdout(), cmd.ErrOrStderr())
	calc := x509expiry.New()

	var result check.Result
	if opts.file != "" {
		label := ""
		if len(args) > 0 {
			label = args[0]
		}
		log.Printf("reading certificate from %s", opts.file)
		result = check.File(opts.file, label, calc)
	} else {
		result = checkRemote(cmd.Context(), tlsconn.NewTarget(args[0], port), cfg, calc, log)
	}

	logResult(log, result)

	if err := formatter.Write(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	// A certificate that was retrieved but has expired is a reported result,
	// not a failed run.
	if !result.OK() && !result.Kind().Expiry() {
		return fmt.Errorf("%w: %w", ErrCheckFailed, result.Err)
	}
	return nil
}

// configFailed returns err after printing the null JSON line when --json was
// given, so JSON consumers still get exactly one line.
func configFailed(cmd *cobra.Command, args []string, opts *options, err error) error {
	if !opts.json {
		return err
	}

	domain := opts.file
	if len(args) > 0 {
		domain = args[0]
	}

	f := output.New(output.JSON, nil, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if werr := f.Write(check.Failed(domain, "", err)); werr != nil {
		return fmt.Errorf("writing result: %w", werr)
	}
	return err
}

func checkRemote(ctx context.Context, target tlsconn.Target, cfg *config.Config, calc x509expiry.Calculator, log logger.Logger) check.Result {
	minVersion, err := tlsconn.ParseVersion(cfg.TLS.MinVersion)
	if err != nil {
		return check.Failed(target.Host, target.Port, err)
	}

	tc, err := tlsconn.New(tlsconn.WithMinVersion(minVersion))
	if err != nil {
		return check.Failed(target.Host, target.Port, err)
	}

	log.Printf("connecting to %s (SNI %s)", target.Address(), target.Host)
	return check.Remote(ctx, tc, target, calc)
}

func logResult(log logger.Logger, r check.Result) {
	if r.Peer != nil {
		log.Printf("negotiated %s with %s", tls.VersionName(r.Peer.Version), tls.CipherSuiteName(r.Peer.CipherSuite))
	}
	if r.Err != nil {
		log.Printf("check failed (%s): %v", r.Kind(), r.Err)
		return
	}
	log.Printf("certificate expires at %s", r.NotAfter.UTC().Format(time.RFC3339))
}
