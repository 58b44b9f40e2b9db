// erpctl is a command-line client for the ERP gRPC services. It shares the
// session file with other local front ends, so a token stored by
// "erpctl login" is used by every later command until the backend rejects it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/steelerp/erpclient/internal/config"
	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/session"
)

// errUsage marks errors caused by a malformed command line.
var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		endpoint  string
		tokenFile string
		timeout   time.Duration
		output    string
		verbose   bool
	)

	flagSet := pflag.NewFlagSet("erpctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&endpoint, "endpoint", envOr("ERP_GRPC_ENDPOINT", grpcclient.DefaultEndpoint), "ERP gRPC endpoint")
	flagSet.StringVar(&tokenFile, "token-file", envOr("TOKEN_FILE", config.DefaultTokenFile()), "session file holding the bearer token")
	flagSet.DurationVar(&timeout, "timeout", grpcclient.DefaultTimeout, "per-call timeout")
	flagSet.StringVarP(&output, "output", "o", formatTable, "output format: json, yaml or table")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log RPC failures to stderr")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if !validFormat(output) {
		return fmt.Errorf("%w: unknown output format %q", errUsage, output)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	level := slog.LevelError + 1
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := session.NewFileStore(tokenFile)
	sessions := session.NewManager(store, loginHint(stderr), "", logger)

	a := &app{
		sessions: sessions,
		stdin:    stdin,
		out:      stdout,
		format:   output,
	}

	// login and logout never touch the network.
	if rest[0] != "login" && rest[0] != "logout" {
		conn, err := grpcclient.Dial(endpoint)
		if err != nil {
			return err
		}
		defer conn.Close()

		client := grpcclient.New(grpcclient.Options{
			Tokens:  sessions,
			Session: sessions,
			Logger:  logger,
			Timeout: timeout,
		})
		a.facades = client.Facades(conn)
	}

	return a.exec(ctx, rest)
}

// loginHint tells the user how to recover from an expired session.
func loginHint(w io.Writer) session.Navigator {
	return session.NavigatorFunc(func(context.Context, string) {
		fmt.Fprintln(w, "Your session has expired. Run `erpctl login <token>` to sign in again.")
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `erpctl talks to the ERP invoice, customer and product services.

Usage:
  erpctl [flags] <command> [args]

Session:
  login <token>                     store the bearer token
  logout                            forget the stored token

Resources (invoice, customer, product):
  <resource> get <id>
  <resource> list [--page N] [--limit N] [filters]
  <resource> search <query> [--page N] [--limit N]
  <resource> create -f file.json    ("-" reads stdin)
  <resource> update <id> -f file.json
  <resource> delete <id>

Invoices:
  invoice number [status]           reserve the next invoice number
  invoice payments <id>             payment history
  invoice pay <id> -f payment.json  record a payment
  invoice status <id> <status>      change the invoice status
  invoice analytics [--from DATE] [--to DATE]

Products:
  product inventory <id> -f movement.json

Flags:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
}
