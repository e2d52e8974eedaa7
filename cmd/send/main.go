// Command send delivers a single SMS through Ballou using the service
// configuration and prints the normalized response.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oggyb/ballou-sms/internal/ballou"
	"github.com/oggyb/ballou-sms/internal/config"
	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
)

// options collects repeated -o KEY=VALUE flags.
type options map[string]string

func (o options) String() string {
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (o options) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return errors.New("expected KEY=VALUE")
	}
	o[k] = v
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string, stdout, stderr io.Writer) int {
	opts := options{}

	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(stderr)
	to := fs.String("to", "", "recipient phone number (sent as D)")
	msg := fs.String("m", "", "message text")
	endpoint := fs.String("endpoint", ballou.Endpoint, "gateway endpoint")
	fs.Var(opts, "o", "provider option override KEY=VALUE (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *msg == "" {
		fmt.Fprintln(stderr, "send: -m is required")
		fs.Usage()
		return 2
	}
	if *to != "" {
		opts[ballou.KeyDest] = *to
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(stderr, "send:", err)
		return 1
	}

	lg := zaplog.New(cfg.Log.Level, cfg.IsDevelopment()).Named("ballou")
	defer lg.Sync()

	gateway, err := ballou.Factory{Logger: lg, Endpoint: *endpoint}.Make(cfg.Ballou.Gateway())
	if err != nil {
		fmt.Fprintln(stderr, "send:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := gateway.Notify(ctx, *msg, opts)
	if err != nil {
		fmt.Fprintln(stderr, "send:", err)
		return 1
	}

	status, body := resp.RawHTTP()
	fmt.Fprintf(stdout, "success: %t\nmessage: %s\nstatus:  %d\n", resp.Success(), resp.Message(), status)
	if body != "" {
		fmt.Fprintf(stdout, "raw:     %s\n", body)
	}

	if !resp.Success() {
		return 1
	}
	return 0
}
