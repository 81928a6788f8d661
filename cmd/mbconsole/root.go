package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/output"
	"github.com/ottermq/mbconsole/pkg/logger"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/spf13/cobra"
)

// globalOptions are the connection flags shared by every client command.
type globalOptions struct {
	host     string
	port     string
	scheme   string
	username string
	password string
	insecure bool
	format   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "mbconsole",
		Short:         "Administrative console and command line client for a message broker.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.host, "host", "", "broker host (defaults to MBCONSOLE_BROKER_HOST)")
	f.StringVar(&opts.port, "port", "", "broker management port (defaults to MBCONSOLE_BROKER_PORT)")
	f.StringVar(&opts.scheme, "scheme", "", "http or https (defaults to MBCONSOLE_BROKER_SCHEME)")
	f.StringVarP(&opts.username, "username", "u", "admin", "broker username")
	f.StringVarP(&opts.password, "password", "p", "admin", "broker password")
	f.BoolVar(&opts.insecure, "insecure", false, "skip broker certificate verification")
	f.StringVar(&opts.format, "format", output.FormatTable, "output format: table or csv")

	root.AddCommand(newServeCmd(), newListCmd(opts), newShowCmd(opts), newCreateCmd(opts), newDeleteCmd(opts))
	return root
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// brokerClient applies the connection flags over the environment configuration.
func (o *globalOptions) brokerClient() (*client.Client, error) {
	cfg := config.LoadConfig(VERSION)
	logger.InitTo(cfg.LogLevel, os.Stderr)

	switch o.scheme {
	case "":
	case "http", "https":
		cfg.BrokerScheme = o.scheme
	default:
		return nil, usageError("unknown scheme %q (use http or https)", o.scheme)
	}
	if o.insecure {
		cfg.InsecureTLS = true
	}

	if o.host != "" {
		cfg.BrokerHost = o.host
	}
	if o.port != "" {
		cfg.BrokerPort = o.port
	}

	// a blank host makes the connection use the configured default broker
	creds := client.Credentials{Username: o.username, Password: o.password}
	return client.New(client.NewConnection(cfg, creds), metrics.NewNoopRecorder()), nil
}

func (o *globalOptions) formatter() (output.Formatter, error) {
	f, err := output.New(o.format)
	if err != nil {
		return nil, usageError("%v", err)
	}
	return f, nil
}
