package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/peteraglen/ticketdesk-go-client"
	"github.com/peteraglen/ticketdesk-go-client/internal/config"
	"github.com/peteraglen/ticketdesk-go-client/logadapter"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the CLI. extra options are appended to the ones
// derived from configuration.
func NewRootCmd(extra ...client.Option) *cobra.Command {
	var (
		method   string
		data     string
		envFile  string
		debug    bool
		selfTest bool
	)

	cmd := &cobra.Command{
		Use:   "ticketctl [endpoint]",
		Short: "Send a single request to the ticketing API",
		Long: "Send a single request to the ticketing API and print the response.\n\n" +
			"Credentials are read from TICKETDESK_API_KEY, TICKETDESK_USER and\n" +
			"TICKETDESK_DOMAIN, optionally via a .env file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg.LogLevel, debug)

			opts := []client.Option{
				client.WithSuffix(cfg.Suffix),
				client.WithTimeout(cfg.Timeout),
				client.WithTestOnConnect(cfg.TestOnConnect),
				client.WithRequestLogger(logadapter.NewZerolog(logger)),
			}
			opts = append(opts, extra...)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			c, err := client.New(ctx, cfg.APIKey, cfg.User, cfg.Domain, opts...)
			if err != nil {
				return err
			}

			if selfTest {
				if err := c.Test(ctx); err != nil {
					return err
				}
				logger.Info().Str("base_url", c.BaseURL()).Msg("connection ok")
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("endpoint is required")
			}

			var body any
			if data != "" {
				body = data
			}

			resp, err := c.Call(ctx, args[0], body, strings.ToUpper(method))
			if err != nil {
				return err
			}

			logger.Debug().
				Int("status", resp.StatusCode()).
				Str("kind", resp.Kind().String()).
				Msg("response received")

			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP verb: GET, POST, PUT or DELETE")
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body sent verbatim with POST, PUT and DELETE")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with TICKETDESK_* settings")
	cmd.Flags().BoolVar(&selfTest, "test", false, "only run the connectivity self-test")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

func newLogger(level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(lvl).With().Timestamp().Logger()
}

func printResponse(cmd *cobra.Command, resp *client.Response) error {
	out := cmd.OutOrStdout()

	if resp.Kind() == client.KindRaw {
		_, err := fmt.Fprintln(out, resp.Raw())
		return err
	}

	pretty, err := json.MarshalIndent(resp.Value(), "", "  ")
	if err != nil {
		return fmt.Errorf("format response: %w", err)
	}

	_, err = fmt.Fprintln(out, string(pretty))
	return err
}
