package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"market_gateway/internal/app/di"
	"market_gateway/internal/feature/marketdata/domain/entity"
	jwtmw "market_gateway/internal/platform/jwt"
	"market_gateway/internal/platform/logger"
)

// Exit codes by envelope status.
const (
	exitOK         = 0
	exitInternal   = 1
	exitBadRequest = 2
	exitNotFound   = 3
	exitUpstream   = 4
	exitTimeout    = 5
)

// exitCode maps an envelope status to the process exit code.
func exitCode(s entity.Status) int {
	switch s {
	case entity.StatusOK:
		return exitOK
	case entity.StatusBadRequest:
		return exitBadRequest
	case entity.StatusNotFound:
		return exitNotFound
	case entity.StatusUpstream:
		return exitUpstream
	case entity.StatusTimeout:
		return exitTimeout
	default:
		return exitInternal
	}
}

// gatewayFunc answers one invocation. Tests replace it with a stub.
type gatewayFunc func(ctx context.Context, c entity.Capability, p entity.Params) entity.Envelope

// cli holds the state shared by every subcommand.
type cli struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	handle gatewayFunc
	code   int
}

// Execute runs the command line and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{v: viper.New(), out: stdout, errOut: stderr}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil && c.code == exitOK {
		return exitBadRequest
	}
	return c.code
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "marketcli",
		Short:        "Query stock, crypto, exchange-rate and economic data through the market gateway",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.Init(logger.Config{Level: c.v.GetString("log-level"), Format: "text"}, cmd.ErrOrStderr())
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().Bool("json", false, "print the raw response envelope as JSON")
	root.PersistentFlags().Duration("timeout", 15*time.Second, "maximum time to wait for an answer")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	c.v.SetEnvPrefix("MARKETCLI")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		c.newStockCmd(),
		c.newCryptoCmd(),
		c.newRatesCmd(),
		c.newConvertCmd(),
		c.newIndicatorCmd(),
		c.newTokenCmd(),
	)
	return root
}

func (c *cli) newStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stock SYMBOL",
		Short:   "Show the latest quote for a ticker symbol",
		Example: "  marketcli stock AAPL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), entity.CapabilityStock, entity.Params{Symbol: args[0]})
		},
	}
}

func (c *cli) newCryptoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crypto [COIN_ID...]",
		Short:   "Show prices for crypto assets (default: the five major coins)",
		Example: "  marketcli crypto bitcoin ethereum --vs eur",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), entity.CapabilityCrypto, entity.Params{
				CoinIDs:    args,
				VsCurrency: c.v.GetString("vs"),
			})
		},
	}
	cmd.Flags().String("vs", "usd", "quote currency")
	_ = c.v.BindPFlag("vs", cmd.Flags().Lookup("vs"))
	return cmd
}

func (c *cli) newRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rates BASE",
		Short:   "Show the exchange-rate table for a base currency",
		Example: "  marketcli rates USD",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), entity.CapabilityRates, entity.Params{Base: args[0]})
		},
	}
}

func (c *cli) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert FROM TO AMOUNT",
		Short:   "Convert an amount between two currencies",
		Example: "  marketcli convert USD EUR 100",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[2])
			}
			return c.run(cmd.Context(), entity.CapabilityConvert, entity.Params{From: args[0], To: args[1], Amount: amount})
		},
	}
}

func (c *cli) newIndicatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "indicator NAME",
		Short:   "Show the latest observations of an economic indicator",
		Example: "  marketcli indicator GDP\n  marketcli indicator interest-rate",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), entity.CapabilityIndicator, entity.Params{Indicator: args[0]})
		},
	}
}

func (c *cli) newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Issue a bearer token for the HTTP API (requires JWT_SECRET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := jwtmw.LoadConfig()
			if !cfg.Enabled() {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := jwtmw.NewGenerator(cfg.Secret, cfg.Expiration).GenerateToken(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, token)
			return err
		},
	}
}

// run invokes the gateway once and prints the envelope.
func (c *cli) run(ctx context.Context, capability entity.Capability, params entity.Params) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.v.GetDuration("timeout"))
	defer cancel()

	handle := c.handle
	if handle == nil {
		gw, err := di.NewGateway(ctx)
		if err != nil {
			c.code = exitInternal
			return err
		}
		defer gw.Close()
		handle = gw.Handle
	}

	env := handle(ctx, capability, params)
	c.code = exitCode(env.Status)

	if c.v.GetBool("json") {
		return printJSON(c.out, env)
	}
	if !env.Success {
		_, err := fmt.Fprintf(c.errOut, "error: %s: %s\n", env.Error.Kind, env.Error.Message)
		return err
	}
	return printEnvelope(c.out, env)
}
