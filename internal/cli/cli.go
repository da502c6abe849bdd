// Package cli implements the restcountries command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/restcountries-go/internal/app"
	"github.com/samvad-hq/restcountries-go/internal/config"
	"github.com/samvad-hq/restcountries-go/internal/logger"
	"github.com/samvad-hq/restcountries-go/internal/output"
	"github.com/samvad-hq/restcountries-go/internal/storage"
	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

const defaultHistoryLimit = 20

// Runner executes lookups and reads the journal.
type Runner interface {
	Run(ctx context.Context, req restcountries.Request) ([]byte, error)
	History(limit int) ([]storage.Entry, error)
	Close() error
}

// RunnerFactory builds a Runner for the effective configuration.
type RunnerFactory func(ctx context.Context, cfg *config.Config, log logger.Logger) (Runner, error)

// CLI holds shared state for all commands.
type CLI struct {
	cfg       *config.Config
	log       logger.Logger
	newRunner RunnerFactory

	fields     []string
	baseURL    string
	pick       string
	exportFile string
	compact    bool
}

// New creates a CLI backed by app.Lookup.
func New(cfg *config.Config, log logger.Logger) *CLI {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &CLI{
		cfg: cfg,
		log: log,
		newRunner: func(ctx context.Context, cfg *config.Config, log logger.Logger) (Runner, error) {
			return app.NewLookup(ctx, cfg, log)
		},
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "restcountries",
		Short:        "Query the REST Countries v2 API",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&c.fields, "fields", nil, "limit response fields (comma separated or repeated)")
	flags.StringVar(&c.baseURL, "base-url", "", "API base URL (overrides RESTCOUNTRIES_BASE_URL)")
	flags.StringVar(&c.pick, "pick", "", "gjson path applied to the response, e.g. '#.name'")
	flags.StringVar(&c.exportFile, "export", "", "exporters file; returned countries are sent to every enabled exporter")
	flags.BoolVar(&c.compact, "compact", false, "print compact JSON")

	root.AddCommand(c.allCommand())
	root.AddCommand(c.nameCommand())
	root.AddCommand(c.codeCommand())
	root.AddCommand(c.codesCommand())
	root.AddCommand(c.segmentCommand("currency CODE", "Countries using an ISO 4217 currency code", restcountries.CurrencyRequest))
	root.AddCommand(c.segmentCommand("lang CODE", "Countries speaking an ISO 639 language code", restcountries.LanguageRequest))
	root.AddCommand(c.segmentCommand("capital NAME", "Countries by capital city", restcountries.CapitalRequest))
	root.AddCommand(c.segmentCommand("callingcode CODE", "Countries by calling code", restcountries.CallingCodeRequest))
	root.AddCommand(c.regionCommand())
	root.AddCommand(c.blocCommand())
	root.AddCommand(c.historyCommand())

	return root
}

// effectiveConfig applies flag overrides on a copy of the loaded config.
func (c *CLI) effectiveConfig() *config.Config {
	cfg := *c.cfg
	if v := strings.TrimSpace(c.baseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(c.exportFile); v != "" {
		cfg.ExportersFile = v
	}
	return &cfg
}

func (c *CLI) requestOptions() []restcountries.RequestOption {
	if len(c.fields) == 0 {
		return nil
	}
	return []restcountries.RequestOption{restcountries.WithFields(c.fields...)}
}

// execute builds the runner, issues req and prints the response.
func (c *CLI) execute(cmd *cobra.Command, req restcountries.Request, buildErr error) error {
	if buildErr != nil {
		return buildErr
	}

	runner, err := c.newRunner(cmd.Context(), c.effectiveConfig(), c.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := runner.Close(); cerr != nil {
			c.log.WarnObj("runner close failed", "error", cerr.Error())
		}
	}()

	body, runErr := runner.Run(cmd.Context(), req)
	if body != nil {
		if err := output.Write(cmd.OutOrStdout(), body, c.pick, c.compact); err != nil {
			return err
		}
	}
	return runErr
}

func (c *CLI) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "All countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := restcountries.AllRequest(c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

func (c *CLI) nameCommand() *cobra.Command {
	var fullText bool
	cmd := &cobra.Command{
		Use:   "name NAME",
		Short: "Countries by native or partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := restcountries.NameRequest(args[0], fullText, c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
	cmd.Flags().BoolVar(&fullText, "full-text", false, "match the full country name")
	return cmd
}

func (c *CLI) codeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "code CODE",
		Short: "Country by ISO 3166 alpha-2 or alpha-3 code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := restcountries.CodeRequest(args[0], c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

func (c *CLI) codesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes CODE...",
		Short: "Countries by a list of codes; a single 'co;no;ee' argument is also accepted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := restcountries.CodeSeq(args...)
			if len(args) == 1 {
				codes = restcountries.CodeText(args[0])
			}
			req, err := restcountries.CodesRequest(codes, c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

// segmentCommand covers the endpoints taking a single path argument.
func (c *CLI) segmentCommand(use, short string, build func(string, ...restcountries.RequestOption) (restcountries.Request, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := build(args[0], c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

func (c *CLI) regionCommand() *cobra.Command {
	valid := make([]string, 0, len(restcountries.Regions()))
	for _, r := range restcountries.Regions() {
		valid = append(valid, string(r))
	}
	return &cobra.Command{
		Use:       "region REGION",
		Short:     "Countries by region",
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := restcountries.RegionRequest(restcountries.Region(args[0]), c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

func (c *CLI) blocCommand() *cobra.Command {
	valid := make([]string, 0, len(restcountries.RegionalBlocs()))
	for _, b := range restcountries.RegionalBlocs() {
		valid = append(valid, string(b))
	}
	return &cobra.Command{
		Use:       "bloc BLOC",
		Short:     "Countries by regional bloc",
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := restcountries.RegionalBlocRequest(restcountries.RegionalBloc(args[0]), c.requestOptions()...)
			return c.execute(cmd, req, err)
		},
	}
}

func (c *CLI) historyCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently journaled lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := c.newRunner(cmd.Context(), c.effectiveConfig(), c.log)
			if err != nil {
				return err
			}
			defer runner.Close()

			entries, err := runner.History(limit)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}
			if entries == nil {
				entries = []storage.Entry{}
			}
			raw, err := json.Marshal(entries)
			if err != nil {
				return fmt.Errorf("encode journal: %w", err)
			}
			return output.Write(cmd.OutOrStdout(), raw, c.pick, c.compact)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum entries to show (0 for all)")
	return cmd
}
