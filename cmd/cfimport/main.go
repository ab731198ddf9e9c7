package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/matijazezelj/cfimport/internal/config"
	"github.com/matijazezelj/cfimport/internal/pipeline"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	cfgFile   string
	logFormat string
	logLevel  string
	logger    *slog.Logger
)

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	root := &cobra.Command{
		Use:   "cfimport",
		Short: "cfimport — CloudFormation importer",
		Long:  "Convert AWS infrastructure exports into declarative CloudFormation templates.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			opts := &slog.HandlerOptions{Level: level}
			switch logFormat {
			case "json":
				logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
			case "text":
				logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
			default:
				return fmt.Errorf("invalid --log-format %q (use: text, json)", logFormat)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./cfimport.yaml)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text, json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		convertCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- convert ---

func convertCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "convert <export-dir>",
		Short: "Convert AWS exports in a directory into a CloudFormation template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				logger.Error("loading config", "error", err)
				os.Exit(1)
			}

			var f cloudformation.Format
			if format != "" {
				f, err = cloudformation.ParseFormat(format)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Converting exports from %s to CloudFormation...\n", args[0])
			p := pipeline.New(cfg, logger)
			r, err := p.Run(pipeline.Request{Dir: args[0], Output: output, Format: f})
			if err != nil {
				return err
			}
			printResult(r)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output file name (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "template format (json, yaml)")
	return cmd
}

func printResult(r *pipeline.Result) {
	for _, w := range r.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TYPE\tCOUNT")
	for _, c := range r.Counts {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", c.Type, c.Count)
	}
	_ = tw.Flush()

	fmt.Printf("CloudFormation template created: %s\n", r.OutputPath)
	fmt.Printf("Resources converted: %d\n", r.Total)
}

// --- version ---

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("cfimport %s\n", version)
		},
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (use: debug, info, warn, error)", s)
	}
}
