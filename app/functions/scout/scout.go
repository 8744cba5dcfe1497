// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cloudzero/pacman/app/build"
	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/logging"
	"github.com/cloudzero/pacman/app/utils/scout"
	"github.com/cloudzero/pacman/app/utils/scout/google"
	"github.com/cloudzero/pacman/app/utils/scout/host"
	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

type options struct {
	outputFormat string
	timeout      time.Duration
	verbose      bool
}

// newScout builds the discovery chain; replaced in tests.
var newScout = func(timeout time.Duration) types.Scout {
	return scout.NewScout(scout.WithProbeTimeout(timeout))
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "scout",
		Short: "Report the cloud, zone and host this process runs on",
		Long: `scout probes the Kubernetes API, then the AWS, Azure, Google Cloud and
OpenStack metadata services in turn, and reports the first that answers.

Running 'scout' without a subcommand is the same as 'scout locate'.`,
		Version:       build.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocate(cmd.Context(), out, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", "json", "Output format (json, yaml, table)")
	rootCmd.PersistentFlags().DurationVarP(&opts.timeout, "timeout", "t", metadata.DefaultTimeout, "Timeout of each metadata probe")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every probe attempt to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "locate",
		Short: "Discover the cloud and zone, and read the hostname",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocate(cmd.Context(), out, opts)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "host",
		Short: "Print the hostname",
		RunE: func(_ *cobra.Command, _ []string) error {
			name, err := host.Hostname()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, name)
			return err
		},
	})

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runLocate(ctx context.Context, out io.Writer, opts *options) error {
	switch opts.outputFormat {
	case "json", "yaml", "table":
	default:
		return fmt.Errorf("unsupported output format %q", opts.outputFormat)
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(
		logging.WithLevel(level),
		logging.WithSink(zerolog.ConsoleWriter{Out: os.Stderr}),
	)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	loc, err := pacman.NewLocator(newScout(opts.timeout)).Locate(ctx)
	if err != nil {
		return err
	}

	return printLocation(out, opts.outputFormat, loc)
}

func printLocation(out io.Writer, format string, loc pacman.Location) error {
	switch format {
	case "yaml":
		return yaml.NewEncoder(out).Encode(loc)
	case "table":
		if _, err := fmt.Fprintf(out, "Cloud: %s\nZone:  %s\n", loc.Cloud, loc.Zone); err != nil {
			return err
		}
		// GCP reports the zone path; show the region it belongs to
		if loc.Cloud == string(types.CloudProviderGoogle) {
			if _, err := fmt.Fprintf(out, "Region: %s\n", google.RegionFromZone(loc.Zone)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(out, "Host:  %s\n", loc.Host)
		return err
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(loc)
	}
}
