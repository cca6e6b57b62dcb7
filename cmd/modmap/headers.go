package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modmap/internal/diagfmt"
	"modmap/internal/driver"
)

var headersCmd = &cobra.Command{
	Use:   "headers [flags] file.modulemap",
	Short: "List the public headers a module exposes",
	Long: `Headers parses a module map and prints every header a consumer may
import: headers that are neither private nor textual, including the
umbrella header, across the module and its submodules`,
	Args: cobra.ExactArgs(1),
	RunE: runHeaders,
}

func init() {
	headersCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	headersCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache")
	headersCmd.Flags().Bool("drop-cache", false, "invalidate the on-disk result cache first")
}

type headersPayload struct {
	Module  string   `json:"module"`
	Headers []string `json:"headers"`
}

func runHeaders(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, s)
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if s.cfg.Cache.Enabled && !noCache {
		cache, err = driver.OpenDiskCache("modmap", s.cfg.Cache.Dir)
		if err != nil && !s.quiet {
			fmt.Fprintf(os.Stderr, "cache unavailable: %v\n", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to drop cache: %w", err)
			}
		}
	}

	payload, result, err := driver.PublicHeadersCached(cache, path, s.maxDiagnostics)
	if err != nil {
		return err
	}

	if result != nil && !s.quiet && result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     s.colorStderr,
			Context:   2,
			ShowNotes: true,
		})
	}
	if payload.Broken {
		if result != nil && result.Err != nil {
			return result.Err
		}
		return fmt.Errorf("%s: module map failed to parse", path)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(headersPayload{Module: payload.ModuleName, Headers: payload.Headers})
	case "pretty":
		for _, h := range payload.Headers {
			fmt.Println(h)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
