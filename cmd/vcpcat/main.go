// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"

	vcp "github.com/saferwall/vcpcat"
	"github.com/saferwall/vcpcat/internal/config"
	"github.com/saferwall/vcpcat/internal/trace"
)

var (
	versionFlag string
	logger      = log.NewStdLogger(os.Stdout)
)

func parseVersion(s string) (vcp.Version, error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return vcp.Version{}, fmt.Errorf("malformed MCCS version %q, want e.g. 2.2", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return vcp.Version{}, fmt.Errorf("malformed MCCS version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return vcp.Version{}, fmt.Errorf("malformed MCCS version %q: %w", s, err)
	}
	return vcp.Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

func parseCode(s string) (vcp.FeatureCode, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("malformed feature code %q, want hex e.g. 10 or 0x10", s)
	}
	return vcp.FeatureCode(v), nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "CODE\tNAME\tFLAGS\tVERSION-SPECIFIC")
	listed := vcp.ListFeatures()
	for i := 0; i < vcp.FeatureCount(); i++ {
		en, err := vcp.GetByIndex(i)
		if err != nil {
			return err
		}
		row := listed[i]
		fmt.Fprintf(w, "0x%02X\t%s\t%s\t%t\n", en.Code, row.Name, row.Flags, row.VersionSpecific)
	}
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	code, err := parseCode(args[0])
	if err != nil {
		return err
	}
	v, err := parseVersion(versionFlag)
	if err != nil {
		return err
	}

	owned := vcp.LookupOrSynthesize(code)
	if sub, ok := owned.(vcp.SynthesizedEntry); ok {
		defer sub.Release()
	}
	en := owned.Entry()

	flags := vcp.ResolvedFlags(en, v)
	fmt.Printf("code:    0x%02X\n", code)
	fmt.Printf("name:    %s\n", vcp.FeatureNameAt(code, v))
	fmt.Printf("flags:   %s\n", vcp.InterpretFlags(flags))
	fmt.Printf("valid at: %v\n", vcp.ValidVersions(en))
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	code, err := parseCode(args[0])
	if err != nil {
		return err
	}
	v, err := parseVersion(versionFlag)
	if err != nil {
		return err
	}

	owned := vcp.LookupOrSynthesize(code)
	if sub, ok := owned.(vcp.SynthesizedEntry); ok {
		defer sub.Release()
	}
	en := owned.Entry()

	rest := args[1:]
	if len(rest) == 4 {
		b := make([]byte, 4)
		for i, a := range rest {
			n, err := strconv.ParseUint(a, 16, 8)
			if err != nil {
				return fmt.Errorf("malformed byte %q: %w", a, err)
			}
			b[i] = byte(n)
		}
		resp := vcp.NonTableResponse{VCPCode: code, MH: b[0], ML: b[1], SH: b[2], SL: b[3]}
		ok, text, err := vcp.FormatNonTable(en, v, resp)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(text + " (out of spec)")
			return nil
		}
		fmt.Println(text)
		return nil
	}

	buf := make([]byte, len(rest))
	for i, a := range rest {
		n, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			return fmt.Errorf("malformed byte %q: %w", a, err)
		}
		buf[i] = byte(n)
	}
	ok, text, err := vcp.FormatTable(en, v, buf)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(text + " (out of spec)")
		return nil
	}
	fmt.Println(text)
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	r, err := trace.Open(args[0], logger)
	if err != nil {
		return err
	}
	defer r.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for {
		rec, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		switch rec.Kind {
		case trace.NonTable:
			owned := vcp.LookupOrSynthesize(rec.Code)
			en := owned.Entry()
			formatted, text, err := vcp.FormatNonTable(en, rec.Version, rec.NonTable)
			if sub, ok := owned.(vcp.SynthesizedEntry); ok {
				sub.Release()
			}
			if err != nil {
				fmt.Fprintf(w, "0x%02X\t%s\terror: %v\n", rec.Code, rec.Version, err)
				continue
			}
			if !formatted {
				fmt.Fprintf(w, "0x%02X\t%s\t%s (out of spec)\n", rec.Code, rec.Version, text)
				continue
			}
			fmt.Fprintf(w, "0x%02X\t%s\t%s\n", rec.Code, rec.Version, text)

		case trace.Table:
			owned := vcp.LookupOrSynthesize(rec.Code)
			en := owned.Entry()
			formatted, text, err := vcp.FormatTable(en, rec.Version, rec.Table)
			if sub, ok := owned.(vcp.SynthesizedEntry); ok {
				sub.Release()
			}
			if err != nil {
				fmt.Fprintf(w, "0x%02X\t%s\terror: %v\n", rec.Code, rec.Version, err)
				continue
			}
			if !formatted {
				fmt.Fprintf(w, "0x%02X\t%s\t%s (out of spec)\n", rec.Code, rec.Version, text)
				continue
			}
			fmt.Fprintf(w, "0x%02X\t%s\t%s\n", rec.Code, rec.Version, text)

		case trace.ModelString:
			fmt.Fprintf(w, "-\t-\tmonitor model: %s\n", rec.Text)
		case trace.SerialString:
			fmt.Fprintf(w, "-\t-\tmonitor serial: %s\n", rec.Text)
		}
	}
	return nil
}

func main() {
	vcp.MustInit(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	versionFlag = cfg.DefaultVersion

	rootCmd := &cobra.Command{
		Use:   "vcpcat",
		Short: "A VCP feature catalog and reply formatter",
		Long:  "vcpcat looks up and formats MCCS/DDC-CI VCP feature replies, built for monitor-control tooling by Saferwall",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the MCCS versions the catalog was validated against",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range vcp.SupportedVersions() {
				fmt.Println(v)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every feature in the catalog",
		RunE:  runList,
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup <code>",
		Short: "Look up a single feature code",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}

	formatCmd := &cobra.Command{
		Use:   "format <code> <byte>...",
		Short: "Format a reply for a feature: 4 hex bytes (mh ml sh sl) for a non-table reply, any other number for a table reply",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFormat,
	}

	replayCmd := &cobra.Command{
		Use:   "replay <trace-file>",
		Short: "Replay a capture trace through the catalog's formatters",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	rootCmd.PersistentFlags().StringVarP(&versionFlag, "version", "V", versionFlag, "MCCS version, e.g. 2.2")
	rootCmd.AddCommand(versionCmd, listCmd, lookupCmd, formatCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
