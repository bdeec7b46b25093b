package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/driver"
	"smtfuzz/internal/prof"
	"smtfuzz/internal/transform"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign [flags] <directory>",
	Short: "Mutate every problem file in a directory",
	Long: `Campaign applies a set of operators to every *.smt2 file under a
directory in parallel. A smtfuzz.toml manifest in the directory (or any
parent) supplies defaults; flags override it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCampaign,
}

func init() {
	campaignCmd.Flags().String("ops", "", "comma-separated operators (default: all)")
	campaignCmd.Flags().String("out", "", "output directory (default: alongside the inputs)")
	campaignCmd.Flags().Int64("seed", 0, "campaign seed (0 = derive from current time)")
	campaignCmd.Flags().String("out-dialect", "", "output dialect (smt20|smt25), defaults to the input dialect")
	campaignCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	campaignCmd.Flags().Bool("no-cache", false, "rerun jobs even when cached")
	campaignCmd.Flags().String("progress", "auto", "progress UI (auto|on|off)")
	campaignCmd.Flags().String("cpu-profile", "", "write a CPU profile to the given file")
	campaignCmd.Flags().String("mem-profile", "", "write a heap profile to the given file")
}

func runCampaign(cmd *cobra.Command, args []string) error {
	dir := args[0]

	manifest, hasManifest, err := driver.LoadManifest(dir)
	if err != nil {
		return err
	}

	opts := driver.CampaignOptions{Dir: dir}
	if hasManifest {
		opts.Ops = manifest.Ops()
		opts.Seed = manifest.Campaign.Seed
		opts.OutDir = manifest.Campaign.OutDir
		opts.Jobs = manifest.Campaign.Jobs
		if s := manifest.Campaign.InDialect; s != "" {
			opts.InDialect, _ = dialect.Parse(s)
		}
		if s := manifest.Campaign.OutDialect; s != "" {
			opts.OutDialect, _ = dialect.Parse(s)
		}
	}

	if err := applyCampaignFlags(cmd, &opts); err != nil {
		return err
	}

	if len(opts.Ops) == 0 {
		for _, op := range transform.Ops() {
			opts.Ops = append(opts.Ops, transform.Default(op))
		}
	}
	if opts.InDialect == dialect.Unknown {
		opts.InDialect, err = inDialect(cmd)
		if err != nil {
			return err
		}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	opts.MaxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	if !noCache {
		cache, err := driver.OpenSeedCache("smtfuzz")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: seed cache unavailable: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return err
	}
	withUI := progressFlag == "on" ||
		(progressFlag == "auto" && !quiet && isTerminal(os.Stdout))

	cpuProfile, err := cmd.Flags().GetString("cpu-profile")
	if err != nil {
		return err
	}
	if cpuProfile != "" {
		if err := prof.StartCPU(cpuProfile); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer prof.StopCPU()
	}

	var result *driver.CampaignResult
	if withUI {
		result, err = runCampaignWithUI(cmd, opts)
	} else {
		result, err = runCampaignPlain(cmd, opts, quiet)
	}
	if err != nil {
		return err
	}

	memProfile, err := cmd.Flags().GetString("mem-profile")
	if err != nil {
		return err
	}
	if memProfile != "" {
		if err := prof.WriteMem(memProfile); err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "campaign: %d written, %d cached, %d failed (seed %d)\n",
			result.Written, result.Skipped, result.Failed, opts.Seed)
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d jobs failed", result.Failed)
	}
	return nil
}

func applyCampaignFlags(cmd *cobra.Command, opts *driver.CampaignOptions) error {
	if cmd.Flags().Changed("ops") {
		spec, err := cmd.Flags().GetString("ops")
		if err != nil {
			return err
		}
		opts.Ops = opts.Ops[:0]
		for _, name := range strings.Split(spec, ",") {
			op, err := transform.ParseOp(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			opts.Ops = append(opts.Ops, transform.Default(op))
		}
	}
	if cmd.Flags().Changed("out") {
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		opts.OutDir = out
	}
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		opts.Seed = seed
	}
	if cmd.Flags().Changed("jobs") {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		opts.Jobs = jobs
	}
	if cmd.Root().PersistentFlags().Changed("in-dialect") {
		d, err := inDialect(cmd)
		if err != nil {
			return err
		}
		opts.InDialect = d
	}
	if cmd.Flags().Changed("out-dialect") {
		s, err := cmd.Flags().GetString("out-dialect")
		if err != nil {
			return err
		}
		d, err := dialect.Parse(s)
		if err != nil {
			return err
		}
		opts.OutDialect = d
	}
	return nil
}

func runCampaignPlain(cmd *cobra.Command, opts driver.CampaignOptions, quiet bool) (*driver.CampaignResult, error) {
	events := make(chan driver.Event, 256)
	opts.Events = events

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if quiet {
				continue
			}
			switch ev.Kind {
			case driver.EventDone:
				fmt.Fprintf(os.Stdout, "  [%d/%d] %s %s -> %s\n", ev.Done, ev.Total, ev.Op, ev.Path, ev.OutPath)
			case driver.EventSkipped:
				fmt.Fprintf(os.Stdout, "  [%d/%d] %s %s (cached)\n", ev.Done, ev.Total, ev.Op, ev.Path)
			case driver.EventFailed:
				fmt.Fprintf(os.Stderr, "  [%d/%d] %s %s: %v\n", ev.Done, ev.Total, ev.Op, ev.Path, ev.Err)
			}
		}
	}()

	result, err := driver.RunCampaign(cmd.Context(), opts)
	<-done
	return result, err
}
