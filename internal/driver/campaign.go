package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/transform"
)

// CampaignOptions describes one batch run: every operator in Ops applied
// to every problem file under Dir, outputs written next to each other
// under OutDir.
type CampaignOptions struct {
	Dir    string
	OutDir string
	Ops    []transform.Transformer

	Seed           int64
	InDialect      dialect.Dialect
	OutDialect     dialect.Dialect
	Jobs           int
	MaxDiagnostics int

	// Cache, when non-nil, skips jobs whose run is already recorded and
	// whose output file still matches the recorded digest.
	Cache *SeedCache

	// Events, when non-nil, receives one event per job in completion
	// order. The campaign closes the channel when it returns.
	Events chan<- Event
}

type CampaignResult struct {
	Written int
	Skipped int
	Failed  int
}

// ListProblemFiles returns the sorted *.smt2 files under dir.
func ListProblemFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".smt2") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for a deterministic job order.
	sort.Strings(files)
	return files, nil
}

type campaignJob struct {
	path string
	tr   transform.Transformer
}

// RunCampaign fans the file x operator matrix out over an errgroup. Job
// outcomes are independent: a file that fails to parse fails its own
// jobs and nothing else. Only configuration and I/O setup errors abort
// the whole run.
func RunCampaign(ctx context.Context, opts CampaignOptions) (*CampaignResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}

	// A bad operator config would fail every job the same way; reject it
	// before touching the corpus.
	for _, tr := range opts.Ops {
		if err := tr.Validate(); err != nil {
			return nil, err
		}
	}

	files, err := ListProblemFiles(opts.Dir)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = opts.Dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	jobs := make([]campaignJob, 0, len(files)*len(opts.Ops))
	for _, path := range files {
		for _, tr := range opts.Ops {
			jobs = append(jobs, campaignJob{path: path, tr: tr})
		}
	}
	if len(jobs) == 0 {
		return &CampaignResult{}, nil
	}

	limit := opts.Jobs
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var written, skipped, failed atomic.Int64
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(limit, len(jobs)))

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ev := runJob(job, outDir, opts)
			switch ev.Kind {
			case EventDone:
				written.Add(1)
			case EventSkipped:
				skipped.Add(1)
			case EventFailed:
				failed.Add(1)
			}
			ev.Done = int(done.Add(1))
			ev.Total = len(jobs)
			if opts.Events != nil {
				select {
				case opts.Events <- ev:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &CampaignResult{
		Written: int(written.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}

func runJob(job campaignJob, outDir string, opts CampaignOptions) Event {
	ev := Event{Path: job.path, Op: job.tr.Op()}

	content, err := os.ReadFile(job.path)
	if err != nil {
		ev.Kind = EventFailed
		ev.Err = err
		return ev
	}

	base := strings.TrimSuffix(filepath.Base(job.path), ".smt2")
	outPath := filepath.Join(outDir, base+"."+job.tr.Op().String()+".smt2")
	ev.OutPath = outPath

	input := HashBytes(content)
	outD := opts.OutDialect
	if outD == dialect.Unknown {
		outD = opts.InDialect
	}
	key := RunKey(input, job.tr.Op().String(), opts.Seed, outD.String())

	var prev SeedPayload
	if hit, err := opts.Cache.Get(key, &prev); err == nil && hit {
		if cur, err := os.ReadFile(prev.OutputPath); err == nil && HashBytes(cur) == prev.Output {
			ev.Kind = EventSkipped
			return ev
		}
	}

	// Seed per job is derived from the run key, so each (file, operator)
	// pair mutates independently yet reproducibly for a fixed campaign
	// seed.
	jobSeed := int64(0)
	for i := 0; i < 8; i++ {
		jobSeed |= int64(key[i]) << (8 * i)
	}

	res, err := MutateBytes(job.path, content, MutateRequest{
		Transformer:    job.tr,
		InDialect:      opts.InDialect,
		OutDialect:     opts.OutDialect,
		Seed:           jobSeed,
		MaxDiagnostics: opts.MaxDiagnostics,
	})
	if err != nil {
		ev.Kind = EventFailed
		ev.Err = err
		return ev
	}

	if err := os.WriteFile(outPath, res.Output, 0o644); err != nil {
		ev.Kind = EventFailed
		ev.Err = err
		return ev
	}

	_ = opts.Cache.Put(key, &SeedPayload{
		Input:      input,
		Output:     HashBytes(res.Output),
		OutputPath: outPath,
		Op:         job.tr.Op().String(),
		Seed:       opts.Seed,
	})

	ev.Kind = EventDone
	return ev
}
