package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/transform"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	problems := map[string]string{
		"a.smt2": "(declare-fun x () String)\n(assert (= (str.len x) 1))\n",
		"b.smt2": `(assert (= y "hello"))` + "\n",
	}
	for name, src := range problems {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRunCampaignWritesEveryJob(t *testing.T) {
	dir := writeCorpus(t)
	outDir := t.TempDir()

	res, err := RunCampaign(context.Background(), CampaignOptions{
		Dir:            dir,
		OutDir:         outDir,
		Ops:            []transform.Transformer{transform.Nop{}, transform.Reverse{}},
		Seed:           7,
		InDialect:      dialect.New,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("campaign: %v", err)
	}
	if res.Written != 4 || res.Failed != 0 || res.Skipped != 0 {
		t.Fatalf("counts = %+v, want 4 written", res)
	}

	for _, name := range []string{"a.nop.smt2", "a.reverse.smt2", "b.nop.smt2", "b.reverse.smt2"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}
}

func TestRunCampaignEventStream(t *testing.T) {
	dir := writeCorpus(t)
	events := make(chan Event, 16)

	res, err := RunCampaign(context.Background(), CampaignOptions{
		Dir:            dir,
		OutDir:         t.TempDir(),
		Ops:            []transform.Transformer{transform.Nop{}},
		Seed:           7,
		InDialect:      dialect.New,
		MaxDiagnostics: 16,
		Events:         events,
	})
	if err != nil {
		t.Fatalf("campaign: %v", err)
	}

	var got []Event
	for ev := range events {
		got = append(got, ev)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, ev := range got {
		if ev.Kind != EventDone {
			t.Fatalf("event %+v is not done", ev)
		}
		if ev.Total != 2 || ev.Done < 1 || ev.Done > 2 {
			t.Fatalf("bad progress counters in %+v", ev)
		}
	}
	if res.Written != 2 {
		t.Fatalf("written = %d, want 2", res.Written)
	}
}

func TestRunCampaignSkipsCachedRuns(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenSeedCache("smtfuzz-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := writeCorpus(t)
	opts := CampaignOptions{
		Dir:            dir,
		OutDir:         t.TempDir(),
		Ops:            []transform.Transformer{transform.Nop{}, transform.Multiply{Factor: 2}},
		Seed:           11,
		InDialect:      dialect.New,
		MaxDiagnostics: 16,
		Cache:          cache,
	}

	first, err := RunCampaign(context.Background(), opts)
	if err != nil {
		t.Fatalf("first campaign: %v", err)
	}
	if first.Written != 4 || first.Skipped != 0 {
		t.Fatalf("first run counts = %+v", first)
	}

	second, err := RunCampaign(context.Background(), opts)
	if err != nil {
		t.Fatalf("second campaign: %v", err)
	}
	if second.Skipped != 4 || second.Written != 0 {
		t.Fatalf("second run counts = %+v, want all cached", second)
	}
}

func TestRunCampaignCountsFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.smt2"), []byte("(assert (= x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := RunCampaign(context.Background(), CampaignOptions{
		Dir:            dir,
		OutDir:         t.TempDir(),
		Ops:            []transform.Transformer{transform.Nop{}},
		Seed:           3,
		InDialect:      dialect.New,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("campaign: %v", err)
	}
	if res.Failed != 1 || res.Written != 0 {
		t.Fatalf("counts = %+v, want 1 failed", res)
	}
}

func TestRunCampaignRejectsBadConfig(t *testing.T) {
	dir := writeCorpus(t)
	_, err := RunCampaign(context.Background(), CampaignOptions{
		Dir:       dir,
		OutDir:    t.TempDir(),
		Ops:       []transform.Transformer{transform.Multiply{Factor: -1}},
		InDialect: dialect.New,
	})
	if err == nil {
		t.Fatalf("want config error")
	}
}
