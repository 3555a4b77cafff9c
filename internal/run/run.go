// Package run sequences one triage pass: report, analyze, the selected
// cleanup actions, report again. The sequence is strictly sequential
// with no retries; past the pre-flight gate every failure is a warning.
package run

import (
	"github.com/lakshaymaurya-felt/winsweep/internal/analyze"
	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/report"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
	"github.com/lakshaymaurya-felt/winsweep/internal/winsvc"
)

// Runner executes the triage sequence for one drive. The step functions
// are injectable so tests can verify dispatch without touching the
// system; New binds the real implementations.
type Runner struct {
	Drive  string
	Op     config.Operation
	DryRun bool

	reportStep    func(drive string) (report.Snapshot, bool)
	analyzeStep   func(drive string) analyze.Result
	purgeTemp     func(drive string, dryRun bool) uint64
	purgeUpdate   func(drive string, dryRun bool) uint64
	purgeBin      func(drive string, dryRun bool) uint64
	launchCleanup func(drive string, dryRun bool) error
}

// New builds a Runner bound to the real reporter, analyzer, and cleanup
// actions.
func New(drive string, op config.Operation, dryRun bool) *Runner {
	return &Runner{
		Drive:  drive,
		Op:     op,
		DryRun: dryRun,

		reportStep: report.Query,
		analyzeStep: func(drive string) analyze.Result {
			var res analyze.Result
			ui.WithProgress("Measuring reclaimable space", func(setLabel func(string)) {
				res = analyze.Run(drive, setLabel)
			})
			return res
		},
		purgeTemp: clean.PurgeTempFiles,
		purgeUpdate: func(drive string, dryRun bool) uint64 {
			return clean.PurgeUpdateCache(drive, winsvc.SCM{}, dryRun)
		},
		purgeBin:      clean.PurgeRecycleBin,
		launchCleanup: clean.LaunchDiskCleanup,
	}
}

// Run executes the full sequence. It never fails: individual step
// failures have already been converted to warnings by the time they
// reach the dispatcher.
func (r *Runner) Run() {
	before, okBefore := r.reportStep(r.Drive)
	if okBefore {
		report.Print(r.Drive, before)
		ui.Printf("")
	}

	ui.Headerf("Reclaimable space on %s:", r.Drive)
	res := r.analyzeStep(r.Drive)
	analyze.Print(res)
	ui.Printf("")

	r.dispatch()

	after, okAfter := r.reportStep(r.Drive)
	if okAfter {
		ui.Printf("")
		report.Print(r.Drive, after)
	}
	if okBefore && okAfter && after.Free > before.Free {
		ui.Mutedf("  Free space grew by ~%s over this run.", core.FormatSize(after.Free-before.Free))
	}
}

// dispatch maps the selector onto cleanup actions. All deliberately
// excludes the interactive Disk Cleanup pass; it must be invoked
// explicitly.
func (r *Runner) dispatch() {
	var freed uint64

	switch r.Op {
	case config.OpAnalyze:
		return

	case config.OpTempFiles:
		freed = r.purgeTemp(r.Drive, r.DryRun)

	case config.OpWindowsUpdate:
		freed = r.purgeUpdate(r.Drive, r.DryRun)

	case config.OpRecycleBin:
		freed = r.purgeBin(r.Drive, r.DryRun)

	case config.OpSystemCleanup:
		if err := r.launchCleanup(r.Drive, r.DryRun); err != nil {
			ui.Warnf("%v", err)
		} else if !r.DryRun {
			ui.Successf("Disk Cleanup launched for drive %s: — it runs interactively and outlives this program.", r.Drive)
		}
		return

	case config.OpAll:
		freed += r.purgeTemp(r.Drive, r.DryRun)
		freed += r.purgeUpdate(r.Drive, r.DryRun)
		freed += r.purgeBin(r.Drive, r.DryRun)
		defer ui.Mutedf("  Tip: run with --operation SystemCleanup for the interactive Disk Cleanup pass.")
	}

	verb := "Freed"
	if r.DryRun {
		verb = "Would free"
	}
	ui.Successf("%s %s", verb, core.FormatSize(freed))
}
