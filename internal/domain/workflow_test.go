package domain_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "recon.dev/pkg/recon/internal/adapter/mocks"
	controllermocks "recon.dev/pkg/recon/internal/controller/mocks"
	"recon.dev/pkg/recon/internal/domain"
	domainmocks "recon.dev/pkg/recon/internal/domain/mocks"
	m "recon.dev/pkg/recon/internal/model"
)

type workflowMocks struct {
	fs         *adaptermocks.MockSourceFSAdapter
	input      *adaptermocks.MockInputAdapter
	store      *adaptermocks.MockReportStore
	ui         *controllermocks.MockUI
	reconciler *domainmocks.MockReconciler
}

func newWorkflowMocks(t *testing.T) (*workflowMocks, domain.Workflow) {
	mocks := &workflowMocks{
		fs:         adaptermocks.NewMockSourceFSAdapter(t),
		input:      adaptermocks.NewMockInputAdapter(t),
		store:      adaptermocks.NewMockReportStore(t),
		ui:         controllermocks.NewMockUI(t),
		reconciler: domainmocks.NewMockReconciler(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.input, mocks.store, mocks.ui, mocks.reconciler)

	return mocks, wf
}

func saveAssigningID(id string) func(context.Context, m.Path, m.StoredReport) (m.StoredReport, error) {
	return func(_ context.Context, _ m.Path, report m.StoredReport) (m.StoredReport, error) {
		report.ID = id
		report.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		return report, nil
	}
}

func reportWith(exitCode int, commands ...m.Command) m.Report {
	return m.Report{Commands: commands, Success: exitCode == 0, ExitCode: exitCode, ExitCodeSuccess: exitCode == 0}
}

func TestWorkflow_Reconcile_Success(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	commands := []m.Command{{Text: "ls", Kind: m.KindCommand}}

	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("smoke.json")).Return(commands, nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("stdout.txt")).Return([]byte("captured"), nil).Once()
	mocks.fs.EXPECT().FindPatternsFile(mock.Anything, m.Path("smoke.json")).Return(m.Path(""), nil).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.MatchedBy(func(run domain.Run) bool {
		return run.Transcript == "smoke.rep" &&
			run.Outcome.ExitCode == 0 &&
			run.Outcome.Stdout == "captured" &&
			run.Outcome.Err == nil &&
			len(run.Commands) == 1
	})).Return(domain.Result{
		Report: reportWith(0, m.Command{Text: "ls", Kind: m.KindCommand, Status: m.StatusMatched}),
		Origin: m.OriginPrimary,
	}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, m.Path(".recon-reports"), mock.MatchedBy(func(report m.StoredReport) bool {
		return report.Name == "smoke" && report.Origin == m.OriginPrimary
	})).RunAndReturn(saveAssigningID("id-1")).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, mock.MatchedBy(func(report m.StoredReport) bool {
		return report.ID == "id-1"
	}), mock.MatchedBy(func(diffs []m.CommandDiff) bool {
		return len(diffs) == 0
	})).Return(nil).Once()

	stored, err := wf.Reconcile(context.Background(), domain.RunArgs{
		Name:       "smoke",
		Commands:   "smoke.json",
		Transcript: "smoke.rep",
		Stdout:     "stdout.txt",
		Reports:    ".recon-reports",
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", stored.ID)
	assert.True(t, stored.Report.Success)
}

func TestWorkflow_Reconcile_FailedRunShowsDiffs(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	failed := m.Command{
		Text:           "date",
		Kind:           m.KindCommand,
		Status:         m.StatusFailed,
		ExpectedOutput: m.Ptr("year %{YEAR}"),
		ActualOutput:   m.Ptr("year 2026"),
	}

	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("t.json")).Return([]m.Command{{Text: "date"}}, nil).Once()
	mocks.input.EXPECT().LoadPatterns(mock.Anything, m.Path("patterns")).Return(map[string]string{"YEAR": "[0-9]{4}"}, nil).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.MatchedBy(func(run domain.Run) bool {
		return run.Outcome.ExitCode == 1 && run.Outcome.Err != nil && run.Outcome.Err.Error() == "exit status 1"
	})).Return(domain.Result{Report: reportWith(1, failed), Origin: m.OriginSecondary}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.MatchedBy(func(report m.StoredReport) bool {
		return report.Name == "t.json"
	})).RunAndReturn(saveAssigningID("id-2")).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, mock.MatchedBy(func(diffs []m.CommandDiff) bool {
		return len(diffs) == 1 && diffs[0].Command == "date" && !diffs[0].Diff.HasDiff && diffs[0].Unified != ""
	})).Return(nil).Once()

	stored, err := wf.Reconcile(context.Background(), domain.RunArgs{
		Commands: "t.json",
		ExitCode: 1,
		Error:    "exit status 1",
		Patterns: "patterns",
	})

	require.ErrorIs(t, err, domain.ErrRunFailed)
	assert.Equal(t, "id-2", stored.ID)
}

func TestWorkflow_Reconcile_LoadCommandsError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("broken.json")).Return(nil, errors.New("bad json")).Once()

	_, err := wf.Reconcile(context.Background(), domain.RunArgs{Commands: "broken.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load commands")
}

func TestWorkflow_Reconcile_StdoutReadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadCommands(mock.Anything, mock.Anything).Return([]m.Command{}, nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("missing.txt")).Return(nil, errors.New("no such file")).Once()

	_, err := wf.Reconcile(context.Background(), domain.RunArgs{Commands: "c.json", Stdout: "missing.txt"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read stdout")
}

func TestWorkflow_Reconcile_PatternDiscoveryIsBestEffort(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadCommands(mock.Anything, mock.Anything).Return([]m.Command{}, nil).Once()
	mocks.fs.EXPECT().FindPatternsFile(mock.Anything, m.Path("c.json")).Return(m.Path(".clt/patterns"), nil).Once()
	mocks.input.EXPECT().LoadPatterns(mock.Anything, m.Path(".clt/patterns")).Return(nil, errors.New("unreadable")).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(domain.Result{Report: reportWith(0)}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(saveAssigningID("id-3")).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := wf.Reconcile(context.Background(), domain.RunArgs{Commands: "c.json"})

	require.NoError(t, err)
}

func TestWorkflow_Reconcile_SaveError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadCommands(mock.Anything, mock.Anything).Return([]m.Command{}, nil).Once()
	mocks.fs.EXPECT().FindPatternsFile(mock.Anything, mock.Anything).Return(m.Path(""), nil).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(domain.Result{Report: reportWith(0)}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return(m.StoredReport{}, errors.New("disk full")).Once()

	_, err := wf.Reconcile(context.Background(), domain.RunArgs{Commands: "c.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report")
}

func TestWorkflow_Batch(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	manifest := m.Manifest{Runs: []m.ManifestRun{
		{Name: "first", Commands: "first.json", ExitCode: 0},
		{Name: "second", Commands: "second.json", ExitCode: 1},
		{Name: "broken", Commands: "broken.json"},
	}}

	mocks.input.EXPECT().LoadManifest(mock.Anything, m.Path("batch.yaml")).Return(manifest, nil).Once()
	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("first.json")).Return([]m.Command{}, nil).Once()
	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("second.json")).Return([]m.Command{}, nil).Once()
	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("broken.json")).Return(nil, errors.New("bad json")).Once()
	mocks.fs.EXPECT().FindPatternsFile(mock.Anything, mock.Anything).Return(m.Path(""), nil).Times(2)
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, run domain.Run) domain.Result {
		return domain.Result{Report: reportWith(run.Outcome.ExitCode)}
	}).Times(2)
	mocks.store.EXPECT().SaveReport(mock.Anything, m.Path("out"), mock.Anything).RunAndReturn(
		func(_ context.Context, _ m.Path, report m.StoredReport) (m.StoredReport, error) {
			report.ID = "id-" + report.Name
			return report, nil
		}).Times(2)
	mocks.ui.EXPECT().DisplayBatch(mock.Anything, mock.MatchedBy(func(reports []m.StoredReport) bool {
		return len(reports) == 2 && reports[0].Name == "first" && reports[1].Name == "second"
	})).Return(nil).Once()

	reports, err := wf.Batch(context.Background(), domain.BatchArgs{Manifest: "batch.yaml", Reports: "out", Threads: 2})

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrRunFailed)
	assert.Contains(t, err.Error(), "broken")
	require.Len(t, reports, 2)
	assert.Equal(t, "id-first", reports[0].ID)
	assert.Equal(t, "id-second", reports[1].ID)
}

func TestWorkflow_Batch_RespectsThreadLimit(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	const runs = 6

	manifest := m.Manifest{}
	for range runs {
		manifest.Runs = append(manifest.Runs, m.ManifestRun{Name: "run", Commands: "c.json"})
	}

	var (
		inFlight atomic.Int32
		peak     atomic.Int32
		mu       sync.Mutex
	)

	mocks.input.EXPECT().LoadManifest(mock.Anything, mock.Anything).Return(manifest, nil).Once()
	mocks.input.EXPECT().LoadCommands(mock.Anything, mock.Anything).Return([]m.Command{}, nil).Times(runs)
	mocks.fs.EXPECT().FindPatternsFile(mock.Anything, mock.Anything).Return(m.Path(""), nil).Times(runs)
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, domain.Run) domain.Result {
		current := inFlight.Add(1)

		mu.Lock()
		if current > peak.Load() {
			peak.Store(current)
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		return domain.Result{Report: reportWith(0)}
	}).Times(runs)
	mocks.store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(saveAssigningID("id")).Times(runs)
	mocks.ui.EXPECT().DisplayBatch(mock.Anything, mock.Anything).Return(nil).Once()

	reports, err := wf.Batch(context.Background(), domain.BatchArgs{Manifest: "batch.yaml", Threads: 2})

	require.NoError(t, err)
	assert.Len(t, reports, runs)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkflow_Batch_ManifestError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadManifest(mock.Anything, mock.Anything).Return(m.Manifest{}, errors.New("bad yaml")).Once()

	_, err := wf.Batch(context.Background(), domain.BatchArgs{Manifest: "batch.yaml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load manifest")
}

func TestWorkflow_View(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	stored := m.StoredReport{ID: "abc", Report: reportWith(1, m.Command{
		Text: "ls", Kind: m.KindCommand, Status: m.StatusFailed,
		ExpectedOutput: m.Ptr("a"), ActualOutput: m.Ptr("b"),
	})}

	mocks.store.EXPECT().LoadReport(mock.Anything, m.Path("reports"), "abc").Return(stored, nil).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, stored, mock.MatchedBy(func(diffs []m.CommandDiff) bool {
		return len(diffs) == 1 && diffs[0].Diff.HasDiff
	})).Return(nil).Once()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports", ID: "abc"}))
}

func TestWorkflow_View_NotFound(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	notFound := errors.New("report not found")
	mocks.store.EXPECT().LoadReport(mock.Anything, mock.Anything, "nope").Return(m.StoredReport{}, notFound).Once()

	err := wf.View(context.Background(), domain.ViewArgs{Reports: "reports", ID: "nope"})

	require.ErrorIs(t, err, notFound)
}

func TestWorkflow_List(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	summaries := []m.ReportSummary{{ID: "a"}, {ID: "b"}}

	mocks.store.EXPECT().ListReports(mock.Anything, m.Path("reports")).Return(summaries, nil).Once()
	mocks.ui.EXPECT().DisplayReportList(mock.Anything, summaries).Return(nil).Once()

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{Reports: "reports"}))
}

func TestWorkflow_Reconcile_SkipsPatternDiscovery(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("c.json")).Return([]m.Command{}, nil).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(domain.Result{Report: reportWith(0)}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, m.Path("out"), mock.Anything).RunAndReturn(saveAssigningID("id-1")).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := wf.Reconcile(context.Background(), domain.RunArgs{
		Commands:             "c.json",
		Reports:              "out",
		SkipPatternDiscovery: true,
	})

	require.NoError(t, err)
	mocks.fs.AssertNotCalled(t, "FindPatternsFile", mock.Anything, mock.Anything)
}

func TestWorkflow_Batch_SkipsPatternDiscovery(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	manifest := m.Manifest{Runs: []m.ManifestRun{{Name: "only", Commands: "only.json"}}}

	mocks.input.EXPECT().LoadManifest(mock.Anything, m.Path("batch.yaml")).Return(manifest, nil).Once()
	mocks.input.EXPECT().LoadCommands(mock.Anything, m.Path("only.json")).Return([]m.Command{}, nil).Once()
	mocks.reconciler.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(domain.Result{Report: reportWith(0)}).Once()
	mocks.store.EXPECT().SaveReport(mock.Anything, m.Path("out"), mock.Anything).RunAndReturn(saveAssigningID("id-1")).Once()
	mocks.ui.EXPECT().DisplayBatch(mock.Anything, mock.Anything).Return(nil).Once()

	reports, err := wf.Batch(context.Background(), domain.BatchArgs{
		Manifest:             "batch.yaml",
		Reports:              "out",
		Threads:              1,
		SkipPatternDiscovery: true,
	})

	require.NoError(t, err)
	require.Len(t, reports, 1)
	mocks.fs.AssertNotCalled(t, "FindPatternsFile", mock.Anything, mock.Anything)
}
