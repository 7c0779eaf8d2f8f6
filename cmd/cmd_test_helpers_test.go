package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	domainmocks "recon.dev/pkg/recon/internal/domain/mocks"
)

// newTestRoot builds a root command with sub attached, a mocked workflow and
// logging redirected into the test's temp dir.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	t.Setenv("RECON_LOG_FILENAME", filepath.Join(t.TempDir(), "recon.log"))

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}
