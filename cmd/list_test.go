package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"recon.dev/pkg/recon/internal/domain"
)

func TestListCmd_UsesReportsDir(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{Reports: "archive"}).Return(nil).Once()

	cmd.SetArgs([]string{"list", "--output", "archive"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_PropagatesError(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(errors.New("index corrupted")).Once()

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}

func TestListCmd_PositionalArgsAreRejected(t *testing.T) {
	cmd, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"list", "./custom-reports"})
	require.Error(t, cmd.Execute())
}
