package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"recon.dev/pkg/recon/internal/domain"
	m "recon.dev/pkg/recon/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".recon-reports") && args.ID == "abc"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"view", "abc"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil).Once()

	cmd.SetArgs([]string{"view", "abc", "--output", "./reports-dir"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresID(t *testing.T) {
	cmd, _ := newTestRoot(t, newViewCmd())

	cmd.SetArgs([]string{"view"})
	require.Error(t, cmd.Execute())
}
