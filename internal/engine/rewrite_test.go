package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huguesb/preparator/internal/engine"
	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/step"
	"github.com/huguesb/preparator/internal/tui"
	"github.com/huguesb/preparator/testhelpers"
)

func newRewriter(t *testing.T, scene *testhelpers.Scene) *engine.Rewriter {
	t.Helper()

	replayer, repo := newReplayer(t, scene)
	return &engine.Rewriter{
		Git:      repo,
		Replayer: replayer,
		Splog:    tui.NewSplog(),
	}
}

func TestRebaseRegeneratesScriptedSteps(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "base.txt", "v1\n")
	})
	forkPoint := testhelpers.Must(scene.Repo.GetCurrentSHA())

	// feature: a manual commit and a scripted step that captures the
	// content of base.txt at apply time
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("add a", "a.txt", "a"))

	rewriter := newRewriter(t, scene)
	blob := step.Encode("copy base", "cp base.txt copy.txt")
	require.NoError(t, rewriter.Replayer.Applier.Apply(context.Background(), blob, "cp base.txt copy.txt"))
	testhelpers.ExpectFileContent(t, scene.Repo, "copy.txt", "v1\n")

	// master advances, changing the content the step depends on
	require.NoError(t, scene.Repo.CheckoutBranch("master"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("bump base", "base.txt", "v2\n"))
	newBase := testhelpers.Must(scene.Repo.GetCurrentSHA())

	require.NoError(t, rewriter.Rewrite(context.Background(), engine.RewriteRequest{
		Branch:      "feature",
		StartPoint:  newBase,
		ReplayAfter: forkPoint,
	}))

	// The temp branch was renamed over feature, nothing left behind
	testhelpers.ExpectBranches(t, scene.Repo, []string{"feature", "master"})

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "feature", branch)

	// Manual commit replayed, scripted step regenerated against the new base
	testhelpers.ExpectSubjects(t, scene.Repo, []string{"copy base", "add a", "bump base", "initial"})
	testhelpers.ExpectFileContent(t, scene.Repo, "a.txt", "a")
	testhelpers.ExpectFileContent(t, scene.Repo, "copy.txt", "v2\n")
}

func TestRewriteLeavesOriginalBranchOnFailure(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	forkPoint := testhelpers.Must(scene.Repo.GetCurrentSHA())

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("add a", "a.txt", "a"))
	require.NoError(t, scene.Repo.CommitWithMessage(step.Encode("boom", "false")))
	originalTip := testhelpers.Must(scene.Repo.GetCurrentSHA())

	// master advances so there is something to rebase onto
	require.NoError(t, scene.Repo.CheckoutBranch("master"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("bump", "b.txt", "b"))
	newBase := testhelpers.Must(scene.Repo.GetCurrentSHA())

	rewriter := newRewriter(t, scene)
	err := rewriter.Rewrite(context.Background(), engine.RewriteRequest{
		Branch:      "feature",
		StartPoint:  newBase,
		ReplayAfter: forkPoint,
	})
	require.ErrorIs(t, err, preparatorerrors.ErrCommandFailed)

	// The original branch is untouched
	featureTip, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "feature")
	require.NoError(t, err)
	require.Equal(t, originalTip, featureTip)

	// The temporary branch is left behind for inspection
	branches, err := scene.Repo.LocalBranches()
	require.NoError(t, err)
	var tempFound bool
	for _, b := range branches {
		if strings.HasPrefix(b, "feature.rewrite.") {
			tempFound = true
		}
	}
	require.True(t, tempFound, "failed rewrite must leave its temp branch")
}

func TestRewriteWithMutationOnly(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("add a", "a.txt", "a"))
	tip := testhelpers.Must(scene.Repo.GetCurrentSHA())

	rewriter := newRewriter(t, scene)
	require.NoError(t, rewriter.Rewrite(context.Background(), engine.RewriteRequest{
		Branch:      "feature",
		StartPoint:  tip,
		ReplayAfter: tip,
		Mutation: func(ctx context.Context) error {
			return scene.Repo.RunGitCommand("commit", "--amend", "-m", "add a, renamed")
		},
	}))

	testhelpers.ExpectSubjects(t, scene.Repo, []string{"add a, renamed", "initial"})
	testhelpers.ExpectBranches(t, scene.Repo, []string{"feature", "master"})
}
