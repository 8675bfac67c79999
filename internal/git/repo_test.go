package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/testhelpers"
)

func openRepo(t *testing.T, scene *testhelpers.Scene) *git.Repo {
	t.Helper()

	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)
	return repo
}

func TestOpenFindsRootFromSubdirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.WriteFile("sub/deep.txt", "x"))

	repo, err := git.Open(scene.Dir + "/sub")
	require.NoError(t, err)

	toplevel := testhelpers.Must(scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--show-toplevel"))
	require.Equal(t, toplevel, repo.Root())
}

func TestCommitSHAWalksFirstParents(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	first := testhelpers.Must(scene.Repo.GetCurrentSHA())
	require.NoError(t, scene.Repo.CreateChangeAndCommit("second", "b.txt", "b"))
	second := testhelpers.Must(scene.Repo.GetCurrentSHA())

	repo := openRepo(t, scene)

	sha, err := repo.CommitSHA("HEAD", 0)
	require.NoError(t, err)
	require.Equal(t, second, sha)

	sha, err = repo.CommitSHA("HEAD", 1)
	require.NoError(t, err)
	require.Equal(t, first, sha)

	_, err = repo.CommitSHA("HEAD", 2)
	require.ErrorIs(t, err, preparatorerrors.ErrOutOfRange)
}

func TestParentSHAOfRootCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	root := testhelpers.Must(scene.Repo.GetCurrentSHA())

	repo := openRepo(t, scene)
	_, err := repo.ParentSHA(root)
	require.ErrorIs(t, err, preparatorerrors.ErrCommitNotFound)
}

func TestRevisionUnknownRef(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	repo := openRepo(t, scene)
	_, err := repo.Revision("no-such-ref")
	require.ErrorIs(t, err, preparatorerrors.ErrCommitNotFound)
}

func TestForkPointAfterBaseAdvances(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	forkPoint := testhelpers.Must(scene.Repo.GetCurrentSHA())

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("feature work", "f.txt", "f"))
	require.NoError(t, scene.Repo.CheckoutBranch("master"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("master work", "m.txt", "m"))
	require.NoError(t, scene.Repo.CheckoutBranch("feature"))

	repo := openRepo(t, scene)
	sha, err := repo.ForkPoint(context.Background(), "master", "feature")
	require.NoError(t, err)
	require.Equal(t, forkPoint, sha)
}

func TestCommitsBetweenIsOldestFirstExclusive(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	base := testhelpers.Must(scene.Repo.GetCurrentSHA())
	require.NoError(t, scene.Repo.CreateChangeAndCommit("one", "1.txt", "1"))
	one := testhelpers.Must(scene.Repo.GetCurrentSHA())
	require.NoError(t, scene.Repo.CreateChangeAndCommit("two", "2.txt", "2"))
	two := testhelpers.Must(scene.Repo.GetCurrentSHA())

	repo := openRepo(t, scene)
	shas, err := repo.CommitsBetween(context.Background(), base, two)
	require.NoError(t, err)
	require.Equal(t, []string{one, two}, shas)

	shas, err = repo.CommitsBetween(context.Background(), two, two)
	require.NoError(t, err)
	require.Empty(t, shas)
}

func TestStagePathsDoesNotGlob(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.WriteFile("*.txt", "glob bait"))
	require.NoError(t, scene.Repo.WriteFile("other.txt", "x"))

	repo := openRepo(t, scene)
	require.NoError(t, repo.StagePaths(context.Background(), []string{"*.txt"}))

	staged := testhelpers.Must(scene.Repo.RunGitCommandAndGetOutput("diff", "--cached", "--name-only"))
	require.Equal(t, "*.txt", staged, "only the literally named file may be staged")
}

func TestIsWorkTreeCleanIgnoresUntracked(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := openRepo(t, scene)

	clean, err := repo.IsWorkTreeClean(context.Background())
	require.NoError(t, err)
	require.True(t, clean)

	// untracked files never count as dirty
	require.NoError(t, scene.Repo.WriteFile("untracked.txt", "x"))
	clean, err = repo.IsWorkTreeClean(context.Background())
	require.NoError(t, err)
	require.True(t, clean)

	untracked, err := repo.UntrackedFiles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"untracked.txt"}, untracked)

	require.NoError(t, scene.Repo.WriteFile("initial.txt", "changed"))
	clean, err = repo.IsWorkTreeClean(context.Background())
	require.NoError(t, err)
	require.False(t, clean)
}
