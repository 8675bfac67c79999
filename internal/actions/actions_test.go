package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huguesb/preparator/internal/actions"
	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/runtime"
	"github.com/huguesb/preparator/internal/step"
	"github.com/huguesb/preparator/testhelpers"
)

func newRuntime(t *testing.T, scene *testhelpers.Scene) *runtime.Context {
	t.Helper()

	rt, err := runtime.NewContextAt(scene.Dir)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Splog.Close() })
	return rt
}

func TestAddActionRecordsScriptedStep(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	rt := newRuntime(t, scene)

	err := actions.AddAction(context.Background(), rt, actions.AddOptions{
		Message:    "bump initial",
		CommandArg: "printf v2 > initial.txt",
	})
	require.NoError(t, err)

	testhelpers.ExpectFileContent(t, scene.Repo, "initial.txt", "v2")

	message := testhelpers.Must(scene.Repo.GetCommitMessage("HEAD"))
	st, err := step.Decode(message)
	require.NoError(t, err)
	require.Equal(t, "bump initial", st.Message)
	require.Equal(t, "printf v2 > initial.txt", st.Command)
}

func TestAddActionRefusesDirtyWorkTree(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.WriteFile("initial.txt", "modified"))
	rt := newRuntime(t, scene)

	err := actions.AddAction(context.Background(), rt, actions.AddOptions{
		Message:    "bump",
		CommandArg: "true",
	})
	require.ErrorIs(t, err, preparatorerrors.ErrDirtyWorkTree)
}

func TestRebaseActionRegeneratesAgainstNewBase(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := scene.Repo

	require.NoError(t, repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, repo.CreateChangeAndCommit("add out", "out.txt", "placeholder\n"))

	err := actions.AddAction(context.Background(), newRuntime(t, scene), actions.AddOptions{
		Message:    "copy initial",
		CommandArg: "cp initial.txt out.txt",
	})
	require.NoError(t, err)
	testhelpers.ExpectFileContent(t, repo, "out.txt", "initial")

	// master moves under the feature branch
	require.NoError(t, repo.CheckoutBranch("master"))
	require.NoError(t, repo.CreateChangeAndCommit("bump initial", "initial.txt", "v2\n"))
	require.NoError(t, repo.CheckoutBranch("feature"))

	err = actions.RebaseAction(context.Background(), newRuntime(t, scene), actions.RebaseOptions{})
	require.NoError(t, err)

	// the scripted step re-ran against the new base content
	testhelpers.ExpectFileContent(t, repo, "out.txt", "v2\n")
	require.Equal(t, "feature", testhelpers.Must(repo.CurrentBranchName()))
	testhelpers.ExpectBranches(t, repo, []string{"feature", "master"})
	testhelpers.ExpectSubjects(t, repo, []string{
		"copy initial",
		"add out",
		"bump initial",
		"initial",
	})
}

func TestRebaseActionAlreadyUpToDate(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := scene.Repo

	require.NoError(t, repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, repo.CreateChangeAndCommit("feature work", "f.txt", "f"))
	tip := testhelpers.Must(repo.GetCurrentSHA())

	// master has not moved, so there is nothing to rewrite
	err := actions.RebaseAction(context.Background(), newRuntime(t, scene), actions.RebaseOptions{})
	require.NoError(t, err)

	require.Equal(t, tip, testhelpers.Must(repo.GetCurrentSHA()))
	testhelpers.ExpectBranches(t, repo, []string{"feature", "master"})
}

func TestRebaseActionUnknownBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	err := actions.RebaseAction(context.Background(), newRuntime(t, scene), actions.RebaseOptions{
		Branch: "no-such-branch",
	})
	require.ErrorIs(t, err, preparatorerrors.ErrBranchNotFound)
}

func TestAmendActionRejectsScriptedCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CommitWithMessage(step.Encode("scripted", "true")))

	rt := newRuntime(t, scene)
	err := actions.AmendAction(context.Background(), rt, actions.AmendOptions{Selector: "-0"})

	var wrongState *preparatorerrors.WrongStateError
	require.ErrorAs(t, err, &wrongState)
	require.Equal(t, "preparator edit", wrongState.Suggestion)
}

func TestEditActionRejectsManualCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("manual change", "a.txt", "a\n"))

	rt := newRuntime(t, scene)
	err := actions.EditAction(context.Background(), rt, actions.EditOptions{
		Selector:   "-0",
		CommandArg: "true",
	})

	var wrongState *preparatorerrors.WrongStateError
	require.ErrorAs(t, err, &wrongState)
	require.Equal(t, "preparator amend", wrongState.Suggestion)
}

func TestEditActionReplacesCommandAndReplays(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := scene.Repo
	require.NoError(t, repo.CreateAndCheckoutBranch("feature"))

	err := actions.AddAction(context.Background(), newRuntime(t, scene), actions.AddOptions{
		Message:    "write marker",
		CommandArg: "printf old > initial.txt",
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateChangeAndCommit("later change", "later.txt", "later\n"))

	err = actions.EditAction(context.Background(), newRuntime(t, scene), actions.EditOptions{
		Selector:   "+0",
		CommandArg: "printf new > initial.txt",
	})
	require.NoError(t, err)

	testhelpers.ExpectFileContent(t, repo, "initial.txt", "new")
	testhelpers.ExpectFileContent(t, repo, "later.txt", "later\n")
	require.Equal(t, "feature", testhelpers.Must(repo.CurrentBranchName()))
	testhelpers.ExpectBranches(t, repo, []string{"feature", "master"})

	// the edited step keeps its message but records the new command
	message := testhelpers.Must(repo.GetCommitMessage("HEAD~1"))
	st, err := step.Decode(message)
	require.NoError(t, err)
	require.Equal(t, "write marker", st.Message)
	require.Equal(t, "printf new > initial.txt", st.Command)
}
