package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns the value. Useful for
// test setup code where errors should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected
// local branches, ignoring order
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.LocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	sort.Strings(expected)
	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectSubjects asserts the commit subjects on the current branch,
// newest first
func ExpectSubjects(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	subjects, err := repo.ListCurrentBranchSubjects()
	require.NoError(t, err, "Failed to list commit subjects")
	require.Equal(t, expected, subjects, "Commit subjects do not match")
}

// ExpectFileContent asserts that a file in the work tree has the given content
func ExpectFileContent(t *testing.T, repo *GitRepo, name, expected string) {
	t.Helper()

	content, err := repo.ReadFile(name)
	require.NoError(t, err, "Failed to read %s", name)
	require.Equal(t, expected, content, "Content of %s does not match", name)
}
