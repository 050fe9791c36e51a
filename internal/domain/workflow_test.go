package domain

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mass-rename/regexrename/internal/adapter"
	"github.com/mass-rename/regexrename/internal/controller"
	m "github.com/mass-rename/regexrename/internal/model"
)

func newTestWorkflow(t *testing.T) (Workflow, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	fs := adapter.NewLocalDirFS()
	wf := NewWorkflow(fs, NewExecutor(fs), controller.NewSimpleUI(cmd))

	return wf, &out, &errOut
}

func fromTo(pattern, template string) []m.RuleSpec {
	return []m.RuleSpec{{Pattern: pattern, Template: template}}
}

func TestWorkflow_Run_RenamesMatchingEntries(t *testing.T) {
	wf, out, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo"), "")
	writeFile(t, filepath.Join(root, "other.txt"), "")

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^foo$", "bar")})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar", "other.txt"}, listNames(t, root))
	assert.Contains(t, out.String(), "renamed 1 entries")
}

func TestWorkflow_Run_RoundTripRestoresNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo"), "")
	writeFile(t, filepath.Join(root, "bar"), "")

	wf, _, _ := newTestWorkflow(t)
	require.NoError(t, wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^", "prefix_")}))
	assert.Equal(t, []string{"prefix_bar", "prefix_foo"}, listNames(t, root))

	require.NoError(t, wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^prefix_", "")}))
	assert.Equal(t, []string{"bar", "foo"}, listNames(t, root))
}

func TestWorkflow_Run_DryRunNeverMutates(t *testing.T) {
	wf, out, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo"), "")

	before := listNames(t, root)

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^", "p_"), DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, before, listNames(t, root))
	assert.Contains(t, out.String(),
		fmt.Sprintf("%s -> %s\n", filepath.Join(root, "foo"), filepath.Join(root, "p_foo")))
}

func TestWorkflow_Run_NoMatchesIsNoOp(t *testing.T) {
	wf, out, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo"), "")

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^zzz", "x")})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, listNames(t, root))
	assert.Contains(t, out.String(), "nothing to rename")
}

func TestWorkflow_Run_CollisionLeavesFilesystemUntouched(t *testing.T) {
	wf, _, errOut := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one"), "")
	writeFile(t, filepath.Join(root, "two"), "")

	before := listNames(t, root)

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^(one|two)$", "same")})
	require.Error(t, err)

	var collisionErr *m.CollisionError
	require.ErrorAs(t, err, &collisionErr)
	assert.Len(t, collisionErr.Collisions, 2)

	assert.Equal(t, before, listNames(t, root))
	assert.Contains(t, errOut.String(), "same")
	assert.Contains(t, errOut.String(), "no entries renamed")
}

func TestWorkflow_Run_ClobberRejected(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ab.txt"), "")
	writeFile(t, filepath.Join(root, "ba.txt"), "")

	before := listNames(t, root)

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^(a)(b)", `\2\1`)})
	require.Error(t, err)

	var collisionErr *m.CollisionError
	require.ErrorAs(t, err, &collisionErr)

	assert.Equal(t, before, listNames(t, root))
}

func TestWorkflow_Run_InvalidPattern(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	err := wf.Run(RunArgs{Dir: m.Path(t.TempDir()), Specs: fromTo("f(oo", "x")})

	var patternErr *m.InvalidPatternError
	require.ErrorAs(t, err, &patternErr)
}

func TestWorkflow_Run_InvalidExcludePattern(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	err := wf.Run(RunArgs{
		Dir:     m.Path(t.TempDir()),
		Specs:   fromTo("^", "p_"),
		Exclude: []string{"["},
	})

	var patternErr *m.InvalidPatternError
	require.ErrorAs(t, err, &patternErr)
}

func TestWorkflow_Run_ExcludeSkipsEntries(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), "")
	writeFile(t, filepath.Join(root, "skip.txt"), "")

	err := wf.Run(RunArgs{
		Dir:     m.Path(root),
		Specs:   fromTo("^", "p_"),
		Exclude: []string{"^skip"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p_keep.txt", "skip.txt"}, listNames(t, root))
}

func TestWorkflow_Run_ExplicitEntries(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.txt"), "")
	writeFile(t, filepath.Join(root, "two.txt"), "")

	err := wf.Run(RunArgs{
		Dir:     m.Path(root),
		Entries: []string{"one.txt"},
		Specs:   fromTo("^", "p_"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p_one.txt", "two.txt"}, listNames(t, root))
}

func TestWorkflow_Run_ExplicitEntriesStillCheckClobber(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.txt"), "")
	writeFile(t, filepath.Join(root, "p_one.txt"), "")

	err := wf.Run(RunArgs{
		Dir:     m.Path(root),
		Entries: []string{"one.txt"},
		Specs:   fromTo("^", "p_"),
	})

	var collisionErr *m.CollisionError
	require.ErrorAs(t, err, &collisionErr)
}

func TestWorkflow_Run_Recursive(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(root, "top.txt"), "")
	writeFile(t, filepath.Join(sub, "nested.txt"), "")

	err := wf.Run(RunArgs{
		Dir:       m.Path(root),
		Specs:     fromTo(`\.txt$`, ".md"),
		Recursive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sub", "top.md"}, listNames(t, root))
	assert.Equal(t, []string{"nested.md"}, listNames(t, sub))
}

func TestWorkflow_Run_RecursiveLeavesDirectoryNamesAlone(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	sub := filepath.Join(root, "sub.txt")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "inner.txt"), "")

	err := wf.Run(RunArgs{
		Dir:       m.Path(root),
		Specs:     fromTo(`\.txt$`, ".md"),
		Recursive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sub.txt"}, listNames(t, root))
	assert.Equal(t, []string{"inner.md"}, listNames(t, sub))
}

func TestWorkflow_Run_ShallowRenamesDirectories(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "olddir"), 0o755))

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: fromTo("^old", "new")})
	require.NoError(t, err)

	assert.Equal(t, []string{"newdir"}, listNames(t, root))
}

func TestWorkflow_Run_IgnoreCase(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "FOO.txt"), "")

	err := wf.Run(RunArgs{
		Dir:        m.Path(root),
		Specs:      fromTo("^foo", "bar"),
		IgnoreCase: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar.txt"}, listNames(t, root))
}

func TestWorkflow_Run_CleanupRules(t *testing.T) {
	wf, _, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "black & white (1).png"), "")

	err := wf.Run(RunArgs{Dir: m.Path(root), Specs: m.CleanupSpecs()})
	require.NoError(t, err)

	assert.Equal(t, []string{"black_and_white__1_.png"}, listNames(t, root))
}

func TestWorkflow_Run_InteractiveWithoutTTYProceeds(t *testing.T) {
	wf, out, _ := newTestWorkflow(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "foo"), "")

	err := wf.Run(RunArgs{
		Dir:         m.Path(root),
		Specs:       fromTo("^foo$", "bar"),
		Interactive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar"}, listNames(t, root))
	assert.Contains(t, out.String(), "renamed 1 entries")
}
