package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "nairabooks-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "nairabooks")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/nairabooks")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := run(t, "init", dir, "--name", "Mama Nkechi Stores", "--vat-registered")
	require.NoError(t, err, out)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initProject(t)

	for _, d := range []string{
		"import",
		filepath.Join("import", "processed"),
		"rules",
		"logs",
		"exports",
	} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	_, err := os.Stat(filepath.Join(dir, "nairabooks.yaml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, "init should create a git repo")
}

func TestInit_RequiresName(t *testing.T) {
	out, err := run(t, "init", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "name")
}

func TestAddAndTrialBalance(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "add", "--dir", dir,
		"--amount", "100000",
		"--description", "POS sales",
		"--category", "sales",
		"--date", "2025-01-10")
	require.NoError(t, err, out)
	assert.Contains(t, out, "2025-01-001")

	out, err = run(t, "report", "trial-balance", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "Sales Revenue")
	assert.NotContains(t, out, "out of balance")
}

func TestAdd_PersistsAcrossInvocations(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "add", "--dir", dir,
		"--amount", "50000", "--description", "sold airtime", "--category", "sales")
	require.NoError(t, err, out)

	out, err = run(t, "add", "--dir", dir,
		"--amount", "20000", "--description", "rent for shop", "--category", "rent")
	require.NoError(t, err, out)

	out, err = run(t, "tax", "schedule", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "vat-")
	assert.Contains(t, out, "wht-")
}

func TestChat(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "chat", "--dir", dir, "sold goods for 50k")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded")
}

func TestExport(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "add", "--dir", dir,
		"--amount", "80000", "--description", "service fees earned", "--category", "services")
	require.NoError(t, err, out)

	out, err = run(t, "export", "--dir", dir)
	require.NoError(t, err, out)

	for _, f := range []string{"chart_of_accounts.csv", "journal.csv", "tax_schedule.csv"} {
		_, err := os.Stat(filepath.Join(dir, "exports", f))
		require.NoError(t, err, "%s should exist", f)
	}
}

func TestAccountsAdd(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "accounts", "add", "--dir", dir,
		"--code", "6300", "--name", "Generator Fuel", "--class", "expense")
	require.NoError(t, err, out)

	out, err = run(t, "accounts", "list", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Generator Fuel")
}
