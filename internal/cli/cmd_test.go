package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexanderramin/devterm/internal/portfolio"
	"github.com/alexanderramin/devterm/internal/terminal"
	"github.com/alexanderramin/devterm/internal/testutil"
)

// --- run ---

func TestRun_PrintsOutput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "aboutme")

	require.NoError(t, err)
	assert.Contains(t, out, "I build platforms.")
}

func TestRun_ProjectDetail(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "project", "alpha")

	require.NoError(t, err)
	assert.Contains(t, out, "Project Alpha")
	assert.Contains(t, out, "Go, SQLite")
	assert.Contains(t, out, "A detailed write-up.")
}

func TestRun_AskRequotesQuestion(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "ask", "What do you use?")

	require.NoError(t, err)
	assert.Contains(t, out, "Mostly Go and Kubernetes.")
}

func TestRun_AskSingleWordQuestion(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "ask", "Kubernetes?")

	require.NoError(t, err)
	assert.Contains(t, out, "Mostly Go and Kubernetes.")
	assert.NotContains(t, out, "enclose your question")
}

func TestRun_UnknownCommandSuggests(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "projcts")

	require.NoError(t, err)
	assert.Contains(t, out, "Command not found: projcts. Did you mean: projects?")
}

func TestRun_JSON(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "", "run", "--json", "contact")
	require.NoError(t, err)

	var got terminal.Output
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "contact", got.Command)
	assert.Contains(t, got.PlainText(), "test@example.com")
}

func TestRun_RequiresArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "run")

	assert.Error(t, err)
}

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"projects"}, "projects"},
		{[]string{"project", "alpha"}, "project alpha"},
		{[]string{"ask", "what next?"}, `ask "what next?"`},
		{[]string{"ask", `"already quoted"`}, `ask "already quoted"`},
		{[]string{"skill", "go"}, "skill go"},
		{[]string{"ask", "Kubernetes?"}, `ask "Kubernetes?"`},
		{[]string{"ASK", "why", "Go?"}, `ASK "why Go?"`},
		{[]string{"ask"}, "ask"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, joinArgs(tt.args), "args %q", tt.args)
	}
}

// --- root line mode ---

func TestRoot_LineMode(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "aboutme\n\n  projects  \nexit\nhelp\n")

	require.NoError(t, err)
	assert.Contains(t, out, "I build platforms.")
	assert.Contains(t, out, "Project Alpha")
	assert.NotContains(t, out, "Show this help message", "input after exit is ignored")
}

func TestRoot_LineModeSkipsClear(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "clear\n")

	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestRoot_RejectsArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "aboutme")

	assert.Error(t, err)
}

// --- import ---

func writePortfolio(t *testing.T, snap *portfolio.Snapshot) string {
	t.Helper()
	data, err := portfolio.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestImport_StoresSnapshot(t *testing.T) {
	app := testApp(t)
	path := writePortfolio(t, testutil.NewTestSnapshot(testutil.WithAboutMe("Imported about me.")))

	out, err := executeCmd(t, app, "", "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "PORTFOLIO IMPORTED")
	assert.Contains(t, out, "Test Owner")

	repo, closer, err := app.OpenRepo()
	require.NoError(t, err)
	defer closer.Close()
	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Imported about me.", snap.AboutMe)
	assert.Len(t, snap.Projects, 2)

	_, source, err := repo.ImportedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(source))
}

func TestImport_InvalidFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: x\nunknownKey: y\n"), 0o644))

	_, err := executeCmd(t, app, "", "import", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing portfolio yaml")
}

func TestImport_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "import", filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading portfolio file")
}

// --- init ---

func TestInit_WritesStarterPortfolio(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "me.yaml")

	out, err := executeCmd(t, app, "", "init", "-o", path,
		"--owner", "Ada Lovelace", "--headline", "Analyst",
		"--email", "ada@example.com", "--github", "@ada", "--skills", "Go, Rust,,")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	snap := requireFile(t, path)
	assert.Equal(t, "Ada Lovelace", snap.Owner)
	assert.Equal(t, "Analyst", snap.Headline)
	assert.Equal(t, "Hi, I'm Ada Lovelace, a Analyst.", snap.AboutMe)
	assert.Equal(t, []string{"Go", "Rust"}, snap.Skills)
	require.Len(t, snap.Contact, 2)
	assert.Equal(t, "mailto:ada@example.com", snap.Contact[0].Link)
	assert.Equal(t, "https://github.com/ada", snap.Contact[1].Link)
	require.Len(t, snap.Projects, 1)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "me.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	_, err := executeCmd(t, app, "", "init", "-o", path, "--owner", "A", "--headline", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, _ := os.ReadFile(path)
	assert.Equal(t, "keep", string(data))

	_, err = executeCmd(t, app, "", "init", "-o", path, "--owner", "A", "--headline", "B", "--force")
	require.NoError(t, err)
	assert.Equal(t, "A", requireFile(t, path).Owner)
}

func TestInit_RequiresAnswersWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "init", "-o", filepath.Join(t.TempDir(), "me.yaml"), "--owner", "A")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--owner and --headline are required")
}

func TestInit_RejectsBadEmail(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "", "init", "-o", filepath.Join(t.TempDir(), "me.yaml"),
		"--owner", "A", "--headline", "B", "--email", "not-an-email")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email")
}

// --- bootstrap ---

func TestLoadOptions(t *testing.T) {
	t.Setenv("DEVTERM_PORTFOLIO", "")
	t.Setenv("DEVTERM_DB", "")
	assert.Equal(t, SourceBuiltin, LoadOptions(Options{}).Source)

	t.Setenv("DEVTERM_PORTFOLIO", "/tmp/p.yaml")
	t.Setenv("DEVTERM_DB", "/tmp/d.db")
	o := LoadOptions(Options{})
	assert.Equal(t, SourceYAML, o.Source)
	assert.Equal(t, "/tmp/p.yaml", o.PortfolioPath)
	assert.Equal(t, "/tmp/d.db", o.DBPath)

	assert.Equal(t, SourceDB, LoadOptions(Options{Source: SourceDB}).Source)
}

func TestBootstrap_Builtin(t *testing.T) {
	t.Setenv("DEVTERM_PORTFOLIO", "")
	app := &App{Logger: zap.NewNop(), HistoryPath: filepath.Join(t.TempDir(), "h")}

	require.NoError(t, app.Bootstrap(context.Background(), Options{}))
	defer app.Close()

	require.NotNil(t, app.Interpreter)
	require.NotNil(t, app.Flows)
	snap, err := app.Source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, portfolio.Default().Owner, snap.Owner)
}

func TestBootstrap_YAMLSource(t *testing.T) {
	path := writePortfolio(t, testutil.NewTestSnapshot())
	app := &App{Logger: zap.NewNop(), HistoryPath: filepath.Join(t.TempDir(), "h")}

	require.NoError(t, app.Bootstrap(context.Background(), Options{PortfolioPath: path}))
	defer app.Close()

	out := app.Interpreter.Interpret(context.Background(), "aboutme")
	assert.Contains(t, out.PlainText(), "I build platforms.")
}

func TestBootstrap_YAMLSourceNeedsPath(t *testing.T) {
	t.Setenv("DEVTERM_PORTFOLIO", "")
	app := &App{Logger: zap.NewNop()}

	err := app.Bootstrap(context.Background(), Options{Source: SourceYAML})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--portfolio")
}

func TestBootstrap_DBSource(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "devterm.db")
	app := &App{Logger: zap.NewNop(), HistoryPath: filepath.Join(t.TempDir(), "h")}

	require.NoError(t, app.Bootstrap(context.Background(), Options{Source: SourceDB, DBPath: dbPath}))

	repo, ok := app.Source.(interface {
		Replace(context.Context, *portfolio.Snapshot, string) error
	})
	require.True(t, ok, "db source is the portfolio repo")
	require.NoError(t, repo.Replace(context.Background(), testutil.NewTestSnapshot(), "test"))

	out := app.Interpreter.Interpret(context.Background(), "projects")
	assert.Contains(t, out.PlainText(), "Project Beta")
	require.NoError(t, app.Close())
}

func TestBootstrap_UnknownSource(t *testing.T) {
	app := &App{Logger: zap.NewNop()}

	err := app.Bootstrap(context.Background(), Options{Source: "s3"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown source "s3"`)
}

func TestBindGlobalFlags(t *testing.T) {
	var opts Options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindGlobalFlags(fs, &opts)

	require.NoError(t, fs.Parse([]string{"-v", "--source", "db", "--db", "/tmp/x.db"}))

	assert.True(t, opts.Verbose)
	assert.Equal(t, SourceDB, opts.Source)
	assert.Equal(t, "/tmp/x.db", opts.DBPath)
	assert.Empty(t, opts.PortfolioPath)
}
