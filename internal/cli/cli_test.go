package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	. "github.com/tobsdb/invdb/internal/cli"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/store"
	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

type testEnv struct {
	data string
	log  string
}

func newTestEnv(t *testing.T, records ...record.Record) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{filepath.Join(dir, "products.db"), filepath.Join(dir, "operations.log")}

	s := store.NewStore(store.Settings{DataPath: env.data})
	for _, r := range records {
		ok, err := s.AddRecord(r)
		assert.NilError(t, err)
		assert.Assert(t, ok)
	}
	assert.NilError(t, s.Save())
	return env
}

func (env testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--data", env.data, "--log", env.log}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (env testEnv) load(t *testing.T) *store.Store {
	t.Helper()
	s := store.NewStore(store.Settings{DataPath: env.data})
	assert.NilError(t, s.Load())
	return s
}

var (
	tv    = record.New(1, "TV", 10, 1000, "Sony")
	radio = record.New(2, "Radio", 3, 50, "Philips")
	lamp  = record.New(3, "Lamp", 7, 25.5, "Philips")
)

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"query", "repl", "add", "supply", "sell", "delete", "search", "list", "stats", "log", "backup", "restore"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			assert.NilError(t, err)
			assert.Equal(t, sub.Name(), name)
		})
	}

	for _, flag := range []string{"config", "data", "log", "verbose"} {
		assert.Assert(t, cmd.PersistentFlags().Lookup(flag) != nil, flag)
	}
}

func TestQueryCommand(t *testing.T) {
	env := newTestEnv(t, tv, radio)

	out, err := env.run(t, "", "query", "SELECT", "*", "WHERE", "price>500")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "TV"))
	assert.Assert(t, !strings.Contains(out, "Radio"))
	assert.Assert(t, cmp.Contains(out, "(1 record(s))"))

	out, err = env.run(t, "", "query", "DELETE * WHERE quantity<5")
	assert.NilError(t, err)
	assert.Equal(t, out, "Deleted 1 record(s)\n")
	assert.Equal(t, env.load(t).TotalRecords(), 1)

	_, err = env.run(t, "", "query", "UPDATE SET price=1 WHERE quantity<5")
	assert.ErrorContains(t, err, "invalid query")
	assert.Equal(t, GetExitCode(err), ExitCommandError)

	out, err = env.run(t, "", "query", "help")
	assert.NilError(t, err)
	assert.Assert(t, strings.HasPrefix(out, "Available commands:"))
}

func TestReplCommand(t *testing.T) {
	env := newTestEnv(t, tv)

	out, err := env.run(t, "INSERT id=2 name=Radio quantity=3 price=50 supplier=Philips\nSELECT oops\n\nexit\nSELECT *\n", "repl")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "~ add, 2 record(s) in store"))
	assert.Assert(t, cmp.Contains(out, "Added record 2"))
	assert.Assert(t, cmp.Contains(out, "Error: unexpected token"))
	// nothing runs after exit
	assert.Assert(t, !strings.Contains(out, "ID"))

	assert.Equal(t, env.load(t).TotalRecords(), 2)
}

func TestRecordCommands(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.run(t, "", "add", "--id", "5", "--name", "Lamp", "--quantity", "2", "--price", "9.99", "--supplier", "Ikea")
		assert.NilError(t, err)
		assert.Equal(t, out, "Added record 5\n")
		assert.Equal(t, env.load(t).Get(5).MustGet(), record.New(5, "Lamp", 2, 9.99, "Ikea"))

		_, err = env.run(t, "", "add", "--id", "5", "--name", "Other", "--supplier", "Ikea")
		assert.ErrorContains(t, err, "already exists")
		assert.Equal(t, GetExitCode(err), ExitFailure)

		_, err = env.run(t, "", "add", "--id", "6", "--name", "Other", "--supplier", "Ikea", "--price", "-1")
		assert.ErrorContains(t, err, "invalid record")
	})

	t.Run("supply and sell", func(t *testing.T) {
		env := newTestEnv(t, radio)
		out, err := env.run(t, "", "supply", "2", "7")
		assert.NilError(t, err)
		assert.Equal(t, out, "Radio: 10 in stock\n")

		out, err = env.run(t, "", "sell", "2", "4")
		assert.NilError(t, err)
		assert.Equal(t, out, "Radio: 6 in stock\n")

		_, err = env.run(t, "", "sell", "2", "7")
		assert.Equal(t, GetExitCode(err), ExitFailure)
		assert.Equal(t, env.load(t).Get(2).MustGet().Quantity, int64(6))

		_, err = env.run(t, "", "sell", "two", "1")
		assert.Equal(t, GetExitCode(err), ExitCommandError)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t, tv, radio, lamp)
		out, err := env.run(t, "", "delete", "2")
		assert.NilError(t, err)
		assert.Equal(t, out, "Deleted 1 record(s)\n")

		_, err = env.run(t, "", "delete", "2")
		assert.Equal(t, GetExitCode(err), ExitFailure)

		_, err = env.run(t, "", "delete", "1", "--all")
		assert.Equal(t, GetExitCode(err), ExitCommandError)

		out, err = env.run(t, "", "delete", "--all")
		assert.NilError(t, err)
		assert.Equal(t, out, "Deleted 2 record(s)\n")
		assert.Equal(t, env.load(t).TotalRecords(), 0)
	})
}

func TestSearchCommands(t *testing.T) {
	env := newTestEnv(t, tv, radio, lamp)

	out, err := env.run(t, "", "search", "supplier", "Philips")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "Radio"))
	assert.Assert(t, cmp.Contains(out, "Lamp"))
	assert.Assert(t, cmp.Contains(out, "(2 record(s))"))

	out, err = env.run(t, "", "search", "price", "50", "--op", ">=")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "(2 record(s))"))

	_, err = env.run(t, "", "search", "colour", "red")
	assert.ErrorContains(t, err, `unknown field "colour"`)
	_, err = env.run(t, "", "search", "price", "cheap")
	assert.ErrorContains(t, err, "invalid value")

	out, err = env.run(t, "", "list", "--sort", "price", "--desc")
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Assert(t, cmp.Len(lines, 5))
	assert.Assert(t, strings.HasPrefix(lines[1], "1 "))
	assert.Assert(t, strings.HasPrefix(lines[3], "3 "))
}

func TestStatsCommand(t *testing.T) {
	env := newTestEnv(t, tv, radio, lamp)

	out, err := env.run(t, "", "stats", "--top", "2")
	assert.NilError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "stats", []byte(out))
}

func TestLogCommand(t *testing.T) {
	env := newTestEnv(t, tv)
	_, err := env.run(t, "", "sell", "1", "1")
	assert.NilError(t, err)

	out, err := env.run(t, "", "log", "-n", "2")
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Assert(t, cmp.Len(lines, 2))
	// the log command loads the file first
	assert.Assert(t, cmp.Contains(lines[0], "AUTO-BACKUP"))
	assert.Assert(t, cmp.Contains(lines[1], "LOAD path="+env.data+" records=1"))

	_, err = env.run(t, "", "--log", "", "log")
	assert.ErrorContains(t, err, "audit log is disabled")
}

func TestBackupCommands(t *testing.T) {
	env := newTestEnv(t, tv, radio)
	backup := filepath.Join(filepath.Dir(env.data), "copy.db")

	out, err := env.run(t, "", "backup", backup)
	assert.NilError(t, err)
	assert.Equal(t, out, "Backed up 2 record(s) to "+backup+"\n")

	_, err = env.run(t, "", "delete", "--all")
	assert.NilError(t, err)

	out, err = env.run(t, "", "restore", backup)
	assert.NilError(t, err)
	assert.Equal(t, out, "Restored 2 record(s) from "+backup+"\n")
	assert.Equal(t, env.load(t).TotalRecords(), 2)

	_, err = env.run(t, "", "restore", filepath.Join(filepath.Dir(env.data), "missing.db"))
	assert.ErrorContains(t, err, "restore failed")
}

func TestConfigFlag(t *testing.T) {
	env := newTestEnv(t, tv)
	path := filepath.Join(t.TempDir(), "invdb.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("low_stock_threshold: 11\n"), 0o644))

	out, err := env.run(t, "", "--config", path, "stats")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "Low stock (< 11):  1"))

	_, err = env.run(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "stats")
	assert.Equal(t, GetExitCode(err), ExitCommandError)
}
