package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvcckv/mvcckv/internal/config"
	"github.com/mvcckv/mvcckv/internal/dbg"
	"github.com/mvcckv/mvcckv/mvcc"
)

var isolationNames = map[string]mvcc.IsolationLevel{
	"read-uncommitted": mvcc.ReadUncommittedIsolation,
	"read-committed":   mvcc.ReadCommittedIsolation,
	"repeatable-read":  mvcc.RepeatableReadIsolation,
	"snapshot":         mvcc.SnapshotIsolation,
	"serializable":     mvcc.SerializableIsolation,
}

func parseIsolation(name string) (mvcc.IsolationLevel, error) {
	level, ok := isolationNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown isolation level %q (want one of read-uncommitted, read-committed, repeatable-read, snapshot, serializable)", name)
	}
	return level, nil
}

var (
	flagIsolation string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "mvccql",
	Short: "An in-memory MVCC key/value store with pluggable isolation levels",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagIsolation, "isolation", "serializable",
		"default isolation level: read-uncommitted, read-committed, repeatable-read, snapshot, serializable")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "trace begin, commit and abort at debug verbosity (get, set and delete are not traced)")

	rootCmd.AddCommand(replCmd, execCmd)
}

// newDatabase builds the Database the chosen front end runs against,
// wiring the --isolation/--debug flags through internal/config the
// way cmd/mvccql's two subcommands share setup.
func newDatabase() (*mvcc.Database, error) {
	cfg := config.Default()

	level, err := parseIsolation(flagIsolation)
	if err != nil {
		return nil, err
	}
	cfg.DefaultIsolation = level
	cfg.Debug = flagDebug

	logger := dbg.Default()
	if cfg.Debug {
		logger.SetLevel(dbg.LevelDebug)
	}

	return mvcc.NewDatabase(cfg.DefaultIsolation, mvcc.WithLogger(logger)), nil
}
