package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [script]",
	Short: "Run a `;`-separated sequence of commands against one connection and exit",
	Long: `exec runs a single connection through a fixed script, one command per
` + "`;`" + `-separated clause, e.g.:

  mvccql exec "begin; set x hey; get x; commit"

Each clause is whitespace-split into a command and its arguments, the
same way the interactive repl parses a line. The script stops at the
first failing command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := newDatabase()
		if err != nil {
			return err
		}
		conn := db.NewConnection()

		clauses := strings.Split(args[0], ";")
		for _, clause := range clauses {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}

			fields := strings.Fields(clause)
			command, cmdArgs := fields[0], fields[1:]

			result, err := executeRecovering(conn, command, cmdArgs)
			if err != nil {
				return fmt.Errorf("%q failed: %w", clause, err)
			}
			fmt.Fprintf(os.Stdout, "%s -> %s\n", clause, result)
		}
		return nil
	},
}
