package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvcckv/mvcckv/mvcc"
)

const prompt = "mvcc> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session against a fresh in-memory database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := newDatabase()
		if err != nil {
			return err
		}
		return runREPL(db, os.Stdin, os.Stdout)
	},
}

func runREPL(db *mvcc.Database, in io.Reader, out io.Writer) error {
	conn := db.NewConnection()
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "mvccql: default isolation %s. Type `help` for commands, `quit` to exit.\n", flagIsolation)

	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, cmdArgs := fields[0], fields[1:]

		switch command {
		case "quit", "exit":
			return nil
		case "help":
			printHelp(out)
			continue
		case ".status":
			printStatus(out, db)
			continue
		}

		result, err := executeRecovering(conn, command, cmdArgs)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
}

// executeRecovering runs conn.Execute and turns a precondition-violation
// panic (e.g. `get` with no open transaction) into an error, so a typo
// at the prompt doesn't take down the whole session.
func executeRecovering(conn *mvcc.Connection, command string, args []string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return conn.Execute(command, args)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  begin                 start a transaction on this connection")
	fmt.Fprintln(out, "  get <key>             read a key under the open transaction")
	fmt.Fprintln(out, "  set <key> <value>     write a key under the open transaction")
	fmt.Fprintln(out, "  delete <key>          delete a key under the open transaction")
	fmt.Fprintln(out, "  commit                commit the open transaction")
	fmt.Fprintln(out, "  abort                 abort the open transaction")
	fmt.Fprintln(out, "  .status               list ids of every transaction still in progress")
	fmt.Fprintln(out, "  quit                  leave the shell")
}

// printStatus is the diagnostic ".status" meta-command: it lists every
// transaction id currently in progress across the whole database, not
// just this connection, the way the original's in_progress() dump did.
func printStatus(out io.Writer, db *mvcc.Database) {
	ids := db.InProgress()
	if len(ids) == 0 {
		fmt.Fprintln(out, "no transactions in progress")
		return
	}
	fmt.Fprint(out, "in progress:")
	for _, id := range ids {
		fmt.Fprintf(out, " %d", id)
	}
	fmt.Fprintln(out)
}
