// Command parsec drives the example grammars (infix, csv, prolog) from the
// command line and offers a small interactive REPL, the Go stand-in for
// original_source's per-example main() functions plus _examples/daios-ai-msg's
// cobra/liner-based CLI shape.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kschupke/parsec/examples/csv"
	"github.com/kschupke/parsec/examples/infix"
	"github.com/kschupke/parsec/examples/prolog"
	"github.com/kschupke/parsec/internal/profile"
	"github.com/kschupke/parsec/internal/tracelog"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "parsec",
		Short: "Run the parsec example grammars",
		PersistentPreRun: func(*cobra.Command, []string) {
			tracelog.Verbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log grammar tracing to stderr")

	root.AddCommand(newInfixCmd(), newCSVCmd(), newPrologCmd(), newReplCmd(), newBenchCmd())
	return root
}

func newInfixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infix <expression>",
		Short: "Evaluate a left-associative arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tracelog.Parsing("infix", "argv")
			result, err := infix.Eval(args[0])
			if err != nil {
				tracelog.Failed("infix", err)
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}

func newCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv <file>",
		Short: "Parse a CSV file of integer rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			tracelog.Parsing("csv", args[0])
			rows, err := csv.Parse(data)
			if err != nil {
				tracelog.Failed("csv", err)
				return err
			}
			for _, row := range rows {
				fmt.Println(row)
			}
			return nil
		},
	}
}

func newPrologCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prolog <file>",
		Short: "Parse a Prolog-like clause file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			tracelog.Parsing("prolog", args[0])
			clauses, err := prolog.Parse(data)
			if err != nil {
				tracelog.Failed("prolog", err)
				return err
			}
			for _, cl := range clauses {
				fmt.Println(cl.String())
			}
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively evaluate infix expressions",
		RunE: func(*cobra.Command, []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("parsec> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "reading input")
		}
		line.AppendHistory(input)

		result, err := infix.Eval(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}

func newBenchCmd() *cobra.Command {
	var grammar string
	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Report parse throughput in MB/s for a grammar over a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			return runBench(grammar, data)
		},
	}
	cmd.Flags().StringVar(&grammar, "grammar", "csv", "grammar to bench: infix, csv, or prolog")
	return cmd
}

func runBench(grammar, data string) error {
	const counter = "bench"
	profile.Reset(counter)
	c := profile.Start(counter)

	var err error
	switch grammar {
	case "infix":
		_, err = infix.Eval(data)
	case "csv":
		_, err = csv.Parse(data)
	case "prolog":
		_, err = prolog.Parse(data)
	default:
		c.Stop()
		return errors.Errorf("unknown grammar %q", grammar)
	}
	c.Stop()
	if err != nil {
		return err
	}

	mbps := profile.ThroughputMBPerSecond(counter, len(data))
	fmt.Printf("parsed: %.3f MB/s\n", mbps)
	return nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return sb.String(), nil
}
