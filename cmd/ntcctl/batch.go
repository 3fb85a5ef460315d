package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBatchCommand(root *rootOptions) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Run ntcctl command lines read from a file or stdin",
		Long: `Each line is split with shell quoting rules and run as one ntcctl
invocation. Blank lines and # comments are skipped. --log-level and
--output carry over to every line unless the line sets them itself.`,
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runBatch(root, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), keepGoing)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a failing line")
	return cmd
}

func runBatch(root *rootOptions, in io.Reader, out, errOut io.Writer, keepGoing bool) error {
	sc := bufio.NewScanner(in)
	failed := 0
	for n := 1; sc.Scan(); n++ {
		argv, err := shlex.Split(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %v", n, err)
		}
		if len(argv) == 0 {
			continue
		}
		if argv[0] == "ntcctl" {
			argv = argv[1:]
		}
		if len(argv) > 0 && argv[0] == "batch" {
			return fmt.Errorf("line %d: batch cannot be nested", n)
		}
		log := logrus.WithField("line", n)
		log.WithField("args", argv).Debug("running")

		sub := newRootCommand()
		sub.SetArgs(append([]string{"--log-level", root.logLevel, "--output", root.output}, argv...))
		sub.SetOut(out)
		sub.SetErr(errOut)
		if err := sub.Execute(); err != nil {
			if !keepGoing {
				return fmt.Errorf("line %d: %w", n, err)
			}
			log.WithError(err).Warn("command failed")
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d line(s) failed", failed)
	}
	return nil
}
