// Command sshconf inspects OpenSSH client configuration files without
// reformatting them.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sshconf "github.com/KimNorgaard/go-sshconf"
	"github.com/KimNorgaard/go-sshconf/ast"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sshconf",
		Short:         "Inspect ssh_config files without reformatting them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newGetCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report lines that do not fit the keyword-argument grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sshconf.Load(args[0])
			if err != nil {
				return err
			}
			bad := 0
			for i, line := range f.Lines {
				if m, ok := line.Expr.(*ast.Malformed); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: malformed line: %q\n", f.Path, i+1, m.Text)
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d malformed line(s)", bad)
			}
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <keyword>",
		Short: "Print the arguments of the first entry matching a keyword",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sshconf.Load(args[0])
			if err != nil {
				return err
			}
			e := f.Get(args[1])
			if e == nil {
				return fmt.Errorf("no entry for keyword %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(e.Values(), " "))
			return nil
		},
	}
}
