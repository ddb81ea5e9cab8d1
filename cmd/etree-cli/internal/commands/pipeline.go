package commands

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Verb describes one "<noun> <verb>" command. Parse reads and checks the
// switches before anything is opened, Execute runs inside the invocation
// transaction and Report prints the result after commit and picks the exit
// code.
type Verb[In, Out any] struct {
	Use     string
	Short   string
	Long    string
	Example string
	Flags   func(fs *pflag.FlagSet)
	Parse   func(cmd *cobra.Command) (In, error)
	Execute func(ctx context.Context, env *Env, inv Invocation, in In) (Out, error)
	Report  func(w *report.Writer, inv Invocation, out Out) ExitCode
}

// Command builds the cobra command running the verb through rt.
func (v Verb[In, Out]) Command(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     v.Use,
		Short:   v.Short,
		Long:    v.Long,
		Example: v.Example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return v.run(cmd, rt)
		},
	}
	if v.Flags != nil {
		v.Flags(cmd.Flags())
	}
	return cmd
}

func (v Verb[In, Out]) run(cmd *cobra.Command, rt *Runtime) error {
	var in In
	if v.Parse != nil {
		parsed, err := v.Parse(cmd)
		if err != nil {
			return err
		}
		in = parsed
	}

	inv, cfg, err := rt.Invocation()
	if err != nil {
		return err
	}

	var out Out
	err = rt.Run(cmd.Context(), inv, cfg, func(ctx context.Context, env *Env) error {
		var execErr error
		out, execErr = v.Execute(ctx, env, inv, in)
		return execErr
	})
	if err != nil {
		return err
	}

	w := report.NewWriter(rt.out)
	code := v.Report(w, inv, out)
	if w.Err() != nil {
		return w.Err()
	}
	if code != ExitOK {
		return &StatusError{Code: code}
	}
	return nil
}
