package main

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/symbolic"
	"github.com/zephyrtronium/symbolic/document"
)

func newReduceCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce [file...]",
		Short: "Reduce expression documents",
		Long: `Reduce each expression document in the given files, or stdin if there are
none, and print the results in input order. A file named "-" is stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reduce(cmd, v, args)
		},
	}
	flags := cmd.Flags()
	addInputFlags(flags)
	flags.StringArray("given", nil, "name=value variable definition (any number of times)")
	flags.Bool("echo", false, "print each tree before its result in debug output")
	flags.String("output", "debug", "output format: debug, yaml, or json")
	flags.Int("jobs", runtime.GOMAXPROCS(0), "number of documents to reduce concurrently")
	return cmd
}

func reduce(cmd *cobra.Command, v *viper.Viper, args []string) error {
	// --given is read from the flags directly so values may contain commas.
	defs, err := cmd.Flags().GetStringArray("given")
	if err != nil {
		return err
	}
	given, err := parseGiven(defs)
	if err != nil {
		return err
	}
	jobs := v.GetInt("jobs")
	if jobs < 1 {
		return errors.Errorf("jobs (%d) must be positive", jobs)
	}
	out, err := newPrinter(cmd, v.GetString("output"), v.GetBool("echo"))
	if err != nil {
		return err
	}

	docs, readErr := readDocs(cmd.InOrStdin(), args, v.GetString("format"))
	red := symbolic.NewReducer(
		symbolic.SetVars(given),
		symbolic.Logger(logrus.WithField("cmd", "reduce")),
	)
	before := make([]string, len(docs))
	results := make([]symbolic.Result, len(docs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i := range docs {
		if out.echo {
			before[i] = docs[i].expr.String()
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d := &docs[i]
			results[i] = red.Run(d.expr)
			logrus.WithFields(logrus.Fields{
				"source":   d.source,
				"document": d.index,
				"steps":    results[i].Steps,
				"bound":    results[i].Bound,
			}).Debug("reduced document")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs *multierror.Error
	if readErr != nil {
		errs = multierror.Append(errs, readErr)
	}
	for i, d := range docs {
		if err := out.print(d.expr, before[i]); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "writing %s document %d", d.source, d.index))
		}
	}
	if err := out.close(); err != nil {
		return err
	}
	return errs.ErrorOrNil()
}

// printer writes reduced expressions in one output format.
type printer struct {
	cmd  *cobra.Command
	enc  *document.Encoder
	echo bool
}

func newPrinter(cmd *cobra.Command, output string, echo bool) (*printer, error) {
	p := printer{cmd: cmd, echo: echo}
	switch output {
	case "debug":
	case "yaml", "json":
		f, err := document.ParseFormat(output)
		if err != nil {
			return nil, err
		}
		p.enc = document.NewEncoder(cmd.OutOrStdout(), f)
	default:
		return nil, errors.Errorf("unknown output format %q", output)
	}
	return &p, nil
}

func (p *printer) print(e *symbolic.Expression, before string) error {
	w := p.cmd.OutOrStdout()
	if p.enc != nil {
		return p.enc.Encode(e)
	}
	if p.echo {
		if _, err := fmt.Fprintf(w, "%s : ", before); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, e)
	return err
}

func (p *printer) close() error {
	if p.enc == nil {
		return nil
	}
	return p.enc.Close()
}
