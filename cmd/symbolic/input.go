package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/symbolic"
	"github.com/zephyrtronium/symbolic/document"
)

// doc is one document read from an input.
type doc struct {
	source string
	index  int
	expr   *symbolic.Expression
}

// readDocs decodes every document of every named input, in order. The name
// "-" reads stdin. If format is empty, each input's format is chosen by its
// file extension. Inputs and documents that fail are collected into the
// returned error, and reading continues with whatever follows them.
func readDocs(stdin io.Reader, names []string, format string) ([]doc, error) {
	var forced *document.Format
	if format != "" {
		f, err := document.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		forced = &f
	}
	if len(names) == 0 {
		names = []string{"-"}
	}
	var docs []doc
	var errs *multierror.Error
	for _, name := range names {
		f := document.FormatOf(name)
		if forced != nil {
			f = *forced
		}
		in, closer, err := open(stdin, name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		dec := document.NewDecoder(in, f)
		for {
			e, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				errs = multierror.Append(errs, errors.Wrap(err, name))
				continue
			}
			docs = append(docs, doc{source: name, index: dec.Count(), expr: e})
		}
		logrus.Debugf("read %d documents from %s as %s", dec.Count(), name, f)
		if err := closer(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "closing %s", name))
		}
	}
	return docs, errs.ErrorOrNil()
}

func open(stdin io.Reader, name string) (io.Reader, func() error, error) {
	if name == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	return f, f.Close, nil
}

// parseGiven parses name=value variable definitions.
func parseGiven(defs []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(defs))
	for _, s := range defs {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return nil, errors.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		name := strings.TrimSpace(d[0])
		if name == "" {
			return nil, errors.Errorf("empty variable name in %q", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "setting %s", name)
		}
		vars[name] = v
	}
	return vars, nil
}
