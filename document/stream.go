package document

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/symbolic"
)

// Format is a document encoding.
type Format int8

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat returns the format with the given name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return 0, errors.Errorf("unknown document format %q", name)
	}
}

// FormatOf guesses the format of a file from its name. Names ending in .json
// are JSON; everything else is YAML.
func FormatOf(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return JSON
	}
	return YAML
}

// Decoder reads a stream of expression documents: YAML documents separated
// by "---", or consecutive JSON values.
type Decoder struct {
	next func(*Node) error
	n    int
	done bool
}

// NewDecoder creates a decoder reading documents in format f from r.
func NewDecoder(r io.Reader, f Format) *Decoder {
	d := Decoder{}
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		d.next = func(n *Node) error { return dec.Decode(n) }
	case JSON:
		iter := jsoniter.Parse(json, r, 512)
		d.next = func(n *Node) error { return nextJSON(iter, n) }
	default:
		panic("document: invalid format " + f.String())
	}
	return &d
}

// Decode reads the next document and builds its expression. At the end of
// input, it returns io.EOF. A document that is well-formed YAML or JSON but
// describes an invalid tree gives an error, and the following documents may
// still be decoded. After a syntax error, Decode returns io.EOF.
func (d *Decoder) Decode() (*symbolic.Expression, error) {
	if d.done {
		return nil, io.EOF
	}
	var n Node
	if err := d.next(&n); err != nil {
		if err == io.EOF {
			d.done = true
			return nil, io.EOF
		}
		d.n++
		if !recoverable(err) {
			d.done = true
		}
		return nil, errors.Wrapf(err, "document %d", d.n)
	}
	d.n++
	e, err := n.Expression()
	if err != nil {
		return nil, errors.Wrapf(err, "document %d", d.n)
	}
	return e, nil
}

// nextJSON reads the next top-level value from iter, returning io.EOF at the
// end of input.
func nextJSON(iter *jsoniter.Iterator, n *Node) error {
	if iter.WhatIsNext() == jsoniter.InvalidValue {
		if iter.Error == nil {
			// Not the start of any value. Skip reports what was found.
			iter.Skip()
		}
		return iter.Error
	}
	return readJSON(iter, n)
}

// recoverable returns whether a decoder can continue after err.
func recoverable(err error) bool {
	var te *yaml.TypeError
	var ne *NodeError
	return errors.As(err, &te) || errors.As(err, &ne)
}

// Count returns the number of documents Decode has read so far, including
// ones that failed.
func (d *Decoder) Count() int {
	return d.n
}

// ReadAll decodes every document in r. Decoding stops at the first error.
func ReadAll(r io.Reader, f Format) ([]*symbolic.Expression, error) {
	d := NewDecoder(r, f)
	var es []*symbolic.Expression
	for {
		e, err := d.Decode()
		if err == io.EOF {
			return es, nil
		}
		if err != nil {
			return es, err
		}
		es = append(es, e)
	}
}

// Encoder writes a stream of expression documents.
type Encoder struct {
	enc   func(*Node) error
	close func() error
}

// NewEncoder creates an encoder writing documents in format f to w. Close
// must be called after the last document.
func NewEncoder(w io.Writer, f Format) *Encoder {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &Encoder{
			enc:   func(n *Node) error { return enc.Encode(n) },
			close: enc.Close,
		}
	case JSON:
		// A document that cannot be encoded writes nothing and does not
		// affect later documents.
		return &Encoder{
			enc: func(n *Node) error {
				b, err := json.Marshal(n)
				if err != nil {
					return err
				}
				_, err = w.Write(append(b, '\n'))
				return err
			},
			close: func() error { return nil },
		}
	default:
		panic("document: invalid format " + f.String())
	}
}

// Encode writes e as one document.
func (e *Encoder) Encode(x *symbolic.Expression) error {
	return e.enc(FromExpression(x))
}

// Close flushes any buffered output.
func (e *Encoder) Close() error {
	return e.close()
}

// Marshal encodes e as a single document.
func Marshal(e *symbolic.Expression, f Format) ([]byte, error) {
	var b strings.Builder
	enc := NewEncoder(&b, f)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// Unmarshal decodes a single document.
func Unmarshal(b []byte, f Format) (*symbolic.Expression, error) {
	var n Node
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(b, &n)
	case JSON:
		iter := jsoniter.ParseBytes(json, b)
		err = nextJSON(iter, &n)
		switch {
		case err == io.EOF:
			err = errors.New("empty JSON document")
		case err == nil && (iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF):
			err = errors.New("unexpected data after JSON document")
		}
	default:
		panic("document: invalid format " + f.String())
	}
	if err != nil {
		return nil, err
	}
	return n.Expression()
}
