// Package fileinput supplies the compiler's source files: a queue of one or
// more input streams drained byte-for-byte, with the current and last
// completed lines tracked so the CLI can name where its input came from.
package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer holding its content.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input reads bytes sequentially through a Queue of one or more input
// streams. Both the current and last completed lines are tracked to
// facilitate user feedback. Reading is byte-granular on purpose: the
// tokenizer's lexical rules are defined over bytes, and loading must not
// re-encode anything on the way in.
type Input struct {
	br    *bufio.Reader
	cl    io.Closer
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadAll drains in to exhaustion and returns the accumulated bytes. The
// compiler operates on a fully-loaded buffer, so this is the only read path
// the CLI uses; line tracking still happens underneath for diagnostics.
func (in *Input) ReadAll() ([]byte, error) {
	var buf bytes.Buffer
	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
		buf.WriteByte(c)
	}
}

// ReadByte reads one byte from the current input stream, appending it into
// the current Scan line, and rolling Scan over to Last after line feed.
// Exhausting one queued stream moves on to the next; io.EOF means the whole
// queue is drained.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return 0, io.EOF
		}
		c, err := in.br.ReadByte()
		if err == io.EOF {
			in.closeIn()
			continue
		}
		if err != nil {
			return 0, err
		}
		if c == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteByte(c)
		}
		return c, nil
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if in.cl != nil {
		in.cl.Close()
		in.cl = nil
	}
	in.br = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		in.cl = cl
	}
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
