// Command gen_primitives regenerates internal/runtimec/registry_generated.go
// from the prim_* function definitions in internal/runtimec/runtime.c.tmpl,
// so the Forth-word table in internal/runtimec/primitives.go can be
// cross-checked against what the template actually defines.
//
// One errgroup stage scans the template and builds the generated source, a
// second pipes it through gofmt concurrently, and the two are joined by a
// ready channel so the scan stage only starts once gofmt's input pipe is in
// place to receive its output.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var primDef = regexp.MustCompile(`^static \w[\w ]*\*?\s*(prim_\w+)\(void\)`)

// run scans the C template for every "static ... prim_xxx(void)" definition
// and emits a Go source file listing them in first-occurrence order.
func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package runtimec\n\n")
	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString(" -- do not edit by hand.\n\n")
	buf.WriteString("//go:generate go run ../../scripts/gen_primitives.go -- runtime.c.tmpl registry_generated.go\n\n")
	buf.WriteString("// templatePrimFuncs lists every prim_* function the runtime template\n")
	buf.WriteString("// defines. Primitives() in primitives.go must name a CFunc from this\n")
	buf.WriteString("// set for every Forth word it registers.\n")
	buf.WriteString("var templatePrimFuncs = []string{\n")

	seen := map[string]bool{}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := primDef.FindSubmatch(sc.Bytes()); len(match) > 0 {
			name := string(match[1])
			if seen[name] {
				continue
			}
			seen[name] = true
			fmt.Fprintf(&buf, "\t%q,\n", name)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	buf.WriteString("}\n")
	_, err := buf.WriteTo(out)
	return err
}
