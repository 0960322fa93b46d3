package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lassik/thirdc/internal/compiler"
	"github.com/lassik/thirdc/internal/fileinput"
	"github.com/lassik/thirdc/internal/flushio"
	"github.com/lassik/thirdc/internal/panicerr"
)

// defaultSourceName is the source file compiled when no argument is given.
const defaultSourceName = "scheme.4th"

var (
	outputFile string
	stackSize  int
)

var compileCmd = &cobra.Command{
	Use:   "compile [source-file]",
	Short: "Compile a Forth source file to C",
	Long: `compile reads a Forth-dialect source file (default scheme.4th) and
writes the emitted C source to standard output, or to the file named by
-o. The emitted program, once built against a C compiler, links against
the runtime primitive layer thirdc writes into its own preamble.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: standard output)")
	compileCmd.Flags().IntVar(&stackSize, "stack-size", 0, "emitted data stack depth (default: runtime's built-in default)")
}

func runCompile(_ *cobra.Command, args []string) error {
	name := defaultSourceName
	if len(args) > 0 {
		name = args[0]
	}

	f, err := os.Open(name)
	if err != nil {
		log.ErrorIf(err)
		return nil
	}
	defer f.Close()

	in := &fileinput.Input{Queue: []io.Reader{f}}
	src, err := in.ReadAll()
	if err != nil {
		log.ErrorIf(err)
		return nil
	}

	out, closeOut, err := openOutput()
	if err != nil {
		log.ErrorIf(err)
		return nil
	}
	defer closeOut()

	wf := flushio.NewWriteFlusher(out)
	var opts []compiler.Option
	if stackSize > 0 {
		opts = append(opts, compiler.WithStackSize(stackSize))
	}

	runErr := panicerr.Recover("compile", func() error {
		c, err := compiler.New(bytes.NewReader(src), wf, opts...)
		if err != nil {
			return err
		}
		if err := c.Run(); err != nil {
			return err
		}
		return wf.Flush()
	})
	if runErr != nil {
		log.ErrorIf(runErr)
	}
	return nil
}

func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
