// Package main provides the ndarray demo CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/csvio"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("ndarray %s\n", version)
		return
	}

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ndarray: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, then walks through each backend operation and prints
// the results to stdout. Logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ndarray", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	csvPath := fs.String("csv", "", "CSV file to load (header: rows,cols)")
	seed := fs.Int64("seed", 0, "random seed; overrides the config, negative picks one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})

	logger := cfg.Logger(stderr)
	dtype, err := cfg.ArrayDType()
	if err != nil {
		return err
	}
	backend := cpu.New(cpu.WithParallel(cfg.ParallelConfig()))
	logger.Info("starting", "version", version, "backend", backend.Name(),
		"dtype", dtype.String(), "parallel", cfg.Parallel.Enabled)

	d := demo{backend: backend, out: stdout, logger: logger}
	if err := d.endToEnd(); err != nil {
		return err
	}

	src := array.NewSource(cfg.Seed)
	data, err := d.load(*csvPath, dtype, src)
	if err != nil {
		return err
	}
	return d.transform(data, src)
}

type demo struct {
	backend *cpu.CPUBackend
	out     io.Writer
	logger  *slog.Logger
}

// endToEnd adds a constant matrix, then transposes the sum.
func (d demo) endToEnd() error {
	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	if err != nil {
		return err
	}
	b, err := array.Full(array.Shape{2, 3}, 10.0)
	if err != nil {
		return err
	}

	sum, err := d.backend.Add(nil, a, b)
	if err != nil {
		return err
	}
	d.print("a + 10", sum)

	tr, err := d.backend.Transpose(sum)
	if err != nil {
		return err
	}
	d.print("transpose(a + 10)", tr)

	mask, err := d.backend.Compare(nil, a, sum, array.OpLess)
	if err != nil {
		return err
	}
	d.print("a < a + 10", mask)

	eye, err := array.Eye(3, array.Float64)
	if err != nil {
		return err
	}
	prod, err := d.backend.Dot(nil, sum, eye)
	if err != nil {
		return err
	}
	d.print("(a + 10) . I", prod)

	bias, err := array.FromSlice([]float64{100, 200}, array.Shape{2, 1})
	if err != nil {
		return err
	}
	padded, err := d.backend.BroadcastAdd(nil, sum, bias)
	if err != nil {
		return err
	}
	d.print("broadcast add", padded)
	return nil
}

// load reads the CSV file, or samples a normal matrix when path is empty.
func (d demo) load(path string, dtype array.DType, src array.Source) (*array.Array, error) {
	if path != "" {
		a, err := csvio.NewReader(csvio.WithLogger(d.logger)).ReadFile(path, dtype)
		if err != nil {
			return nil, err
		}
		d.logger.Info("loaded csv", "path", path, "shape", a.Shape().String())
		return a, nil
	}

	if !dtype.IsFloat() {
		dtype = array.Float64
	}
	a, err := array.RandomNormal(6, 3, 0, 1, dtype, src)
	if err != nil {
		return nil, err
	}
	d.logger.Info("sampled normal", "shape", a.Shape().String(), "dtype", dtype.String())
	return a, nil
}

// transform subsamples rows of data, concatenates the sample back onto
// data and prints each step.
func (d demo) transform(data *array.Array, src array.Source) error {
	d.print("data", data)

	n := max(data.Dim(0)/2, 1)
	sub, err := d.backend.Subsample(data, n, src)
	if err != nil {
		return err
	}
	d.print(fmt.Sprintf("subsample(%d)", n), sub)

	joined, err := d.backend.Concat(data, sub, 0)
	if err != nil {
		return err
	}
	d.print("concat(data, sample, axis=0)", joined)

	tr, err := d.backend.Transpose(joined)
	if err != nil {
		return err
	}
	d.logger.Debug("transposed", "from", joined.Shape().String(), "to", tr.Shape().String())
	return csvio.Write(d.out, tr)
}

func (d demo) print(label string, a *array.Array) {
	fmt.Fprintf(d.out, "%s: %v\n", label, a)
	if a.NDim() != 2 {
		return
	}
	rows, cols := a.Dim(0), a.Dim(1)
	for i := 0; i < rows; i++ {
		fmt.Fprint(d.out, "  [")
		for j := 0; j < cols; j++ {
			if j > 0 {
				fmt.Fprint(d.out, " ")
			}
			v, err := a.Get(i, j)
			if err != nil {
				fmt.Fprint(d.out, "?")
				continue
			}
			fmt.Fprint(d.out, v)
		}
		fmt.Fprintln(d.out, "]")
	}
}
