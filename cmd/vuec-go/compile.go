package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	compiler "vuec-go/packages/compiler/src"
	"vuec-go/packages/compiler/src/config"
	"vuec-go/packages/compiler/src/template"
)

// StdoutDir as -o writes outputs to standard output in argument order
const StdoutDir = "-"

type compileFlags struct {
	configPath string
	mode       string
	minify     bool
	format     string
	outDir     string
	verbosity  int
	jobs       int
}

func parseCompileFlags(args []string, stderr io.Writer) (*compileFlags, *flag.FlagSet, error) {
	f := &compileFlags{}
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	fs.StringVar(&f.mode, "mode", "", "generation mode: inline or render-fn")
	fs.BoolVar(&f.minify, "minify", false, "print compact output")
	fs.StringVar(&f.format, "format", "", "output format: js or cbor")
	fs.StringVar(&f.outDir, "o", "", `output directory, "-" for stdout (default: next to each input)`)
	fs.IntVar(&f.verbosity, "v", 0, "log verbosity")
	fs.IntVar(&f.jobs, "j", runtime.NumCPU(), "files compiled concurrently")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// resolveConfig layers defaults, the configuration file and the flags
// given explicitly on the command line
func resolveConfig(f *compileFlags, fs *flag.FlagSet) (*config.CompilerConfig, error) {
	var file *config.File
	var err error
	if f.configPath != "" {
		file, err = config.Load(f.configPath)
	} else {
		file, err = config.FindAndLoad(".")
	}
	if err != nil {
		return nil, err
	}
	if file != nil {
		log.Infof("using configuration %s", filepath.Join(file.Dir, config.FileName))
	}
	opts := file.Options()

	var flagErr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			mode, err := template.ParseGenerationMode(f.mode)
			if err != nil {
				flagErr = errors.Join(flagErr, err)
				return
			}
			opts = append(opts, config.WithMode(mode))
		case "minify":
			opts = append(opts, config.WithMinify(f.minify))
		case "format":
			format, err := config.ParseOutputFormat(f.format)
			if err != nil {
				flagErr = errors.Join(flagErr, err)
				return
			}
			opts = append(opts, config.WithFormat(format))
		case "o":
			opts = append(opts, config.WithOutDir(f.outDir))
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}
	return config.NewCompilerConfig(opts...), nil
}

func runCompile(args []string, stdout, stderr io.Writer) error {
	f, fs, err := parseCompileFlags(args, stderr)
	if err != nil {
		return err
	}
	commonlog.Configure(f.verbosity, nil)

	files := fs.Args()
	if len(files) == 0 {
		return errors.New("no input files")
	}
	cfg, err := resolveConfig(f, fs)
	if err != nil {
		return err
	}
	if cfg.OutDir == StdoutDir && cfg.Format != config.FormatJS {
		return fmt.Errorf("cannot write %s output to stdout", cfg.Format)
	}

	outputs, err := compileAll(context.Background(), compiler.NewCompiler(cfg), files, f.jobs)
	if err != nil {
		return err
	}

	for i, out := range outputs {
		for _, d := range out.diagnostics {
			fmt.Fprintln(stderr, d)
		}
		if err := writeOutput(cfg, files[i], out.data, stdout); err != nil {
			return err
		}
	}
	log.Infof("compiled %d file(s)", len(files))
	return nil
}

type compiled struct {
	data        []byte
	diagnostics []string
}

// compileAll compiles files concurrently. Outputs keep the order of files;
// the first failure cancels the rest.
func compileAll(ctx context.Context, c *compiler.Compiler, files []string, jobs int) ([]compiled, error) {
	outputs := make([]compiled, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := c.CompileFile(path)
			if err != nil {
				return err
			}
			data, err := result.Encode(c.Config().Format)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out := compiled{data: data}
			for _, d := range result.Diagnostics {
				out.diagnostics = append(out.diagnostics, fmt.Sprintf("%s: %s", path, d))
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// outputPath is the input name with the format's extension, in dir or
// next to the input
func outputPath(input, dir string, format config.OutputFormat) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + format.Extension()
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base)
}

func writeOutput(cfg *config.CompilerConfig, input string, data []byte, stdout io.Writer) error {
	if cfg.OutDir == StdoutDir {
		_, err := stdout.Write(data)
		return err
	}
	path := outputPath(input, cfg.OutDir, cfg.Format)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	log.Infof("wrote %s", path)
	return nil
}
