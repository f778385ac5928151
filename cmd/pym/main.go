// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"go.astrophena.name/pym/internal/atomicio"
	"go.astrophena.name/pym/internal/cli"
	"go.astrophena.name/pym/internal/cli/envflag"
	"go.astrophena.name/pym/internal/logger"
	"go.astrophena.name/pym/internal/py/format"
	"go.astrophena.name/pym/internal/py/render"
	"go.astrophena.name/pym/internal/py/repl"
	"go.astrophena.name/pym/internal/util/syncx"
)

func main() { cli.Main(new(app)) }

const stdinName = "<standard input>"

type app struct {
	// flags
	rewrite     bool
	list        bool
	interactive bool
	backup      bool
	verbose     bool
	indent      *int
	jobs        *int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.rewrite, "w", false, "Write result to (source) file instead of stdout.")
	fs.BoolVar(&a.list, "l", false, "List files whose formatting differs from pym's.")
	fs.BoolVar(&a.interactive, "i", false, "Format statements read interactively from stdin.")
	fs.BoolVar(&a.backup, "backup", false, "With -w, keep a backup of each rewritten file.")
	fs.BoolVar(&a.verbose, "v", false, "Log details about formatted files to stderr.")
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	a.indent = envflag.Value("indent", "PYM_INDENT", 4, "Number of spaces per indentation `level`.", fs, getenv)
	a.jobs = envflag.Value("j", "PYM_JOBS", runtime.NumCPU(), "Number of files to format in `parallel`.", fs, getenv)
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if *a.indent < 1 {
		return fmt.Errorf("%w: indentation must be at least one space, got %d", cli.ErrInvalidArgs, *a.indent)
	}
	if *a.jobs < 1 {
		return fmt.Errorf("%w: at least one job required, got %d", cli.ErrInvalidArgs, *a.jobs)
	}

	cfg := &render.Config{Indent: strings.Repeat(" ", *a.indent)}
	if a.verbose {
		cfg.Logf = env.Logf
	}

	if a.interactive {
		if len(env.Args) > 0 || a.rewrite || a.list {
			return fmt.Errorf("%w: -i reads from stdin and takes no files", cli.ErrInvalidArgs)
		}
		env.Logf("Use Ctrl+D to exit.")
		return repl.Start(ctx, env.Stdin, env.Stdout, cfg)
	}

	if len(env.Args) == 0 {
		if a.rewrite {
			return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrInvalidArgs)
		}
		return a.formatStdin(env, cfg)
	}

	return a.formatFiles(ctx, env, cfg)
}

func (a *app) formatStdin(env *cli.Env, cfg *render.Config) error {
	src, err := io.ReadAll(env.Stdin)
	if err != nil {
		return err
	}
	out, err := format.File(cfg, stdinName, src)
	if err != nil {
		return err
	}
	if a.list {
		if !bytes.Equal(src, out) {
			fmt.Fprintln(env.Stdout, stdinName)
		}
		return nil
	}
	_, err = env.Stdout.Write(out)
	return err
}

// result is the outcome of formatting one file.
type result struct {
	out     []byte
	changed bool
}

// formatFiles formats files in parallel and prints the results in the order
// the files were given. Errors are reported after all files are processed.
func (a *app) formatFiles(ctx context.Context, env *cli.Env, cfg *render.Config) error {
	var (
		results = make([]result, len(env.Args))
		errs    = syncx.Protect(new([]error))
		lwg     = syncx.NewLimitedWaitGroup(*a.jobs)
	)
	for i, file := range env.Args {
		if ctx.Err() != nil {
			break
		}
		lwg.Go(func() {
			res, err := a.formatFile(env, cfg, file)
			if err != nil {
				errs.Access(func(errs *[]error) {
					*errs = append(*errs, fmt.Errorf("formatting %q: %w", file, err))
				})
				return
			}
			results[i] = res
		})
	}
	lwg.Wait()

	for i, res := range results {
		switch {
		case a.list && res.changed:
			fmt.Fprintln(env.Stdout, env.Args[i])
		case !a.list && !a.rewrite:
			env.Stdout.Write(res.out)
		}
	}

	var err error
	errs.RAccess(func(errs *[]error) { err = errors.Join(*errs...) })
	if err != nil {
		return err
	}
	return ctx.Err()
}

func (a *app) formatFile(env *cli.Env, cfg *render.Config, file string) (result, error) {
	start := time.Now()

	src, err := os.ReadFile(file)
	if err != nil {
		return result{}, err
	}

	var logf logger.Logf = logger.Discard
	if a.verbose {
		logf = logger.Logf(env.Logf).WithPrefix(file + ": ")
	}
	fileCfg := *cfg
	fileCfg.Logf = logf

	out, err := format.File(&fileCfg, file, src)
	if err != nil {
		return result{}, err
	}
	res := result{out: out, changed: !bytes.Equal(src, out)}

	if a.rewrite && res.changed {
		perm := fs.FileMode(0o644)
		if fi, err := os.Stat(file); err == nil {
			perm = fi.Mode().Perm()
		}
		write := atomicio.WriteFile
		if a.backup {
			write = atomicio.WriteFileBackup
		}
		if err := write(file, out, perm); err != nil {
			return result{}, err
		}
		logf("rewritten")
	}

	logf("formatted in %v", time.Since(start).Round(time.Microsecond))
	return res, nil
}
