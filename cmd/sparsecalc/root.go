// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvsparse/session"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/textfmt"
	"github.com/spf13/cobra"
)

// app carries flag values and the resolved configuration of one invocation.
type app struct {
	cfgPath string
	op      string
	lenient bool
	verbose bool
	k       float64

	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Evaluate sparse matrix expressions",
		Long: `sparsecalc reads two square matrices in the "n e1 e2" description
format from a file or stdin and prints sums, differences, products,
transposes and scalings in the row display format.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (default $"+envConfig+")")
	pf.StringVar(&a.op, "op", "", "operator: + - * (or add, sub, mul)")
	pf.BoolVar(&a.lenient, "lenient", false, "store NaN for unparseable values")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "eval [file]",
			Short: "Print A <op> B",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runEval,
		},
		&cobra.Command{
			Use:   "show [file]",
			Short: "Print both operands",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runShow,
		},
		&cobra.Command{
			Use:   "transpose [file]",
			Short: "Print the transpose of A",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runTranspose,
		},
	)

	scaleCmd := &cobra.Command{
		Use:   "scale [file]",
		Short: "Print k·A",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runScale,
	}
	scaleCmd.Flags().Float64Var(&a.k, "k", 1, "scalar factor (default from config)")
	root.AddCommand(scaleCmd)

	return root
}

// setup resolves configuration in the order defaults, file, environment,
// flags, and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.cfgPath
	if path == "" {
		path = os.Getenv(envConfig)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("op") {
		cfg.Operator = a.op
	}
	if flags.Changed("lenient") {
		cfg.Lenient = a.lenient
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("k") {
		cfg.Scale = a.k
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := parseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("config resolved",
		"path", path,
		"operator", cfg.Operator,
		"lenient", cfg.Lenient,
		"scale", cfg.Scale,
	)

	return nil
}

// open returns the input named by args, or stdin for none or "-".
func (a *app) open(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// load parses the input and wraps it in a session with the configured operator.
func (a *app) load(cmd *cobra.Command, args []string) (*session.State, error) {
	r, closeFn, err := a.open(cmd, args)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var popts []textfmt.Option
	if a.cfg.Lenient {
		popts = append(popts, textfmt.WithLenientValues())
	}
	pair, err := textfmt.Parse(r, popts...)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	a.log.Debug("input parsed", "size", pair.A.Size(), "nnz_a", pair.A.NNZ(), "nnz_b", pair.B.NNZ())

	op, _ := session.ParseOperator(a.cfg.Operator) // validated in setup

	return session.New(pair.A, pair.B, op, session.WithLogger(a.log))
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args)
	if err != nil {
		return err
	}

	return textfmt.Display(cmd.OutOrStdout(), s.Result())
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	snap := s.Snapshot()
	w := cmd.OutOrStdout()
	for _, part := range []struct {
		label string
		m     *sparse.Sparse
	}{{"A", snap.A}, {"B", snap.B}} {
		if _, err = fmt.Fprintf(w, "%s:\n", part.label); err != nil {
			return err
		}
		if err = textfmt.Display(w, part.m); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) runTranspose(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	if err = s.TransposeA(); err != nil {
		return err
	}

	return textfmt.Display(cmd.OutOrStdout(), s.A())
}

func (a *app) runScale(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	if err = s.ScaleA(a.cfg.Scale); err != nil {
		return err
	}

	return textfmt.Display(cmd.OutOrStdout(), s.A())
}
