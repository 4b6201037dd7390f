// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/render"
	"github.com/katalvlaran/linalg/internal/workspace"
	"github.com/katalvlaran/linalg/matrix"
)

const appName = "linalg"

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	wsPath     string
	saveAs     string
	cfg        *config.Config
	ws         *workspace.Workspace
	render     *render.Renderer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   appName,
		Short: "Small-matrix linear algebra over a YAML workspace",
		Long: `linalg loads named matrices from a workspace file and runs one core
operation (determinant, inverse, rank, products, Markov chains) on them.

Examples:
  linalg -w ws.yaml det A
  linalg -w ws.yaml multiply A B --save AB
  linalg -w ws.yaml markov evolve weather --steps 7 --start 1`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	defaults := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.wsPath, "workspace", "w", "", "workspace file (default from config: "+defaults.Workspace+")")
	pf.StringVar(&a.saveAs, "save", "", "store a matrix result under this name in the workspace file")
	pf.String("log-level", defaults.LogLevel, "log level (trace|debug|info|warn|error)")
	pf.String("log-format", defaults.LogFormat, "log format (console|json)")
	pf.Int("precision", defaults.Precision, "fraction digits in output, -1 = shortest")
	pf.String("locale", defaults.Locale, "BCP 47 locale for number formatting")
	pf.Float64("epsilon", defaults.Epsilon, "rank tolerance: minors with |det| <= epsilon count as zero")

	root.AddCommand(
		a.listCmd(),
		a.unaryCmd("det", "Determinant (Laplace expansion along the first row)", a.det),
		a.unaryCmd("rank", "Rank (largest non-vanishing square minor)", a.rank),
		a.unaryCmd("inverse", "Inverse via adjugate / determinant", a.matrixOp((*matrix.Dense).Inverse)),
		a.unaryCmd("adjugate", "Adjugate (transposed cofactor matrix)", a.matrixOp((*matrix.Dense).Adjugate)),
		a.unaryCmd("minors", "Matrix of minors", a.matrixOp((*matrix.Dense).Minors)),
		a.unaryCmd("cofactors", "Matrix of cofactors", a.matrixOp((*matrix.Dense).Cofactors)),
		a.unaryCmd("transpose", "Transpose", a.matrixOp(func(m *matrix.Dense) (*matrix.Dense, error) { return m.T(), nil })),
		a.unaryCmd("round", "Round every element (halves away from zero)", a.matrixOp(func(m *matrix.Dense) (*matrix.Dense, error) { return m.Round(), nil })),
		a.unaryCmd("ceil", "Round every element up", a.matrixOp(func(m *matrix.Dense) (*matrix.Dense, error) { return m.Ceil(), nil })),
		a.unaryCmd("floor", "Round every element down", a.matrixOp(func(m *matrix.Dense) (*matrix.Dense, error) { return m.Floor(), nil })),
		a.binaryCmd("add", "Element-wise sum A + B", matrix.Add),
		a.binaryCmd("sub", "Element-wise difference A - B", matrix.Sub),
		a.binaryCmd("multiply", "Matrix product A × B", matrix.Mul),
		a.scaleCmd(),
		a.powCmd(),
		a.markovCmd(),
	)

	return root
}

// setup resolves configuration (file, then flags), configures logging and
// loads the workspace.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("precision") {
		cfg.Precision, _ = flags.GetInt("precision")
	}
	if flags.Changed("locale") {
		cfg.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon, _ = flags.GetFloat64("epsilon")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if a.wsPath == "" {
		a.wsPath = cfg.Workspace
	}
	a.cfg = cfg

	a.configureLogger()
	a.render = render.New(cfg.Tag(), cfg.Precision)

	if a.ws, err = workspace.Load(a.wsPath); err != nil {
		return err
	}
	log.Debug().
		Str("workspace", a.wsPath).
		Strs("matrices", a.ws.Names()).
		Msg("workspace loaded")

	return nil
}

func (a *app) configureLogger() {
	zerolog.SetGlobalLevel(a.cfg.Level())
	if a.cfg.LogFormat == config.FormatJSON {
		log.Logger = zerolog.New(a.errOut).With().Timestamp().Logger()
		return
	}

	cw := zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.Kitchen}
	if f, ok := a.errOut.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		cw.NoColor = true
	}
	log.Logger = log.Output(cw)
}

// store saves m into the workspace file when --save was given.
func (a *app) store(m *matrix.Dense) error {
	if a.saveAs == "" {
		return nil
	}
	a.ws.Put(a.saveAs, m)
	if err := a.ws.Save(a.wsPath); err != nil {
		return err
	}
	log.Info().Str("name", a.saveAs).Str("workspace", a.wsPath).Msg("result saved")

	return nil
}
