package main

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/loader"
	"github.com/katalvlaran/metro/report"
)

const (
	VerboseFlag     = "verbose"
	LogFormatFlag   = "log-format"
	GraphFlag       = "graph"
	FromFlag        = "from"
	ToFlag          = "to"
	FormatFlag      = "format"
	MaxDistanceFlag = "max-distance"
	AvoidAboveFlag  = "avoid-above"
	KindFlag        = "kind"
	SizeFlag        = "n"
	ColsFlag        = "cols"
	ProbabilityFlag = "p"
	SeedFlag        = "seed"
	WeightFlag      = "weight"
	MinWeightFlag   = "min-weight"
	MaxWeightFlag   = "max-weight"
)

// metroCLI carries the writers and the logger shared by every command.
type metroCLI struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.SugaredLogger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	m := &metroCLI{stdout: stdout, stderr: stderr, logger: zap.NewNop().Sugar()}

	searchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     GraphFlag,
			Aliases:  []string{"g"},
			Usage:    "network file (.txt edge list or .yaml)",
			EnvVars:  []string{"METRO_GRAPH"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     FromFlag,
			Usage:    "start station (name or index)",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  MaxDistanceFlag,
			Usage: "ignore routes longer than this total weight (default unlimited)",
		},
		&cli.Float64Flag{
			Name:  AvoidAboveFlag,
			Usage: "treat edges with weight >= this value as closed (default none)",
		},
	}

	return &cli.App{
		Name:      "metro",
		Usage:     "shortest routes over a weighted transit network",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  VerboseFlag,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:    LogFormatFlag,
				Usage:   "console, json or none",
				Value:   "console",
				EnvVars: []string{"METRO_LOG_FORMAT"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			logger, err := newLogger(cCtx.String(LogFormatFlag), cCtx.Bool(VerboseFlag))
			if err != nil {
				return err
			}
			m.logger = logger.Sugar()

			return nil
		},
		After: func(*cli.Context) error {
			_ = m.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "route",
				Aliases: []string{"r"},
				Usage:   "print the shortest route between two stations",
				Flags: append(searchFlags, &cli.StringFlag{
					Name:     ToFlag,
					Usage:    "destination station (name or index)",
					Required: true,
				}),
				Action: m.route,
			},
			{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "print distances from one station to every station",
				Flags: append(searchFlags, &cli.StringFlag{
					Name:  FormatFlag,
					Usage: "text or yaml",
					Value: "text",
				}),
				Action: m.table,
			},
			{
				Name:  "generate",
				Usage: "write a synthetic network as a text edge list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: KindFlag, Usage: "path, cycle, complete, star, grid or random", Value: "path"},
					&cli.IntFlag{Name: SizeFlag, Usage: "number of stations", Value: 5},
					&cli.IntFlag{Name: ColsFlag, Usage: "grid columns (grid only)", Value: 1},
					&cli.Float64Flag{Name: ProbabilityFlag, Usage: "edge probability (random only)", Value: 0.3},
					&cli.Int64Flag{Name: SeedFlag, Usage: "random seed", Value: 1},
					&cli.Float64Flag{Name: WeightFlag, Usage: "constant edge weight", Value: builder.DefaultEdgeWeight},
					&cli.IntFlag{Name: MinWeightFlag, Usage: "minimum random whole weight"},
					&cli.IntFlag{Name: MaxWeightFlag, Usage: "maximum random whole weight (0 = use --weight)"},
				},
				Action: m.generate,
			},
		},
	}
}

// newLogger mirrors the development/production split: console output is
// human-oriented, json is for log collectors.
func newLogger(format string, verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	var cfg zap.Config
	switch format {
	case "none":
		return zap.NewNop(), nil
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}

// load reads the network and resolves --from.
func (m *metroCLI) load(cCtx *cli.Context) (*loader.Network, int, error) {
	path := cCtx.String(GraphFlag)
	began := time.Now()
	net, err := loader.Load(path)
	if err != nil {
		return nil, 0, err
	}
	m.logger.Debugw("network loaded",
		"path", path,
		"vertices", net.Graph.VertexCount(),
		"edges", net.Graph.EdgeCount(),
		"elapsed", time.Since(began))

	from, err := net.Index(cCtx.String(FromFlag))
	if err != nil {
		return nil, 0, fmt.Errorf("--%s: %w", FromFlag, err)
	}

	return net, from, nil
}

// searchOptions translates the shared search flags. Only flags that were set
// become options; NewSearch validates their values.
func searchOptions(cCtx *cli.Context) []dijkstra.Option {
	var opts []dijkstra.Option
	if cCtx.IsSet(MaxDistanceFlag) {
		opts = append(opts, dijkstra.WithMaxDistance(cCtx.Float64(MaxDistanceFlag)))
	}
	if cCtx.IsSet(AvoidAboveFlag) {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(cCtx.Float64(AvoidAboveFlag)))
	}

	return opts
}

func (m *metroCLI) route(cCtx *cli.Context) error {
	net, from, err := m.load(cCtx)
	if err != nil {
		return err
	}
	to, err := net.Index(cCtx.String(ToFlag))
	if err != nil {
		return fmt.Errorf("--%s: %w", ToFlag, err)
	}

	opts := append(searchOptions(cCtx), dijkstra.WithTarget(to))
	search, err := dijkstra.NewSearch(net.Graph, opts...)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := search.RunContext(cCtx.Context, from)
	if err != nil {
		return err
	}
	m.logger.Debugw("route search finished",
		"from", net.Name(from),
		"to", net.Name(to),
		"finalized", len(res.VisitOrder()),
		"elapsed", time.Since(began))

	if err = report.WritePath(m.stdout, res, to, net); err != nil {
		m.logger.Infow("no route", "from", net.Name(from), "to", net.Name(to))
		return fmt.Errorf("%s -> %s: %w", net.Name(from), net.Name(to), err)
	}

	return nil
}

func (m *metroCLI) table(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if format != "text" && format != "yaml" {
		return fmt.Errorf("--%s: unknown format %q", FormatFlag, format)
	}

	net, from, err := m.load(cCtx)
	if err != nil {
		return err
	}
	search, err := dijkstra.NewSearch(net.Graph, searchOptions(cCtx)...)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := search.RunContext(cCtx.Context, from)
	if err != nil {
		return err
	}
	m.logger.Debugw("table search finished",
		"from", net.Name(from),
		"finalized", len(res.VisitOrder()),
		"elapsed", time.Since(began))

	if format == "yaml" {
		return report.WriteYAML(m.stdout, res, net)
	}

	return report.WriteText(m.stdout, res, net)
}

func (m *metroCLI) generate(cCtx *cli.Context) error {
	n := cCtx.Int(SizeFlag)

	var con builder.Constructor
	switch kind := cCtx.String(KindFlag); kind {
	case "path":
		con = builder.Path(n)
	case "cycle":
		con = builder.Cycle(n)
	case "complete":
		con = builder.Complete(n)
	case "star":
		con = builder.Star(n)
	case "grid":
		cols := cCtx.Int(ColsFlag)
		if cols < 1 || n%cols != 0 {
			return fmt.Errorf("--%s=%d must divide -%s=%d", ColsFlag, cols, SizeFlag, n)
		}
		con = builder.Grid(n/cols, cols)
	case "random":
		con = builder.RandomSparse(n, cCtx.Float64(ProbabilityFlag))
	default:
		return fmt.Errorf("--%s: unknown kind %q", KindFlag, kind)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(cCtx.Int64(SeedFlag))}
	minW, maxW := cCtx.Int(MinWeightFlag), cCtx.Int(MaxWeightFlag)
	switch {
	case maxW > 0:
		if minW < 0 || maxW < minW {
			return fmt.Errorf("need 0 <= --%s <= --%s", MinWeightFlag, MaxWeightFlag)
		}
		bopts = append(bopts, builder.WithWeightFn(builder.IntegerWeightFn(minW, maxW)))
	default:
		w := cCtx.Float64(WeightFlag)
		if w < 0 {
			return fmt.Errorf("--%s must be non-negative", WeightFlag)
		}
		bopts = append(bopts, builder.WithWeightFn(builder.ConstantWeightFn(w)))
	}

	g, err := builder.BuildGraph(n, bopts, con)
	if err != nil {
		return err
	}
	m.logger.Debugw("network generated", "kind", cCtx.String(KindFlag), "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return loader.WriteText(m.stdout, g)
}
