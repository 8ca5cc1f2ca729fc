package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/OpenRCT2/OpenRCT2-sub002/config"
	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/OpenRCT2/OpenRCT2-sub002/plot"
	"github.com/OpenRCT2/OpenRCT2-sub002/server"
	"github.com/OpenRCT2/OpenRCT2-sub002/stats"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const usage = `usage: kiseki [flags] command [args]

commands:
  list [-turns]   list every track element, or only the turns
  show NAME       print one element
  stats DESIGN-ID print the force summary of a stored design
  plot NAME       plot the force profile of an element
  serve           serve the catalog and designs over HTTP
`

func main() {
	defer zap.S().Sync()
	configPath := flag.String("config", "", "path to config file (defaults are used when empty)")
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)

	conf := config.Default()
	if *configPath != "" {
		conf, err = config.Load(*configPath)
		if err != nil {
			zap.S().Fatalw("loading config failed", "err", err)
		}
	}

	err = run(conf, flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		zap.S().Errorw("command failed", "err", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(conf config.Config, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "list":
		return list(os.Stdout, args[1:])
	case "show":
		if len(args) != 2 {
			return errUsage
		}
		return show(conf, args[1])
	case "stats":
		if len(args) != 2 {
			return errUsage
		}
		return designStats(conf, args[1])
	case "plot":
		if len(args) != 2 {
			return errUsage
		}
		t, err := track.ParseElemType(args[1])
		if err != nil {
			return err
		}
		return plot.Show(t, conf.SampleStep)
	case "serve":
		return serve(conf)
	default:
		return errUsage
	}
}

func list(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	turns := fs.Bool("turns", false, "only list elements that turn")
	err := fs.Parse(args)
	if err != nil || fs.NArg() != 0 {
		return errUsage
	}
	descs := track.All()
	if *turns {
		descs = track.Filter((*track.Descriptor).IsTurn)
	}
	w := tabwriter.NewWriter(out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(w, "#\tname\tgroup\tlength\ttiles\tvertical\tlateral")
	for _, d := range descs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			d.Type, d.Type, d.Definition.Group, d.PieceLength, d.TileCount(), d.VerticalKind, d.LateralKind)
	}
	return w.Flush()
}

func show(conf config.Config, name string) error {
	t, err := track.ParseElemType(name)
	if err != nil {
		return err
	}
	d := track.GetDescriptor(t)
	def := d.Definition
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
	fmt.Fprintf(w, "type\t%s (%d)\n", d.Type, d.Type)
	fmt.Fprintf(w, "group\t%s\n", def.Group)
	fmt.Fprintf(w, "pitch\t%s to %s\n", def.PitchStart, def.PitchEnd)
	fmt.Fprintf(w, "roll\t%s to %s\n", def.RollStart, def.RollEnd)
	fmt.Fprintf(w, "coordinates\t%+v\n", d.Coordinates)
	fmt.Fprintf(w, "length\t%d\n", d.PieceLength)
	fmt.Fprintf(w, "price\t%d (ride cost %d)\n", d.Price(conf.RideCost), conf.RideCost)
	fmt.Fprintf(w, "flags\t%s\n", d.Flags)
	fmt.Fprintf(w, "next\t%s\n", d.CurveChain.Next)
	fmt.Fprintf(w, "previous\t%s\n", d.CurveChain.Previous)
	fmt.Fprintf(w, "mirror\t%s\n", d.MirrorElement)
	fmt.Fprintf(w, "alternative\t%s\n", d.AlternativeType)
	fmt.Fprintf(w, "spin\t%s\n", d.SpinFunction)
	fmt.Fprintf(w, "tiles\t%d\n", d.TileCount())
	fmt.Fprintf(w, "vertical\t%s\n", d.VerticalKind)
	fmt.Fprintf(w, "lateral\t%s\n", d.LateralKind)
	g := stats.At(d, 0, conf.Velocity)
	fmt.Fprintf(w, "g-forces at start\t%d vertical, %d lateral\n", g.Vertical, g.Lateral)
	return w.Flush()
}

func designStats(conf config.Config, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("design ID: %w", err)
	}
	store, err := design.OpenStore(conf.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	d, err := store.Get(id)
	if err != nil {
		return err
	}
	s := stats.Analyze(d.Pieces, conf.Velocity)
	piece := func(i int) string {
		if i < 0 {
			return "-"
		}
		return fmt.Sprintf("%d %s", i, d.Pieces[i])
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", d.Name)
	fmt.Fprintf(w, "pieces\t%d\n", len(d.Pieces))
	fmt.Fprintf(w, "length\t%d\n", d.Length())
	fmt.Fprintf(w, "price\t%d\n", d.Price(conf.RideCost))
	fmt.Fprintf(w, "footprint\t%d\n", d.Footprint())
	fmt.Fprintf(w, "inversions\t%d\n", d.Inversions())
	fmt.Fprintf(w, "max vertical\t%d (%s)\n", s.MaxVertical, piece(s.MaxVerticalPiece))
	fmt.Fprintf(w, "min vertical\t%d (%s)\n", s.MinVertical, piece(s.MinVerticalPiece))
	fmt.Fprintf(w, "max lateral\t%d (%s)\n", s.MaxLateral, piece(s.MaxLateralPiece))
	return w.Flush()
}

func serve(conf config.Config) error {
	store, err := design.OpenStore(conf.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	s := server.New(store, server.Conf{
		RideCost:   conf.RideCost,
		Velocity:   conf.Velocity,
		SampleStep: conf.SampleStep,
	})
	defer s.Close()
	zap.S().Infow("listening", "addr", conf.Listen)
	return http.ListenAndServe(conf.Listen, s)
}
