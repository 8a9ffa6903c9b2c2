package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/signals"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	itersKey   = "iters"
	profileKey = "cpuprofile"
)

var (
	ww = []int{1, 10, 100, 1_000}

	// sink keeps the slot work observable
	sink int
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure emission latency of signals against a copy-on-emit baseline",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Emissions measured per configuration",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String(profileKey); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}

			iters := int(cmd.Uint(itersKey))
			log.Infof("warming up")
			benchmarkEmit(iters, false)

			log.Infof("measuring %d emissions per configuration", iters)
			benchmarkEmit(iters, true)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// emitter is the part of a signal implementation the benchmark drives.
type emitter interface {
	connect(slot func(int)) (disconnect func())
	emit(v int)
}

type linked struct {
	s signals.Signal[int]
}

func (l *linked) connect(slot func(int)) func() {
	return l.s.Connect(slot).Disconnect
}

func (l *linked) emit(v int) {
	l.s.Emit(v)
}

// copying snapshots its subscribers on every emission, which is the usual
// way of making a slice of callbacks safe against mutation from a callback.
type copying struct {
	slots []*func(int)
}

func (c *copying) connect(slot func(int)) func() {
	p := &slot
	c.slots = append(c.slots, p)
	return func() {
		for i, s := range c.slots {
			if s == p {
				c.slots = append(c.slots[:i], c.slots[i+1:]...)
				return
			}
		}
	}
}

func (c *copying) emit(v int) {
	cpy := make([]*func(int), len(c.slots))
	copy(cpy, c.slots)
	for _, slot := range cpy {
		(*slot)(v)
	}
}

func benchmarkEmit(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal emission")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "impl", "avg", "min", "p75", "p99", "max"})

	impls := []struct {
		name string
		new  func() emitter
	}{
		{"intrusive", func() emitter { return &linked{} }},
		{"copy-on-emit", func() emitter { return &copying{} }},
	}

	for _, w := range ww {
		for _, nested := range []bool{false, true} {
			for _, impl := range impls {
				e := impl.new()
				sum := 0
				disconnects := make([]func(), 0, w)
				for i := 0; i < w; i++ {
					disconnects = append(disconnects, e.connect(func(v int) { sum += v }))
				}
				if nested {
					// the head slot re-emits once per outer emission
					disconnects = append(disconnects, e.connect(func(v int) {
						if v == 1 {
							e.emit(2)
						}
					}))
				}

				tach := tachymeter.New(&tachymeter.Config{Size: iters})
				for i := 0; i < iters; i++ {
					start := time.Now()
					e.emit(1)
					tach.AddTime(time.Since(start))
				}
				for _, d := range disconnects {
					d()
				}
				sink += sum

				name := fmt.Sprintf("emit: %d slots", w)
				if nested {
					name += " nested"
				}
				calc := tach.Calc()
				tbl.AppendRow(table.Row{
					name,
					impl.name,
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				})
			}
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
