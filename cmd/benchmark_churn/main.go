package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/delaneyj/slotparty/signals"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	roundsKey = "rounds"
	seedKey   = "seed"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Info("Starting churn benchmark, please wait...")
	defer log.Info("Finished churn benchmark")

	cmd := &cli.Command{
		Name:  "benchmark_churn",
		Usage: "Measure emissions whose slots connect, disconnect and move subscriptions",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  roundsKey,
				Usage: "Emissions per configuration",
				Value: 20_000,
			},
			&cli.UintFlag{
				Name:  seedKey,
				Usage: "Seed of the random churn",
				Value: 0,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run(log, int64(cmd.Uint(roundsKey)), int64(cmd.Uint(seedKey)))
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type churnConfig struct {
	name     string
	slots    int     // subscribers kept connected
	churn    float64 // fraction of slot invocations that disconnect and replace a random subscriber
	moves    float64 // fraction of slot invocations that move a random subscriber
	nestProb float64 // fraction of slot invocations that emit again
}

type churnResult struct {
	duration    time.Duration
	invocations int64
	allocBytes  uint64
}

func run(log *zap.SugaredLogger, rounds, seed int64) {
	cfgs := []churnConfig{
		{name: "steady", slots: 100},
		{name: "light churn", slots: 100, churn: 0.01},
		{name: "heavy churn", slots: 100, churn: 0.25},
		{name: "moves", slots: 100, moves: 0.1},
		{name: "nested", slots: 10, nestProb: 0.05},
		{name: "everything", slots: 1_000, churn: 0.05, moves: 0.05, nestProb: 0.001},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"config", "slots", "rounds", "time", "invocations/ms", "alloc"})

	for _, cfg := range cfgs {
		log.Infof("Running '%s' config", cfg.name)
		res := runChurn(cfg, rounds, seed)
		rate := float64(res.invocations) / (float64(res.duration) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.slots),
			humanize.Comma(rounds),
			fmt.Sprint(res.duration),
			humanize.Comma(int64(rate)),
			humanize.Bytes(res.allocBytes),
		})
	}
	table.Render()
}

func runChurn(cfg churnConfig, rounds, seed int64) churnResult {
	random := rand.New(rand.NewSource(seed))

	var (
		sig         signals.Signal[int]
		conns       []*signals.Connection[int]
		invocations int64
		depth       int
		slot        func(int)
	)
	slot = func(int) {
		invocations++
		r := random.Float64()
		switch {
		case r < cfg.churn:
			i := random.Intn(len(conns))
			conns[i].Disconnect()
			conns[i] = sig.Connect(slot)
		case r < cfg.churn+cfg.moves:
			i := random.Intn(len(conns))
			conns[i] = conns[i].Move()
		case r < cfg.churn+cfg.moves+cfg.nestProb && depth < 2:
			depth++
			sig.Emit(depth)
			depth--
		}
	}
	for i := 0; i < cfg.slots; i++ {
		conns = append(conns, sig.Connect(slot))
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := int64(0); i < rounds; i++ {
		sig.Emit(0)
	}
	duration := time.Since(start)
	runtime.ReadMemStats(&after)

	sig.Close()
	return churnResult{
		duration:    duration,
		invocations: invocations,
		allocBytes:  after.TotalAlloc - before.TotalAlloc,
	}
}
