package main

import (
	"context"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the multi-argument signal wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest number of slot arguments to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "signals/arity_gen.go",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(log, cmd)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(log *zap.SugaredLogger, cmd *cli.Command) error {
	start := time.Now()
	log.Infof("Codegen for signals started")
	defer func() {
		log.Infof("Codegen for signals finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	if count < 2 {
		return errors.Errorf("--%s must be at least 2, got %d", arityCountKey, count)
	}
	out := cmd.String(outputKey)
	log.Infof("Generating Signal0 and Signal2..Signal%d into %s", count, out)

	contents, err := format.Source([]byte(templates.ArityGen(count)))
	if err != nil {
		return errors.Wrap(err, "generated code does not parse")
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	return nil
}
