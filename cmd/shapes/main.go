package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	env "github.com/robotalks/turtle.go/pkg/l1/env/connector"
	"github.com/robotalks/turtle.go/pkg/motion"
)

var (
	shape        = "all"
	loopInterval = 50 * time.Millisecond
)

func init() {
	env.SetupFlags()
	motion.SetupFlags()
	flag.StringVar(&shape, "shape", shape, "Shape to draw: square, triangle or all.")
	flag.DurationVar(&loopInterval, "loop-interval", loopInterval, "Interval of the connection loop.")
}

func draw(ctx context.Context, s *motion.Session) error {
	switch shape {
	case "all":
		return s.Run(ctx)
	case "square":
		s.Prepare(ctx)
		return s.Driver.TraceSquare(ctx)
	case "triangle":
		s.Prepare(ctx)
		return s.Driver.TraceTriangle(ctx)
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf, err := motion.NewConfig()
	if err != nil {
		glog.Exit(err)
	}

	ctx := fx.NewRunner().HandleSignals().Context
	conn, err := env.Default().Connect(ctx)
	if err != nil {
		glog.Exit(err)
	}

	session := motion.NewSession(conf, conn)
	// The loop outlives the drawing so the final stop is delivered.
	stop := fx.NewLoop().WithInterval(loopInterval).Add(session).Start(context.Background())
	err = draw(ctx, session)
	flushCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	if ferr := session.Emitter.Flush(flushCtx); ferr != nil {
		glog.Warningf("velocity commands not confirmed: %v", ferr)
	}
	cancel()
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		glog.Exit(err)
	}
}
