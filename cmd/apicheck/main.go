package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liamashdown/flowintel/internal/apicheck"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8001", "Root URL of the API; /api is appended")
	rps := flag.Float64("rps", 5, "Maximum requests per second, 0 for no pacing")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	logLevel := flag.String("log-level", "warn", "Log level for per-check output")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := apicheck.NewClient(*baseURL, *rps, *timeout)
	report := apicheck.NewRunner(client, log).Run(ctx)
	report.Render(os.Stdout)

	if !report.OK() {
		os.Exit(1)
	}
}
