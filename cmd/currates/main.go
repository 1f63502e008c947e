package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	currencyapi "github.com/shiftcontrol-dan/currencyapi-go"
	"github.com/shiftcontrol-dan/currencyapi-go/internal/config"
	"github.com/shiftcontrol-dan/currencyapi-go/internal/logger"
	"github.com/shiftcontrol-dan/currencyapi-go/internal/tracing"
)

const defaultRequestTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	conf, err := config.NewFromFile(*configPath)
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	client, err := newClient(conf)
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	out, err := runCommand(ctx, client, conf.App(), flag.Arg(0), flag.Args()[1:])
	if err != nil {
		logger.Fatal("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
	}
	fmt.Println(out)
}

func newClient(conf *config.Service) (*currencyapi.Client, error) {
	timeout := time.Duration(conf.App().RequestTimeoutSeconds()) * time.Second
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client, err := currencyapi.NewWithClient(
		conf.Currencyapi().ApiKey(),
		conf.Currencyapi().BaseURL(),
		&http.Client{Timeout: timeout},
	)
	if err != nil {
		return nil, err
	}

	client.SetLogger(logger.Get())
	return client, nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: currates [-config path] <command> [flags]")
	fmt.Fprintln(out, "Commands: status, currencies, latest, historical, convert, range")
	flag.PrintDefaults()
}
