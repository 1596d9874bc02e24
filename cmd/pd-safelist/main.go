package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/joho/godotenv"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/qdm12/pd-safelist/internal/config"
	"github.com/qdm12/pd-safelist/internal/fetch"
	"github.com/qdm12/pd-safelist/internal/healthchecksio"
	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/resolver"
	"github.com/qdm12/pd-safelist/internal/safelist"
	"github.com/qdm12/pd-safelist/internal/server"
	"github.com/qdm12/pd-safelist/internal/shoutrrr"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := buildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	// stdout only carries the safelist
	logger := log.New(log.SetWriters(os.Stderr))

	err := loadDotEnv()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, os.Stderr,
			logger, buildInfo, time.Now, nil)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

var ErrCommandUnknown = errors.New("command is unknown")

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdout, stderr io.Writer, logger log.LoggerInterface,
	buildInfo buildInformation, timeNow func() time.Time,
	transport *http.Transport) (err error) {
	command := ""
	if len(args) > 1 {
		command = args[1]
	}

	switch command {
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, buildInfo.versionString())
		return nil
	case "", "serve":
	default:
		return fmt.Errorf("%w: %s", ErrCommandUnknown, command)
	}

	printSplash(stderr, buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := fetch.NewClient(fetch.ClientSettings{
		Timeout:   config.Client.Timeout,
		Resolver:  resolver.New(config.Resolver),
		Logger:    logger.New(log.SetComponent("http client")),
		Transport: transport,
	})
	defer client.CloseIdleConnections()

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	gatherer := safelist.New(config.ToSafelistSettings(), fetch.New(client),
		logger.New(log.SetComponent("safelist")), shoutrrrClient, timeNow)

	outputSettings := output.Settings{
		TraefikMiddleware: config.Output.TraefikMiddleware,
	}

	if command == "serve" {
		serverSettings := server.Settings{
			Address: config.Server.ListeningAddress,
			RootURL: config.Server.RootURL,
			Region:  config.Output.Region,
			Format:  config.Output.Format,
			Output:  outputSettings,
		}
		serverLogger := logger.New(log.SetComponent("http server"))
		return server.New(ctx, serverSettings, gatherer, serverLogger).Run(ctx)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	return printSafelist(ctx, gatherer, hioClient, stdout,
		config.Output, outputSettings, logger)
}

// loadDotEnv loads the .env file of the working directory, if any,
// without overriding variables already set in the environment.
func loadDotEnv() (err error) {
	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}
	return nil
}

func printSplash(w io.Writer, buildInfo buildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "pd-safelist",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(w, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
