package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"ewintr.nl/videotoken/fetcher"
	"ewintr.nl/videotoken/handler"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	timeout, err := time.ParseDuration(getParam("HTTP_TIMEOUT", "10s"))
	if err != nil {
		logger.Error("unable to parse http timeout", slog.String("err", err.Error()))
		os.Exit(1)
	}
	httpClient := &http.Client{Timeout: timeout}

	vimeo := fetcher.NewVimeo(fetcher.VimeoInfo{
		Endpoint: getParam("VIMEO_OEMBED_ENDPOINT", fetcher.VimeoOEmbedEndpoint),
	}, httpClient, logger)

	var metadata fetcher.MetadataFetcher
	if apiKey := getParam("YOUTUBE_API_KEY", ""); apiKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(apiKey), option.WithHTTPClient(httpClient))
		if err != nil {
			logger.Error("unable to create youtube service", slog.String("err", err.Error()))
			os.Exit(1)
		}
		metadata = fetcher.NewYoutube(ytClient)
		logger.Info("youtube metadata enabled")
	}

	var feedReader fetcher.FeedReader
	if endpoint := getParam("MINIFLUX_ENDPOINT", ""); endpoint != "" {
		feedReader = fetcher.NewMiniflux(fetcher.MinifluxInfo{
			Endpoint: endpoint,
			ApiKey:   getParam("MINIFLUX_APIKEY", ""),
		}, logger)
		logger.Info("miniflux feed enabled", slog.String("endpoint", endpoint))
	}

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", slog.String("err", err.Error()))
		os.Exit(1)
	}
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler.NewServer(vimeo, metadata, feedReader, logger)); err != nil {
			logger.Error("http server stopped", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}()
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
