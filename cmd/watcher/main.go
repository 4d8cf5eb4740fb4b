package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/app"
	"github.com/shrimpsizemoose/stipendium/internal/feed"
)

// watcher follows the change feed and prints every tracker change.
func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug.Printf("No .env file loaded: %v", err)
	}

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	if !config.Feed.Enabled {
		logger.Error.Fatalf("Feed is disabled in %s, nothing to watch", *configPath)
	}

	f, err := feed.NewFeed(config.Feed.RedisURL, config.Feed.Channel)
	if err != nil {
		logger.Error.Fatalf("Failed to connect to feed: %v", err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := f.Subscribe(ctx)
	if err != nil {
		logger.Error.Fatalf("Failed to subscribe: %v", err)
	}
	defer sub.Close()

	logger.Info.Printf("Watching %s", f.Channel())
	events := sub.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch {
			case event.Scholarship != nil:
				logger.Info.Printf("%s #%d %s: %s", event.Entity, event.ID, event.Kind, event.Scholarship.Name)
			case event.Application != nil && event.PreviousStatus != "":
				logger.Info.Printf("%s #%d %s: %s -> %s", event.Entity, event.ID, event.Kind, event.PreviousStatus, event.Application.Status)
			default:
				logger.Info.Printf("%s #%d %s", event.Entity, event.ID, event.Kind)
			}
		case <-ctx.Done():
			logger.Info.Println("Done watching")
			return
		}
	}
}
