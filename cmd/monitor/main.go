package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iroro1/et-mobile-new/catalog"
	"github.com/iroro1/et-mobile-new/client"
	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/store"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "monitor.yaml", "path to the monitor configuration file")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.LoadMonitor(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	readingsEvery, err := cfg.ReadingsEvery()
	if err != nil {
		log.Fatal("Invalid readings_interval: ", err)
	}
	notificationsEvery, err := cfg.NotificationsEvery()
	if err != nil {
		log.Fatal("Invalid notifications_interval: ", err)
	}

	api := client.New(cfg.APIURL, client.NewFileTokenStore(cfg.TokenPath))
	readings := store.NewReadingStore(api, readingsEvery)
	thresholds := store.NewThresholdStore(api)
	feed := store.NewNotificationFeed(api, notificationsEvery)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Thresholds change only through explicit edits, so one fetch at
	// startup is enough; readings and notifications poll on tickers.
	thresholds.Fetch(ctx)
	if msg := thresholds.Err(); msg != "" {
		log.Printf("thresholds: %s", msg)
	}

	go readings.Poll(ctx)
	go feed.Poll(ctx)

	log.Printf("monitoring %s (readings every %s, notifications every %s)", cfg.APIURL, readingsEvery, notificationsEvery)

	ticker := time.NewTicker(readingsEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("shutting down")
			return
		case <-ticker.C:
			printDashboard(readings, thresholds, feed)
		}
	}
}

func printDashboard(readings *store.ReadingStore, thresholds *store.ThresholdStore, feed *store.NotificationFeed) {
	if msg := readings.Err(); msg != "" {
		log.Printf("readings: %s", msg)
	}
	if msg := feed.Err(); msg != "" {
		log.Printf("notifications: %s", msg)
	}

	parts := make([]string, 0, len(catalog.Types))
	for _, sensorType := range catalog.Types {
		info := catalog.Lookup(sensorType)
		reading, ok := readings.Latest(sensorType)
		if !ok {
			parts = append(parts, info.Name+": --")
			continue
		}
		marker := ""
		if thresholds.IsReadingAlert(reading) {
			marker = " [ALERT]"
		}
		parts = append(parts, fmt.Sprintf("%s: %.2f%s%s", info.Name, reading.Value, info.Unit, marker))
	}
	log.Printf("%s | unread notifications: %d", strings.Join(parts, " | "), feed.UnreadCount())
}
