package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/zjm/league_manager/cache"
	"github.com/zjm/league_manager/config"
	"github.com/zjm/league_manager/controller"
	"github.com/zjm/league_manager/db"
	"github.com/zjm/league_manager/notify"
	"github.com/zjm/league_manager/platforms/statsfeed"
	"github.com/zjm/league_manager/web"
	"golang.org/x/oauth2/clientcredentials"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	clock := clock.New()
	db, err := db.New(context.Background(), cfg.PostgresConnStr, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	var feedCreds *clientcredentials.Config
	if cfg.FeedClientID != "" && cfg.FeedClientSecret != "" && cfg.FeedTokenURL != "" {
		feedCreds = &clientcredentials.Config{
			ClientID:     cfg.FeedClientID,
			ClientSecret: cfg.FeedClientSecret,
			TokenURL:     cfg.FeedTokenURL,
		}
	}

	feedClient, err := statsfeed.New(feedCreds)
	if err != nil {
		log.Fatalf("error creating stats feed client: %v", err)
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.AMQPURL != "" {
		n, err := notify.NewAMQPNotifier(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("error connecting to RabbitMQ: %v", err)
		}
		defer n.Close()
		notifier = n
	}

	var standingsCache controller.StandingsCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		standingsCache = cache.NewStandings(rdb, cfg.StandingsCacheTTL)
	}

	ctrl, err := controller.New(clock, db, feedClient, notifier, standingsCache, cfg.StandingsPolicy(), cfg.BidWindow)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(web.Config{
		Port:            cfg.Port,
		DefaultSeasonID: cfg.SeasonID,
		AdminCreds:      cfg.AdminCredentials(),
	}, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that settles expired bids on a schedule.
	wg.Add(1)
	go ctrl.RunPeriodicBidSettlement(cfg.SettlementInterval, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
