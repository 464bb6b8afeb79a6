package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/cache"
	"github.com/xSunnyyy/VetoCity/controller"
	"github.com/xSunnyyy/VetoCity/sleeper"
	"github.com/xSunnyyy/VetoCity/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	leagueID := os.Getenv("LEAGUE_ID")
	if leagueID == "" {
		log.Fatalf("LEAGUE_ID must be set to the league's newest season id")
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	cacheTTL := 60 * time.Second
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("error parsing CACHE_TTL: %v", err)
		}
		cacheTTL = time.Duration(secs) * time.Second
	}

	maxSeasons := 0
	if raw := os.Getenv("MAX_SEASONS"); raw != "" {
		maxSeasons, err = strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("error parsing MAX_SEASONS: %v", err)
		}
	}

	logger, err := newLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync()

	clock := clock.New()

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	store := cache.New(cacheTTL, clock)

	ctrl, err := controller.New(clock, sleeperClient, store, logger, controller.Config{
		LeagueID:   leagueID,
		MaxSeasons: maxSeasons,
	})
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
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

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}

// waitTimeout waits for the WaitGroup to finish or gives up after the
// timeout expires.
func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.New("timed out waiting for WaitGroup")
	}
}
