package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"note-lab/classifier"
	"note-lab/internal"
	"note-lab/repositories"
	"note-lab/server"
	"note-lab/services"
	"note-lab/sink"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanups always execute.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Notification sink: Redis Pub/Sub when configured, otherwise an
	// in-process channel drained into the log.
	var notificationSink sink.INotificationSink
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		defer rdb.Close()
		notificationSink = sink.NewRedisSink(rdb)
	} else {
		log.Warn("REDIS_ADDR not set, note events stay in-process")
		channelSink := sink.NewChannelSink(config.SinkBufferSize)
		notificationSink = channelSink
		go logEvents(ctx, channelSink, log)
	}

	// 5. Repositories, collaborators & services
	users := repositories.NewUserRepository(db)
	notes := repositories.NewNoteRepository(db)
	sentiments := repositories.NewSentimentRepository(db)
	sentimentClassifier := classifier.NewProviderClient(
		config.SentimentAPIURL, config.SentimentAPIKey, config.SentimentTimeout, log)

	noteService := services.NewNoteService(
		notes, users, sentiments, sentimentClassifier, notificationSink, log, config.NotifyTimeout)
	feedService := services.NewFeedService(users, notes, log)
	subscriptionService := services.NewSubscriptionService(users, log)
	userService := services.NewUserService(users, log)

	// 6. HTTP Server
	srv := server.NewServer(log, noteService, feedService, subscriptionService, userService)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(address); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// logEvents drains the fallback channel sink so publishes never back up.
func logEvents(ctx context.Context, channelSink *sink.ChannelSink, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-channelSink.Events:
			log.Info("Domain event", "name", e.Name(), "event", e)
		}
	}
}
