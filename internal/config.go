package internal

import "time"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8080"`

	SentimentAPIURL  string        `env:"SENTIMENT_API_URL,required=true"`
	SentimentAPIKey  string        `env:"SENTIMENT_API_KEY"`
	SentimentTimeout time.Duration `env:"SENTIMENT_TIMEOUT,default=10s"`

	// RedisAddr is optional: without it, note-created events stay on the
	// in-process channel sink instead of being broadcast cross-instance.
	RedisAddr      string        `env:"REDIS_ADDR"`
	NotifyTimeout  time.Duration `env:"NOTIFY_TIMEOUT,default=5s"`
	SinkBufferSize int           `env:"SINK_BUFFER_SIZE,default=64"`
}
