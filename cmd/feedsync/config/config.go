package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	BatchSize   uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	Workers     int           `env:"WORKERS" envDefault:"2"`
	RateLimit   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	MetricsAddr string        `env:"METRICS_ADDR" envDefault:":9090"`

	RabbitMQ  RabbitMQ
	BlobStore BlobStore
	Scheduler Scheduler
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"cfs-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"catalog-feed-sync.jobs"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"catalog-feed-sync.jobs"`
}

// BlobStore holds feed artifact storage configuration.
type BlobStore struct {
	URL    string `env:"BLOBSTORE_URL"`
	APIKey string `env:"BLOBSTORE_API_KEY"`
}

// Scheduler holds periodic job scheduling configuration.
type Scheduler struct {
	Enabled   bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Interval  time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1h"`
	Stagger   time.Duration `env:"SCHEDULER_STAGGER" envDefault:"30s"`
	FeedDelay time.Duration `env:"SCHEDULER_FEED_DELAY" envDefault:"5m"`
}
