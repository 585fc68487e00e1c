package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendVader  = "vader"
	BackendHugot  = "hugot"
	BackendRemote = "remote"
)

// Settings is the runtime configuration of the annotator service, read from
// the environment after LoadEnv has applied the .env file for APP_ENV.
type Settings struct {
	Env      string
	LogLevel string

	KafkaBroker     string        `validate:"required"`
	KafkaGroupID    string        `validate:"required"`
	RequestTopic    string        `validate:"required"`
	ResultsTopic    string        `validate:"required"`
	BatchSize       int           `validate:"min=1"`
	BatchTimeout    time.Duration `validate:"gt=0"`
	Parallelism     int           `validate:"min=1,max=64"`
	AnnotateTimeout time.Duration `validate:"gt=0"`

	DynamoDBTable string        `validate:"required"`
	DedupeTTL     time.Duration `validate:"gt=0"`

	CatalogPath string
	MetricsAddr string

	ClassifierBackend      string `validate:"oneof=vader hugot remote"`
	ClassifierURL          string `validate:"required_if=ClassifierBackend remote"`
	ClassifierTokenURL     string
	ClassifierClientID     string
	ClassifierClientSecret string
	HugotModel             string `validate:"required_if=ClassifierBackend hugot"`
	HugotModelDir          string

	OpenAIAPIKey string
	OpenAIModel  string
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return v
}

// Load reads Settings from the environment and validates them.
func Load() (*Settings, error) {
	s := &Settings{
		Env:      getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		KafkaBroker:     getEnv("KAFKA_BROKER", "localhost:29092"),
		KafkaGroupID:    getEnv("KAFKA_CONSUMER_GROUP_ID", "reviewlens-annotator"),
		RequestTopic:    getEnv("KAFKA_REQUEST_TOPIC", "review-annotation-requests"),
		ResultsTopic:    getEnv("KAFKA_RESULTS_TOPIC", "review-annotations"),
		BatchSize:       getInt("BATCH_SIZE", 10),
		BatchTimeout:    getDuration("BATCH_TIMEOUT", 5*time.Second),
		Parallelism:     getInt("ANNOTATE_PARALLELISM", 4),
		AnnotateTimeout: getDuration("ANNOTATE_TIMEOUT", 10*time.Second),

		DynamoDBTable: getEnv("DYNAMODB_TABLE", "ReviewAnnotations"),
		DedupeTTL:     getDuration("DEDUPE_TTL", 24*time.Hour),

		CatalogPath: os.Getenv("CATALOG_PATH"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),

		ClassifierBackend:      getEnv("CLASSIFIER_BACKEND", BackendVader),
		ClassifierURL:          os.Getenv("CLASSIFIER_URL"),
		ClassifierTokenURL:     os.Getenv("CLASSIFIER_TOKEN_URL"),
		ClassifierClientID:     os.Getenv("CLASSIFIER_CLIENT_ID"),
		ClassifierClientSecret: os.Getenv("CLASSIFIER_CLIENT_SECRET"),
		HugotModel:             getEnv("HUGOT_MODEL", "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"),
		HugotModelDir:          getEnv("HUGOT_MODEL_DIR", "./models"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("[Config] invalid settings: %w", err)
	}
	return s, nil
}
