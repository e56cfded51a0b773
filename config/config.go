package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Grading      Grading
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Grading holds the knobs for the background writing evaluation queue.
type Grading struct {
	// WritingWorkers is the number of goroutines draining the writing queue.
	WritingWorkers int
	// WritingQueueSize is the job buffer; enqueueing blocks once it is full
	// and all workers are busy.
	WritingQueueSize int
	// WritingWaitMs bounds how long a submission response waits for writing
	// evaluations before returning with grading still pending.
	WritingWaitMs int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("WRITING_WORKERS", 4)
	viper.SetDefault("WRITING_QUEUE_SIZE", 64)
	viper.SetDefault("WRITING_WAIT_MS", 2000)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Grading.WritingWorkers = viper.GetInt("WRITING_WORKERS")
	config.Grading.WritingQueueSize = viper.GetInt("WRITING_QUEUE_SIZE")
	config.Grading.WritingWaitMs = viper.GetInt("WRITING_WAIT_MS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Int("writingWorkers", config.Grading.WritingWorkers).Msg("Config loaded")
	return &config, nil
}
