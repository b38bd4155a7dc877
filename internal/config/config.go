package config

import "time"

// Config is the root application configuration.
type Config struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Output     OutputConfig     `yaml:"output"`
	Database   DatabaseConfig   `yaml:"database"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// GeneratorConfig holds sentence-generation settings.
type GeneratorConfig struct {
	NumSentences      int    `yaml:"num_sentences"      env:"GEN_NUM_SENTENCES"      env-default:"10000"`
	MinWords          int    `yaml:"min_words"          env:"GEN_MIN_WORDS"          env-default:"3"`
	MaxWords          int    `yaml:"max_words"          env:"GEN_MAX_WORDS"          env-default:"8"`
	Seed              int64  `yaml:"seed"               env:"GEN_SEED"               env-default:"42"`
	DifficultyWeights string `yaml:"difficulty_weights" env:"GEN_DIFFICULTY_WEIGHTS" env-default:"easy:0.2,medium:0.5,hard:0.3"`
}

// VocabularyConfig selects where word lists come from.
type VocabularyConfig struct {
	// Source is "file" (JSON wordlist on disk) or "postgres".
	Source string `yaml:"source" env:"VOCAB_SOURCE" env-default:"file"`
	Path   string `yaml:"path"   env:"VOCAB_PATH"   env-default:"data/wordlists/words_by_difficulty.json"`
}

// OutputConfig holds dataset serialization settings.
type OutputConfig struct {
	Path   string `yaml:"path"   env:"OUTPUT_PATH"   env-default:"dataset.jsonl"`
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"jsonl"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only consulted when
// the vocabulary source is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ServerConfig holds settings for the preview HTTP service.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxSampleSize   int           `yaml:"max_sample_size"  env:"SERVER_MAX_SAMPLE_SIZE"  env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
