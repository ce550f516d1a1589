package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Fontes de registros suportadas
const (
	SourcePostgres = "postgres"
	SourceSupabase = "supabase"
	SourceMongoDB  = "mongodb"
)

// Provedores de autenticação suportados
const (
	AuthSupabase = "supabase"
	AuthLocal    = "local"
)

type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Timezone string
}

type ServerConfig struct {
	Port                string
	AllowedOrigins      string
	SubmitRatePerMinute int
	LoginRatePerMinute  int
	// ProxyHeader é o cabeçalho com o IP real do cliente (ex.: X-Forwarded-For); vazio usa o IP da conexão
	ProxyHeader string
}

type SourceConfig struct {
	Kind          string
	DatabaseURL   string
	SupabaseURL   string
	SupabaseKey   string
	MongoURI      string
	MongoDatabase string
}

type RedisConfig struct {
	URI           string
	QueueMaxRetry int
}

type AuthConfig struct {
	Provider      string
	JWTSecret     string
	JWTExpiry     time.Duration
	AdminCacheTTL time.Duration
}

// Load carrega o .env (se existir) e monta a configuração a partir das variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}
	return FromEnv()
}

// FromEnv monta a configuração sem ler o .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:                getEnv("PORT", "8080"),
			AllowedOrigins:      getEnv("ALLOWED_ORIGINS", "*"),
			SubmitRatePerMinute: getEnvAsInt("SUBMIT_RATE_PER_MINUTE", 10),
			LoginRatePerMinute:  getEnvAsInt("LOGIN_RATE_PER_MINUTE", 5),
			ProxyHeader:         getEnv("PROXY_HEADER", ""),
		},
		Source: SourceConfig{
			Kind:          strings.ToLower(getEnv("RECORD_SOURCE", SourcePostgres)),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			SupabaseURL:   getEnv("SUPABASE_URL", ""),
			SupabaseKey:   getEnv("SUPABASE_KEY", ""),
			MongoURI:      getEnv("MONGO_URI", ""),
			MongoDatabase: getEnv("MONGO_DATABASE", "pesquisa_satisfacao"),
		},
		Redis: RedisConfig{
			URI:           getEnv("REDIS_URI", ""),
			QueueMaxRetry: getEnvAsInt("QUEUE_MAX_RETRY", 10),
		},
		Auth: AuthConfig{
			Provider:      strings.ToLower(getEnv("AUTH_PROVIDER", AuthLocal)),
			JWTSecret:     getEnv("JWT_SECRET", ""),
			JWTExpiry:     time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
			AdminCacheTTL: getEnvAsDuration("ADMIN_CACHE_TTL", 5*time.Minute),
		},
		Timezone: getEnv("TIMEZONE", "America/Sao_Paulo"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate confere as combinações obrigatórias de variáveis
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourcePostgres:
		if c.Source.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL não definida")
		}
	case SourceSupabase:
		if c.Source.SupabaseURL == "" || c.Source.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL e SUPABASE_KEY são obrigatórias com RECORD_SOURCE=supabase")
		}
	case SourceMongoDB:
		if c.Source.MongoURI == "" {
			return fmt.Errorf("MONGO_URI não definida")
		}
	default:
		return fmt.Errorf("RECORD_SOURCE inválido: %q", c.Source.Kind)
	}

	switch c.Auth.Provider {
	case AuthLocal:
		if c.Source.Kind == SourceSupabase {
			return fmt.Errorf("AUTH_PROVIDER=local não é suportado com RECORD_SOURCE=supabase; use AUTH_PROVIDER=supabase")
		}
	case AuthSupabase:
		if c.Source.SupabaseURL == "" || c.Source.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL e SUPABASE_KEY são obrigatórias com AUTH_PROVIDER=supabase")
		}
	default:
		return fmt.Errorf("AUTH_PROVIDER inválido: %q", c.Auth.Provider)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET não definida")
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE inválido %q: %w", c.Timezone, err)
	}
	return nil
}

// QueueEnabled indica se há Redis para a fila de reprocessamento
func (c *Config) QueueEnabled() bool {
	return c.Redis.URI != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
