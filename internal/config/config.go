package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/infrastructure/database"
	"gopkg.in/yaml.v3"
)

// Backends aceitos para o histórico de chat
const (
	ChatStoreMemory   = "memory"
	ChatStoreRedis    = "redis"
	ChatStorePostgres = "postgres"
)

// Fontes de notícias suportadas
const (
	NewsSourceNewsAPI = "newsapi"
	NewsSourceFinnhub = "finnhub"
)

var (
	ErrMissingJWTKey     = errors.New("chave secreta JWT não configurada")
	ErrUnknownChatStore  = errors.New("backend de chat desconhecido")
	ErrUnknownNewsSource = errors.New("fonte de notícias desconhecida")
	ErrUnknownGinMode    = errors.New("modo do gin desconhecido")
)

// Config é a configuração completa da aplicação
type Config struct {
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
	Session   Session   `yaml:"session"`
	Chat      Chat      `yaml:"chat"`
	Database  Database  `yaml:"database"`
	Redis     Redis     `yaml:"redis"`
	Providers Providers `yaml:"providers"`
}

// Server contém as configurações do servidor HTTP
type Server struct {
	Port           string   `yaml:"port"`
	BasePath       string   `yaml:"base_path"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Logging configura o logger da aplicação
type Logging struct {
	Level string `yaml:"level"`
}

// Session configura os tokens de sessão
type Session struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TTL       time.Duration `yaml:"ttl"`
}

// Chat escolhe onde o histórico de conversas é guardado
type Chat struct {
	Store string `yaml:"store"`
}

// Database contém as configurações do PostgreSQL
type Database struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxConnections  int32         `yaml:"max_connections"`
	MinConnections  int32         `yaml:"min_connections"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
}

// Redis contém o endereço do Redis
type Redis struct {
	URL string `yaml:"url"`
}

// Providers agrupa os serviços externos de dados de mercado
type Providers struct {
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Yahoo       Yahoo         `yaml:"yahoo"`
	News        News          `yaml:"news"`
	Trending    Trending      `yaml:"trending"`
	Prediction  Prediction    `yaml:"prediction"`
}

// Yahoo configura o provedor de gráficos e cotações
type Yahoo struct {
	BaseURL        string `yaml:"base_url"`
	ExchangeSuffix string `yaml:"exchange_suffix"`
}

// News configura o provedor de notícias
type News struct {
	Source        string `yaml:"source"`
	NewsAPIKey    string `yaml:"newsapi_key"`
	NewsAPIURL    string `yaml:"newsapi_url"`
	Country       string `yaml:"country"`
	Category      string `yaml:"category"`
	FinnhubAPIKey string `yaml:"finnhub_api_key"`
}

// Trending configura a API de ações em alta (RapidAPI)
type Trending struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Host    string `yaml:"host"`
}

// Prediction configura o endpoint do modelo de previsão. Vazio desativa.
type Prediction struct {
	URL string `yaml:"url"`
}

// Default retorna a configuração com os valores padrão
func Default() *Config {
	return &Config{
		Server: Server{
			Port:           "8080",
			BasePath:       "/api/v1",
			Mode:           "release",
			AllowedOrigins: []string{"*"},
		},
		Logging: Logging{Level: "info"},
		Session: Session{TTL: 24 * time.Hour},
		Chat:    Chat{Store: ChatStoreMemory},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "stock_assistant",
			SSLMode:         "disable",
			MaxConnections:  10,
			MinConnections:  1,
			MaxConnLifetime: time.Hour,
		},
		Providers: Providers{
			HTTPTimeout: 10 * time.Second,
			Yahoo: Yahoo{
				BaseURL:        "https://query1.finance.yahoo.com",
				ExchangeSuffix: ".NS",
			},
			News: News{
				Source:     NewsSourceNewsAPI,
				NewsAPIURL: "https://newsapi.org",
				Country:    "in",
				Category:   "business",
			},
			Trending: Trending{
				BaseURL: "https://indian-stock-exchange-api2.p.rapidapi.com",
				Host:    "indian-stock-exchange-api2.p.rapidapi.com",
			},
		},
	}
}

// Load lê o arquivo YAML em path (opcional: path vazio ou inexistente usa só
// os padrões) e aplica as variáveis de ambiente por cima.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Validate verifica se a configuração permite iniciar o servidor.
// Um modo do gin desconhecido faria gin.SetMode entrar em pânico.
func (c *Config) Validate() error {
	if c.Session.JWTSecret == "" {
		return ErrMissingJWTKey
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGinMode, c.Server.Mode)
	}
	switch c.Chat.Store {
	case ChatStoreMemory, ChatStoreRedis, ChatStorePostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChatStore, c.Chat.Store)
	}
	switch c.Providers.News.Source {
	case NewsSourceNewsAPI, NewsSourceFinnhub:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNewsSource, c.Providers.News.Source)
	}
	return nil
}

// PostgresConfig converte a seção database para o formato do pool
func (c *Config) PostgresConfig() *database.PostgresConfig {
	return &database.PostgresConfig{
		URL:             c.Database.URL,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		User:            c.Database.User,
		Password:        c.Database.Password,
		Database:        c.Database.Name,
		SSLMode:         c.Database.SSLMode,
		MaxConnections:  c.Database.MaxConnections,
		MinConnections:  c.Database.MinConnections,
		MaxConnLifetime: c.Database.MaxConnLifetime,
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.BasePath, "SERVER_BASE_PATH")
	setString(&cfg.Server.Mode, "GIN_MODE")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	setString(&cfg.Logging.Level, "LOG_LEVEL")

	setString(&cfg.Session.JWTSecret, "JWT_SECRET_KEY")
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.Session.TTL = time.Duration(hours) * time.Hour
		}
	}

	setString(&cfg.Chat.Store, "CHAT_STORE")

	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSL_MODE")

	setString(&cfg.Redis.URL, "REDIS_URL")

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Providers.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	setString(&cfg.Providers.Yahoo.BaseURL, "YAHOO_BASE_URL")
	setString(&cfg.Providers.Yahoo.ExchangeSuffix, "EXCHANGE_SUFFIX")
	setString(&cfg.Providers.News.Source, "NEWS_SOURCE")
	setString(&cfg.Providers.News.NewsAPIKey, "NEWSAPI_KEY")
	setString(&cfg.Providers.News.NewsAPIURL, "NEWSAPI_URL")
	setString(&cfg.Providers.News.Country, "NEWSAPI_COUNTRY")
	setString(&cfg.Providers.News.Category, "NEWSAPI_CATEGORY")
	setString(&cfg.Providers.News.FinnhubAPIKey, "FINNHUB_API_KEY")
	setString(&cfg.Providers.Trending.BaseURL, "RAPIDAPI_BASE_URL")
	setString(&cfg.Providers.Trending.APIKey, "RAPIDAPI_KEY")
	setString(&cfg.Providers.Trending.Host, "RAPIDAPI_HOST")
	setString(&cfg.Providers.Prediction.URL, "PREDICTION_URL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
