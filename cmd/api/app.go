package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/controller"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/route"
	"github.com/hugohenrick/stock-assistant/internal/adapter/repository"
	"github.com/hugohenrick/stock-assistant/internal/config"
	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/internal/infrastructure/cache"
	"github.com/hugohenrick/stock-assistant/internal/infrastructure/database"
	"github.com/hugohenrick/stock-assistant/internal/provider/finnhub"
	"github.com/hugohenrick/stock-assistant/internal/provider/newsapi"
	"github.com/hugohenrick/stock-assistant/internal/provider/prediction"
	"github.com/hugohenrick/stock-assistant/internal/provider/trending"
	"github.com/hugohenrick/stock-assistant/internal/provider/yahoo"
	"github.com/hugohenrick/stock-assistant/pkg/assistant/intent"
	"github.com/hugohenrick/stock-assistant/pkg/auth"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const (
	version              = "1.0.0"
	sessionSweepInterval = 5 * time.Minute
)

// App representa a aplicação e suas dependências
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	router  *gin.Engine
	closers []func()
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: log}

	jwtService, err := auth.NewJWTService(cfg.Session.JWTSecret, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}

	// Criar repositório do histórico de chat
	repo, err := app.chatRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	// Sessões expiram junto com o token; o janitor apaga o log das ociosas
	store := chat.NewSessionStore(repo, jwtService.Expiration())
	go store.Run(ctx, sessionSweepInterval, func(evicted int, err error) {
		if err != nil {
			log.Error("Erro ao remover sessões expiradas", "error", err)
			return
		}
		if evicted > 0 {
			log.Info("Sessões expiradas removidas", "count", evicted)
		}
	})

	// Criar provedores de dados de mercado
	hc := httpx.New(cfg.Providers.HTTPTimeout)
	charts := yahoo.New(hc, cfg.Providers.Yahoo.BaseURL, cfg.Providers.Yahoo.ExchangeSuffix)
	news := app.newsProvider(hc)
	recs := trending.New(hc, cfg.Providers.Trending.BaseURL, cfg.Providers.Trending.APIKey, cfg.Providers.Trending.Host)

	var predictions market.PredictionProvider
	if cfg.Providers.Prediction.URL != "" {
		predictions = prediction.New(hc, cfg.Providers.Prediction.URL)
	}

	manager := intent.NewDefaultManager(log, intent.Providers{
		Charts:          charts,
		News:            news,
		Recommendations: recs,
	})

	// Configurar router com modo correto
	gin.SetMode(cfg.Server.Mode)
	app.router = gin.Default()
	app.router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(app.router, cfg.Server.BasePath, route.Controllers{
		Health:     controller.NewHealthController(version),
		Session:    controller.NewSessionController(store, jwtService, log),
		Chat:       controller.NewChatController(store, manager, log),
		Stock:      controller.NewStockController(charts, log),
		News:       controller.NewNewsController(news, log),
		Picks:      controller.NewPicksController(recs, log),
		Prediction: controller.NewPredictionController(predictions, log),
	}, jwtService)

	log.Info("Aplicação configurada",
		"chat_store", cfg.Chat.Store,
		"news_source", news.Name(),
		"prediction", predictions != nil)

	return app, nil
}

func (a *App) chatRepository(ctx context.Context) (chat.Repository, error) {
	switch a.cfg.Chat.Store {
	case config.ChatStoreRedis:
		client, err := cache.NewRedisClient(ctx, a.cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { client.Close() })
		return repository.NewRedisChatRepository(client, a.cfg.Session.TTL), nil

	case config.ChatStorePostgres:
		pool, err := database.NewPostgresDB(ctx, a.cfg.PostgresConfig())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return repository.NewChatRepository(pool), nil

	default:
		return repository.NewMemoryChatRepository(), nil
	}
}

func (a *App) newsProvider(hc *httpx.Client) market.NewsProvider {
	n := a.cfg.Providers.News
	if n.Source == config.NewsSourceFinnhub {
		return finnhub.New(n.FinnhubAPIKey)
	}
	return newsapi.New(hc, n.NewsAPIURL, n.NewsAPIKey, n.Country, n.Category)
}

// Start inicia o servidor HTTP e bloqueia até ctx ser cancelado
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "port", a.cfg.Server.Port, "base_path", a.cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro ao iniciar o servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close libera as conexões abertas
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
