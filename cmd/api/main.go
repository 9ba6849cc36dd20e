package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/hugohenrick/stock-assistant/docs"
	"github.com/hugohenrick/stock-assistant/internal/config"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}

	// Iniciar o servidor
	err = app.Start(ctx)
	app.Close()
	if err != nil {
		appLogger.Error("Servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
