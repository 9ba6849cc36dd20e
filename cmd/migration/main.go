package main

import (
	"log"
	"os"

	"github.com/hugohenrick/stock-assistant/internal/config"
	"github.com/hugohenrick/stock-assistant/internal/infrastructure/database"
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

	// Executar as migrações
	version, err := database.RunMigrations(cfg.PostgresConfig().MigrationURL())
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}
