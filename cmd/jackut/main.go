package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jackut-backend/internal/config"
	"jackut-backend/internal/facade"
	"jackut-backend/internal/repository"
	"jackut-backend/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 1. Carregar o arquivo .env antes da configuração
	if err := godotenv.Load(); err != nil {
		logger.Info("arquivo .env não carregado, usando variáveis de ambiente existentes")
	}

	// 2. Carregar configuração
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		logger.Fatal("falha ao carregar configuração", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelInit()

	// 3. Inicializar a camada de repositório
	var store repository.Store
	switch cfg.StorageDriver {
	case "arquivo":
		store, err = repository.NewFileStore(cfg.DataDir, logger)
		if err != nil {
			logger.Fatal("falha ao abrir a pasta de dados", zap.Error(err))
		}

	case "memoria":
		store = repository.NewInMemoryStore()

	case "postgres":
		pg, err := repository.NewPostgresStore(initCtx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("falha ao conectar ao banco de dados", zap.Error(err))
		}
		defer pg.Close()

		migrationSQL, err := os.ReadFile("./migrations/001_init.sql")
		if err != nil {
			logger.Fatal("falha ao ler arquivo de migração", zap.Error(err))
		}
		if err := pg.RunMigrations(initCtx, string(migrationSQL)); err != nil {
			logger.Fatal("falha ao rodar migrações", zap.Error(err))
		}

		store = pg

	default:
		logger.Fatal("driver de armazenamento desconhecido",
			zap.String("driver", cfg.StorageDriver))
	}

	// 4. Inicializar o serviço, carregando o estado persistido
	svc := service.NewJackutService(initCtx, store, logger)

	// 5. Inicializar a fachada de comandos
	f := facade.New(svc)

	// 6. Rodar o console até EOF, "encerrarSistema" ou sinal de interrupção
	done := make(chan struct{})
	go func() {
		runConsole(f, os.Stdin, os.Stdout)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-done:
	case <-quit:
	}

	// 7. Persistir o estado completo antes de sair
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := f.Shutdown(ctx); err != nil {
		logger.Error("falha ao gravar o estado no encerramento", zap.Error(err))
		return
	}
	logger.Info("estado gravado, sistema encerrado")
}
