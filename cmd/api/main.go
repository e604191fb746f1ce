package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rbfernandes/classificados-api/infrastructure/database/postgres"
	"github.com/rbfernandes/classificados-api/infrastructure/repository"
	"github.com/rbfernandes/classificados-api/internal/api"
	"github.com/rbfernandes/classificados-api/internal/config"
	"github.com/rbfernandes/classificados-api/internal/scheduler"
	"github.com/rbfernandes/classificados-api/internal/usecases/advertising"
	"github.com/rbfernandes/classificados-api/internal/usecases/authenticating"
	"github.com/rbfernandes/classificados-api/internal/usecases/promoting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	promotionRepo := repository.NewPromotionRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	adService := advertising.NewService(adRepo)

	promotionService := promoting.NewService(promotionRepo, cfg)
	if err := promotionService.Load(ctx); err != nil {
		// As coleções em memória seguem autoritativas durante a sessão; sem a
		// carga inicial o serviço sobe vazio e o carrossel usa as listas padrão
		logrus.WithError(err).Error("Erro ao carregar coleções de promoções do banco")
	}

	promotionSyncService := scheduler.NewPromotionSyncService(promotionService, cfg)
	if err := promotionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de promoções")
	} else {
		logrus.Info("Agendador de sincronização de promoções iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		promotionService,
		adService,
		authenticator,
		promotionSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
