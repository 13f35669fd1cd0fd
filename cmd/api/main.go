package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/infrastructure/database/postgres"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai"
	"github.com/smdigital/pulso-social-api/infrastructure/integrator/openai/openaiclient"
	"github.com/smdigital/pulso-social-api/infrastructure/repository"
	"github.com/smdigital/pulso-social-api/internal/api"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/scheduler"
	"github.com/smdigital/pulso-social-api/internal/usecases/authenticating"
	"github.com/smdigital/pulso-social-api/internal/usecases/categorizing"
	"github.com/smdigital/pulso-social-api/internal/usecases/ingesting"
	"github.com/smdigital/pulso-social-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	publicationRepo := repository.NewPublicationRepository(pgConn)
	sessionRepo := repository.NewCsvSessionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	openaiClient := openaiclient.NewClient(cfg)
	classifier := openai.New(cfg, openaiClient)

	ingestService := ingesting.NewService(publicationRepo, sessionRepo)
	reportService := reporting.NewService(publicationRepo, sessionRepo)
	categorizeUsecase := categorizing.NewService(cfg, publicationRepo, classifier)

	categorizeSyncService := scheduler.NewCategorizePendingService(categorizeUsecase, cfg)
	cleanupSyncService := scheduler.NewCleanupPendingService(categorizeUsecase, cfg)

	if err := categorizeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de categorización de pendientes")
	} else {
		logrus.Info("Agendador de categorización de pendientes iniciado con éxito")
	}

	if err := cleanupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de limpieza de pendientes")
	} else {
		logrus.Info("Agendador de limpieza de pendientes iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		ingestService,
		reportService,
		authenticator,
		categorizeSyncService,
		cleanupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
