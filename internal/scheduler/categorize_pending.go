package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/usecases/categorizing"
)

// CategorizeSyncConfig representa la configuración del agendador del
// clasificador de publicaciones pendientes
type CategorizeSyncConfig struct {
	CronSchedule        string
	BatchSize           int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// CategorizePendingService gestiona la corrida periódica del clasificador
// sobre las publicaciones con categoría "Pendiente"
type CategorizePendingService struct {
	scheduler           *gocron.Scheduler
	config              CategorizeSyncConfig
	appConfig           *config.Config
	categorizer         categorizing.PendingCategorizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *categorizing.ResultadoCategorizacion
}

// NewCategorizePendingService crea una nueva instancia del servicio
func NewCategorizePendingService(
	categorizer categorizing.PendingCategorizer,
	appConfig *config.Config,
) *CategorizePendingService {
	syncConfig := CategorizeSyncConfig{
		CronSchedule:        appConfig.CategorizeSync.CronSchedule,
		BatchSize:           appConfig.CategorizeSync.BatchSize,
		RequestDelaySeconds: appConfig.CategorizeSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.CategorizeSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"batch_size":            syncConfig.BatchSize,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de categorización cargada")

	return &CategorizePendingService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		categorizer: categorizer,
		syncRunning: false,
	}
}

// Start inicia el agendador
func (s *CategorizePendingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Categorización automática deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de categorización de pendientes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCategorization(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error al agendar la categorización de pendientes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de categorización de pendientes")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CategorizePendingService) runCategorization(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Categorización ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	resultado, err := s.categorizer.ProcesarPendientes(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error en la corrida de categorización de pendientes")
		return
	}

	// GetStatus lee estos campos desde el handler de jobs
	s.syncMutex.Lock()
	s.lastResult = resultado
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"pendientes": resultado.TotalPendientes,
		"procesados": resultado.Procesados,
		"errores":    resultado.Errores,
		"duracion":   resultado.Duracion,
	}).Info("Corrida de categorización de pendientes completada")
}

// TriggerManualSync inicia manualmente una corrida de categorización
func (s *CategorizePendingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Categorización ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando categorización manual de pendientes")
	go s.runCategorization(context.Background())
}

// GetStatus devuelve el estado actual del agendador
func (s *CategorizePendingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_batch_size":        s.config.BatchSize,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
