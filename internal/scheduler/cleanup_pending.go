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

// CleanupPendingService purga periódicamente las publicaciones pendientes
// que no tienen contenido que el clasificador pueda analizar
type CleanupPendingService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	categorizer         categorizing.PendingCategorizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int
}

// NewCleanupPendingService crea una nueva instancia del servicio de limpieza
func NewCleanupPendingService(
	categorizer categorizing.PendingCategorizer,
	appConfig *config.Config,
) *CleanupPendingService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CleanupSync.CronSchedule,
		"sync_enabled":  appConfig.CleanupSync.Enabled,
	}).Info("Configuración del agendador de limpieza de pendientes cargada")

	return &CleanupPendingService{
		scheduler:    scheduler,
		cronSchedule: appConfig.CleanupSync.CronSchedule,
		enabled:      appConfig.CleanupSync.Enabled,
		categorizer:  categorizer,
	}
}

// Start inicia el agendador
func (s *CleanupPendingService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpieza de pendientes deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de limpieza de pendientes")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runCleanup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error al agendar la limpieza de pendientes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpieza de pendientes")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CleanupPendingService) runCleanup(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpieza ya en curso, ignorando")
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

	resultado, err := s.categorizer.LimpiarSinContenido(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error en la corrida de limpieza de pendientes")
		return
	}

	// GetStatus lee estos campos desde el handler de jobs
	s.syncMutex.Lock()
	s.lastDeleted = resultado.Eliminados
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente una corrida de limpieza
func (s *CleanupPendingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpieza ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpieza manual de pendientes")
	go s.runCleanup(context.Background())
}

// GetStatus devuelve el estado actual del agendador
func (s *CleanupPendingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted":           s.lastDeleted,
	}
}
