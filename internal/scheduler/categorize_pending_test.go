package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/usecases/categorizing"
	"github.com/smdigital/pulso-social-api/internal/usecases/categorizing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func configDeSync() *config.Config {
	return &config.Config{
		CategorizeSync: config.CategorizeSync{
			CronSchedule:        "0 3 * * *",
			BatchSize:           20,
			RequestDelaySeconds: 1,
			Enabled:             true,
		},
		CleanupSync: config.CleanupSync{
			CronSchedule: "30 3 * * *",
			Enabled:      true,
		},
	}
}

func TestCategorizeGetStatusDuranteUnaCorrida(t *testing.T) {
	ctrl := gomock.NewController(t)
	categorizer := mocks.NewMockPendingCategorizer(ctrl)
	service := NewCategorizePendingService(categorizer, configDeSync())

	bloqueo := make(chan struct{})
	categorizer.EXPECT().ProcesarPendientes(gomock.Any()).DoAndReturn(
		func(context.Context) (*categorizing.ResultadoCategorizacion, error) {
			<-bloqueo
			return &categorizing.ResultadoCategorizacion{
				TotalPendientes: 3,
				Procesados:      3,
				Categorias:      map[string]int{"SEGURIDAD": 3},
				Duracion:        "1s",
			}, nil
		})

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	// Lecturas concurrentes mientras la corrida sigue en curso
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				status := service.GetStatus()
				assert.True(t, status["sync_enabled"].(bool))
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			}
		}()
	}

	close(bloqueo)
	wg.Wait()

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	status := service.GetStatus()
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	resultado := status["last_result"].(*categorizing.ResultadoCategorizacion)
	assert.Equal(t, 3, resultado.Procesados)
}

func TestCategorizeIgnoraDisparoManualConCorridaEnCurso(t *testing.T) {
	ctrl := gomock.NewController(t)
	categorizer := mocks.NewMockPendingCategorizer(ctrl)
	service := NewCategorizePendingService(categorizer, configDeSync())

	bloqueo := make(chan struct{})
	categorizer.EXPECT().ProcesarPendientes(gomock.Any()).DoAndReturn(
		func(context.Context) (*categorizing.ResultadoCategorizacion, error) {
			<-bloqueo
			return &categorizing.ResultadoCategorizacion{}, nil
		}).Times(1)

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	// La segunda solicitud no dispara otra corrida
	service.TriggerManualSync()

	close(bloqueo)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)
}

func TestCleanupGetStatusDuranteUnaCorrida(t *testing.T) {
	ctrl := gomock.NewController(t)
	categorizer := mocks.NewMockPendingCategorizer(ctrl)
	service := NewCleanupPendingService(categorizer, configDeSync())

	bloqueo := make(chan struct{})
	categorizer.EXPECT().LimpiarSinContenido(gomock.Any()).DoAndReturn(
		func(context.Context) (*categorizing.ResultadoLimpieza, error) {
			<-bloqueo
			return &categorizing.ResultadoLimpieza{Eliminados: 2}, nil
		})

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				status := service.GetStatus()
				assert.Equal(t, "30 3 * * *", status["sync_cron"].(string))
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			}
		}()
	}

	close(bloqueo)
	wg.Wait()

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_deleted"].(int))
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
