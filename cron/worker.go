package cron

import (
	"context"
	"encoding/json"
	"time"

	"towline/config"
	workerRepo "towline/database/repository/worker"
	"towline/models"
	"towline/services/notification"
	"towline/services/tasks"
	"towline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotifyWorker runs the async dispatch worker in background.
func InitNotifyWorker(workers workerRepo.Repository, dispatcher notification.Dispatcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAssignmentNotify, handleAssignmentNotifyTask(workers, dispatcher))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting assignment notify worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notify worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("notify worker start attempts exhausted")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAssignmentNotifyTask(workers workerRepo.Repository, dispatcher notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.AssignmentNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid assignment notify payload", zap.Error(err))
			return err
		}

		if p.WorkerID == "" {
			logger.Warn("notify task without a worker, dropping",
				zap.String("assignmentId", p.AssignmentID))
			return nil
		}

		worker, out, err := workers.GetByID(ctx, p.ProviderID, p.WorkerID)
		if err != nil {
			return err
		}
		if worker == nil {
			logger.Warn("assigned worker no longer exists, dropping push",
				zap.String("assignmentId", p.AssignmentID),
				zap.String("workerId", p.WorkerID),
				zap.Stringer("outcome", out))
			return nil
		}

		result := dispatcher.NotifyAssignmentCreated(ctx, worker, p)
		logger.Info("assignment push processed",
			zap.String("assignmentId", p.AssignmentID),
			zap.String("workerId", p.WorkerID),
			zap.Stringer("result", result))
		return nil
	}
}
