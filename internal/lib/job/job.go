// Package job provides background job processing using Asynq.
//
// The API enqueues tasks through JobService.Client; the worker server started
// by JobService.Start pulls them from Redis and runs the registered handlers.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/bhzconnection/escola/internal/config"
	"github.com/bhzconnection/escola/internal/lib/email"
)

// Queue names and their worker share.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Notifier delivers guardian notifications. *email.Client implements it.
type Notifier interface {
	SendAbsenceNotification(to, guardianName, studentName, status, reason string) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server   *asynq.Server
	logger   *zerolog.Logger
	notifier Notifier
}

// NewJobService creates a JobService configured to use Redis from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client:   asynq.NewClient(redisOpt),
		server:   server,
		logger:   logger,
		notifier: email.NewClient(cfg, logger),
	}
}

// SetNotifier replaces the notifier used by task handlers.
func (j *JobService) SetNotifier(n Notifier) {
	j.notifier = n
}

// Mux builds the task router.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAbsenceNotification, j.handleAbsenceNotificationTask)
	return mux
}

// Start registers task handlers and starts the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return err
	}

	return nil
}

// Stop waits for running tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}
