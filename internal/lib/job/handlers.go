package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleAbsenceNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p AbsenceNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload never succeeds, so skip retries.
		return fmt.Errorf("failed to unmarshal absence payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskAbsenceNotification).
		Int64("presenca_id", p.PresencaID).
		Str("to", p.To).
		Logger()

	log.Info().Msg("Processing absence notification task")

	if err := j.notifier.SendAbsenceNotification(p.To, p.GuardianName, p.StudentName, p.Status, p.Reason); err != nil {
		log.Error().Err(err).Msg("Failed to send absence notification")
		return err
	}

	log.Info().Msg("Successfully sent absence notification")
	return nil
}
