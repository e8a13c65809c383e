package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskAbsenceNotification is the task type for "student missed class" emails.
const TaskAbsenceNotification = "notification:absence"

// AbsenceNotificationPayload is stored in Redis as JSON.
type AbsenceNotificationPayload struct {
	PresencaID   int64  `json:"presenca_id"`
	To           string `json:"to"`
	GuardianName string `json:"guardian_name"`
	StudentName  string `json:"student_name"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

// NewAbsenceNotificationTask builds a task that retries three times on the
// default queue and is killed after 30 seconds.
func NewAbsenceNotificationTask(p AbsenceNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAbsenceNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
