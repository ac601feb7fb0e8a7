package tasks

import (
	"encoding/json"
	"time"

	"seatwise/models"

	"github.com/hibiken/asynq"
)

const TypeGuestReminder = "reminder:guest"

func NewGuestReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeGuestReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
