package notify

import (
	"context"

	"framelight/models"
	"framelight/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqLeadNotifier enqueues a lead-captured task for the background worker.
// Enqueue failures are logged and swallowed: notification is best effort and
// must never fail the chat turn that produced the lead.
type AsynqLeadNotifier struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqLeadNotifier(client *asynq.Client, logger *zap.Logger) *AsynqLeadNotifier {
	return &AsynqLeadNotifier{client: client, logger: logger}
}

func (n *AsynqLeadNotifier) LeadCaptured(ctx context.Context, lead models.Lead, event models.LeadEvent) {
	task, err := tasks.NewLeadCapturedTask(models.LeadNotification{
		SessionID: lead.SessionID,
		Event:     event,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		ShootType: lead.ShootType,
		Notes:     lead.Notes,
	})
	if err != nil {
		n.logger.Error("failed to build lead notification task", zap.Error(err))
		return
	}

	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		n.logger.Error("failed to enqueue lead notification",
			zap.String("sessionID", lead.SessionID),
			zap.Error(err),
		)
	}
}
