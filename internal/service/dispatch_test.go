package service

import (
	"context"
	"testing"
	"time"

	"edl-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	snap := testSnapshot(completedReport())
	doc := []byte("<html>report</html>")

	t.Run("AttachmentNaming", func(t *testing.T) {
		sender := new(MockEmailSender)
		d := NewDocumentDispatcher(sender)
		d.clock = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

		sender.On("Send", ctx, "jean.martin@example.com", "Jean Martin",
			"Vehicle condition report (departure) - AB-123-CD",
			mock.MatchedBy(func(body string) bool { return len(body) > 0 }),
			Attachment{Filename: "EDL_departure_AB-123-CD_2024-05-01.html", Content: doc}).
			Return("msg-1", nil)

		msgID, err := d.Dispatch(ctx, snap, doc)

		assert.NoError(t, err)
		assert.Equal(t, "msg-1", msgID)
		sender.AssertExpectations(t)
	})

	t.Run("ReturnDirectionLabel", func(t *testing.T) {
		sender := new(MockEmailSender)
		d := NewDocumentDispatcher(sender)
		d.clock = func() time.Time { return time.Date(2024, 5, 8, 18, 0, 0, 0, time.UTC) }

		retSnap := testSnapshot(completedReport())
		retSnap.Report.Direction = domain.DirectionReturn

		sender.On("Send", ctx, mock.Anything, mock.Anything,
			"Vehicle condition report (return) - AB-123-CD", mock.Anything,
			Attachment{Filename: "EDL_return_AB-123-CD_2024-05-08.html", Content: doc}).
			Return("msg-2", nil)

		_, err := d.Dispatch(ctx, retSnap, doc)
		assert.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("EmailBodyMentionsVehicleAndAgency", func(t *testing.T) {
		body := emailBody(snap, "departure")
		assert.Contains(t, body, "Hello Jean Martin")
		assert.Contains(t, body, "Renault Clio")
		assert.Contains(t, body, "AB-123-CD")
		assert.Contains(t, body, "Downtown Agency")
	})
}
