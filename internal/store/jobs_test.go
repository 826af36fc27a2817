package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

func TestJobStatusDatesStampOnce(t *testing.T) {
	s := newTestStore()

	job := s.AddJob(entity.Job{
		Customer: entity.CustomerInfo{Name: "Nisha"},
		Device:   "Dell Inspiron", Issue: "No display",
	})
	require.Equal(t, "JOB-2026-001", job.ID)
	require.Equal(t, enum.JobStatusPending, job.Status)

	completed, err := s.UpdateJobStatus(job.ID, enum.JobStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedDate)
	firstStamp := *completed.CompletedDate

	delivered, err := s.UpdateJobStatus(job.ID, enum.JobStatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredDate)

	again, err := s.UpdateJobStatus(job.ID, enum.JobStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, firstStamp, *again.CompletedDate, "completion date never overwritten")

	_, err = s.UpdateJobStatus(job.ID, enum.JobStatus("Lost"))
	require.Error(t, err)
}
