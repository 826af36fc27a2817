package enum

// JobStatus represents the status of a service job/complaint
type JobStatus string

const (
	JobStatusPending    JobStatus = "Pending"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusOnHold     JobStatus = "On Hold"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusDelivered  JobStatus = "Delivered"
	JobStatusCancelled  JobStatus = "Cancelled"
)

// Valid reports whether s is a known job status
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusOnHold,
		JobStatusCompleted, JobStatusDelivered, JobStatusCancelled:
		return true
	}
	return false
}

func (s JobStatus) String() string {
	return string(s)
}
