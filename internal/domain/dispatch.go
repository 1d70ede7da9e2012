package domain

import (
	"context"
	"time"
)

// JobState is the lifecycle state of a DispatchJob.
// Pending -> Firing -> Delivered | Failed; Pending -> Cancelled.
type JobState string

const (
	JobPending   JobState = "pending"
	JobFiring    JobState = "firing"
	JobDelivered JobState = "delivered"
	JobFailed    JobState = "failed"
	JobCancelled JobState = "cancelled"
)

// Acknowledgment statuses returned to the dispatch caller.
const (
	DispatchScheduled = "scheduled"
	DispatchSentNow   = "sent_now"
)

// DispatchPayload is the content delivered to one recipient: an invitation
// image (data URL) and/or an invitation text.
type DispatchPayload struct {
	Text  string `json:"-"`
	Image string `json:"-"`
}

// Recipient is one resolved (address, payload) pair.
type Recipient struct {
	Address string
	Payload DispatchPayload
}

// DispatchRequest holds the parameters shared by every job of one dispatch call.
// SendTime nil means send immediately; past times are clamped to now.
type DispatchRequest struct {
	SenderName string
	Subject    string
	SendTime   *time.Time
}

// DispatchJob is one scheduled delivery attempt to one recipient.
// swagger:model DispatchJob
type DispatchJob struct {
	ID         string          `json:"id"`
	Recipient  string          `json:"recipient"`
	Payload    DispatchPayload `json:"-"`
	SenderName string          `json:"sender_name"`
	Subject    string          `json:"subject"`
	FireAt     time.Time       `json:"fire_at"`
	State      JobState        `json:"state"`
}

// FireTime returns max(now, requested). A nil requested time means now.
func FireTime(now time.Time, requested *time.Time) time.Time {
	if requested == nil || requested.Before(now) {
		return now
	}
	return *requested
}

// DispatchAck is returned to the caller before any delivery completes.
// swagger:model DispatchAck
type DispatchAck struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Jobs    []*DispatchJob `json:"jobs"`
}

// DispatchLogEntry records the terminal state of one job.
type DispatchLogEntry struct {
	JobID     string
	Recipient string
	Subject   string
	State     JobState
	Error     string
	FireAt    time.Time
	DoneAt    time.Time
}

// DispatchLogRepository persists terminal job states for auditing.
type DispatchLogRepository interface {
	Record(ctx context.Context, entry *DispatchLogEntry) error
}

// JobDeliverer performs the transport attempt of one job.
type JobDeliverer interface {
	Deliver(ctx context.Context, job *DispatchJob) error
}

// Dispatcher schedules per-recipient deliveries and returns without waiting for them.
type Dispatcher interface {
	Schedule(recipients []Recipient, req DispatchRequest) *DispatchAck
	// Cancel removes a pending job. Returns ErrJobNotFound if the job already fired or never existed.
	Cancel(jobID string) error
	// Pending returns a snapshot of jobs not yet fired, ordered by fire time.
	Pending() []*DispatchJob
}

// DispatchService resolves recipients from the guest store and hands them to the Dispatcher.
type DispatchService interface {
	SendInvitations(ctx context.Context, req DispatchRequest) (*DispatchAck, error)
	// SendTest synchronously delivers the latest guest invitation image to one address.
	SendTest(ctx context.Context, to, senderName, subject string) error
	PendingJobs() []*DispatchJob
	CancelJob(jobID string) error
}
