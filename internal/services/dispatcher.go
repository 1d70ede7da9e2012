package services

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"weddinginvites/internal/domain"
	"weddinginvites/internal/metrics"
)

var tracer = otel.Tracer("weddinginvites/internal/services")

// queuedJob is a heap entry; index is maintained by jobQueue for heap.Remove.
type queuedJob struct {
	job   *domain.DispatchJob
	seq   uint64
	index int
}

// jobQueue is a min-heap on fire time, ties broken by scheduling order.
type jobQueue []*queuedJob

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	if q[i].job.FireAt.Equal(q[j].job.FireAt) {
		return q[i].seq < q[j].seq
	}
	return q[i].job.FireAt.Before(q[j].job.FireAt)
}

func (q jobQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *jobQueue) Push(x any) {
	item := x.(*queuedJob)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// DispatcherConfig configures a Dispatcher.
type DispatcherConfig struct {
	// DeliveryTimeout bounds one transport attempt. Zero means no bound.
	DeliveryTimeout time.Duration
	Logger          *slog.Logger
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// Dispatcher is an in-memory queue of delivery jobs ordered by fire time.
// Run drives it: each due job is delivered on its own goroutine, exactly once
// and never retried. Jobs still pending when the process exits are lost.
type Dispatcher struct {
	deliverer       domain.JobDeliverer
	logRepo         domain.DispatchLogRepository
	logger          *slog.Logger
	deliveryTimeout time.Duration
	now             func() time.Time

	mu      sync.Mutex
	queue   jobQueue
	byID    map[string]*queuedJob
	nextSeq uint64

	wake     chan struct{}
	inflight sync.WaitGroup
}

var _ domain.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher returns a Dispatcher delivering through deliverer. logRepo may
// be nil, in which case terminal states are only logged.
func NewDispatcher(deliverer domain.JobDeliverer, logRepo domain.DispatchLogRepository, cfg DispatcherConfig) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		deliverer:       deliverer,
		logRepo:         logRepo,
		logger:          logger,
		deliveryTimeout: cfg.DeliveryTimeout,
		now:             now,
		byID:            make(map[string]*queuedJob),
		wake:            make(chan struct{}, 1),
	}
}

// Schedule queues one job per recipient at max(now, req.SendTime) and returns
// at once. The acknowledgment status depends only on whether a send time was given.
func (d *Dispatcher) Schedule(recipients []domain.Recipient, req domain.DispatchRequest) *domain.DispatchAck {
	fireAt := domain.FireTime(d.now(), req.SendTime)

	ack := &domain.DispatchAck{Status: domain.DispatchSentNow, Jobs: make([]*domain.DispatchJob, 0, len(recipients))}
	if req.SendTime != nil {
		ack.Status = domain.DispatchScheduled
	}

	d.mu.Lock()
	for _, r := range recipients {
		job := &domain.DispatchJob{
			ID:         uuid.NewString(),
			Recipient:  r.Address,
			Payload:    r.Payload,
			SenderName: req.SenderName,
			Subject:    req.Subject,
			FireAt:     fireAt,
			State:      domain.JobPending,
		}
		item := &queuedJob{job: job, seq: d.nextSeq}
		d.nextSeq++
		heap.Push(&d.queue, item)
		d.byID[job.ID] = item
		snapshot := *job
		ack.Jobs = append(ack.Jobs, &snapshot)
	}
	pending := len(d.queue)
	d.mu.Unlock()

	for range recipients {
		metrics.IncDispatchJob("scheduled")
	}
	metrics.SetDispatchPending(pending)

	if ack.Status == domain.DispatchScheduled {
		ack.Message = fmt.Sprintf("%d invitation(s) scheduled for %s", len(recipients), fireAt.Format(time.RFC3339))
	} else {
		ack.Message = fmt.Sprintf("%d invitation(s) sent immediately", len(recipients))
	}
	d.logger.Info("dispatch scheduled", "status", ack.Status, "jobs", len(recipients), "fire_at", fireAt)
	d.signal()
	return ack
}

// Cancel removes a job that has not fired yet.
func (d *Dispatcher) Cancel(jobID string) error {
	d.mu.Lock()
	item, ok := d.byID[jobID]
	if !ok {
		d.mu.Unlock()
		return domain.ErrJobNotFound
	}
	heap.Remove(&d.queue, item.index)
	delete(d.byID, jobID)
	item.job.State = domain.JobCancelled
	job := *item.job
	pending := len(d.queue)
	d.mu.Unlock()

	metrics.IncDispatchJob(string(domain.JobCancelled))
	metrics.SetDispatchPending(pending)
	d.logger.Info("dispatch job cancelled", "job_id", job.ID, "recipient", job.Recipient)
	d.record(context.Background(), &job, nil)
	d.signal()
	return nil
}

// Pending returns copies of the jobs that have not fired, earliest first.
func (d *Dispatcher) Pending() []*domain.DispatchJob {
	d.mu.Lock()
	items := make([]*queuedJob, len(d.queue))
	copy(items, d.queue)
	d.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return jobQueue(items).Less(i, j) })
	jobs := make([]*domain.DispatchJob, len(items))
	for i, item := range items {
		job := *item.job
		jobs[i] = &job
	}
	return jobs
}

// Run fires due jobs until ctx is done. It must be running for any job to be delivered.
func (d *Dispatcher) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		d.fireDue()
		if wait, ok := d.nextWait(); ok {
			timer.Reset(wait)
		}
		select {
		case <-ctx.Done():
			d.mu.Lock()
			left := len(d.queue)
			d.mu.Unlock()
			d.logger.Info("dispatcher stopped", "pending", left)
			return
		case <-d.wake:
		case <-timer.C:
		}
		timer.Stop()
	}
}

// Wait blocks until every delivery that has already fired completes.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

func (d *Dispatcher) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) nextWait() (time.Duration, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return 0, false
	}
	return max(d.queue[0].job.FireAt.Sub(d.now()), 0), true
}

func (d *Dispatcher) fireDue() {
	now := d.now()
	var due []*domain.DispatchJob

	d.mu.Lock()
	for len(d.queue) > 0 && !d.queue[0].job.FireAt.After(now) {
		item := heap.Pop(&d.queue).(*queuedJob)
		delete(d.byID, item.job.ID)
		item.job.State = domain.JobFiring
		due = append(due, item.job)
	}
	pending := len(d.queue)
	d.mu.Unlock()

	if len(due) == 0 {
		return
	}
	metrics.SetDispatchPending(pending)
	for _, job := range due {
		d.inflight.Add(1)
		go d.fire(job)
	}
}

// fire performs one transport attempt. Its outcome is logged and recorded, never returned.
func (d *Dispatcher) fire(job *domain.DispatchJob) {
	defer d.inflight.Done()

	ctx := context.Background()
	if d.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.deliveryTimeout)
		defer cancel()
	}
	ctx, span := tracer.Start(ctx, "dispatch.deliver", trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(attribute.String("dispatch.job_id", job.ID))
	defer span.End()

	err := d.deliver(ctx, job)
	if err != nil {
		job.State = domain.JobFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		d.logger.ErrorContext(ctx, "invitation delivery failed", "job_id", job.ID, "recipient", job.Recipient, "err", err)
	} else {
		job.State = domain.JobDelivered
		d.logger.InfoContext(ctx, "invitation delivered", "job_id", job.ID, "recipient", job.Recipient)
	}
	metrics.IncDispatchJob(string(job.State))
	d.record(ctx, job, err)
}

func (d *Dispatcher) deliver(ctx context.Context, job *domain.DispatchJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deliverer panicked: %v", r)
		}
	}()
	return d.deliverer.Deliver(ctx, job)
}

func (d *Dispatcher) record(ctx context.Context, job *domain.DispatchJob, deliveryErr error) {
	if d.logRepo == nil {
		return
	}
	// the delivery context may already be spent
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	entry := &domain.DispatchLogEntry{
		JobID:     job.ID,
		Recipient: job.Recipient,
		Subject:   job.Subject,
		State:     job.State,
		FireAt:    job.FireAt,
		DoneAt:    d.now(),
	}
	if deliveryErr != nil {
		entry.Error = deliveryErr.Error()
	}
	if err := d.logRepo.Record(ctx, entry); err != nil {
		d.logger.WarnContext(ctx, "failed to record dispatch log", "job_id", job.ID, "err", err)
	}
}
