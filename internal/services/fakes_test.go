package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"weddinginvites/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testTimeout = 5 * time.Second

// fakeGuestRepo implements domain.GuestRepository for tests.
type fakeGuestRepo struct {
	mu          sync.Mutex
	guests      []*domain.Guest
	created     []*domain.Guest
	createErr   error
	listErr     error
	lastIDs     []string
	updatedText map[string]string
	updatedImg  map[string]string
	deleted     []string
}

func newFakeGuestRepo(guests ...*domain.Guest) *fakeGuestRepo {
	return &fakeGuestRepo{
		guests:      guests,
		updatedText: make(map[string]string),
		updatedImg:  make(map[string]string),
	}
}

func (f *fakeGuestRepo) BulkCreate(ctx context.Context, guests []*domain.Guest) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, guests...)
	return len(guests), nil
}

func (f *fakeGuestRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.guests, len(f.guests), nil
}

func (f *fakeGuestRepo) ListAll(ctx context.Context, ids []string) ([]*domain.Guest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastIDs = ids
	if len(ids) == 0 {
		return f.guests, nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*domain.Guest
	for _, g := range f.guests {
		if want[g.ID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) ListInterests(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []string
	for _, g := range f.guests {
		if g.Interest != "" {
			out = append(out, g.Interest)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) ListDeliverable(ctx context.Context) ([]*domain.Guest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Guest
	for _, g := range f.guests {
		if g.HasContent() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) LatestWithImage(ctx context.Context) (*domain.Guest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for i := len(f.guests) - 1; i >= 0; i-- {
		if f.guests[i].Image != "" {
			return f.guests[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) find(id string) bool {
	for _, g := range f.guests {
		if g.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeGuestRepo) UpdateInvitationText(ctx context.Context, id, text string) error {
	if !f.find(id) {
		return domain.ErrNotFound
	}
	f.updatedText[id] = text
	return nil
}

func (f *fakeGuestRepo) UpdateImage(ctx context.Context, id, image string) error {
	if !f.find(id) {
		return domain.ErrNotFound
	}
	f.updatedImg[id] = image
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id string) error {
	if !f.find(id) {
		return domain.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeGenerator implements domain.ContentGenerator. It fails for any prompt
// containing one of the failFor substrings and echoes a reply otherwise.
type fakeGenerator struct {
	mu      sync.Mutex
	failFor []string
	prompts []string
	delay   func(prompt string) time.Duration
}

func (f *fakeGenerator) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationOutcome {
	f.mu.Lock()
	f.prompts = append(f.prompts, req.PromptText)
	f.mu.Unlock()
	if f.delay != nil {
		time.Sleep(f.delay(req.PromptText))
	}
	for _, s := range f.failFor {
		if strings.Contains(req.PromptText, s) {
			return domain.GenerationFailed(errors.New("upstream unavailable"))
		}
	}
	return domain.GenerationSucceeded("text for: " + firstWord(req.PromptText))
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// fakeDeliverer implements domain.JobDeliverer. Each delivered job is sent on done.
type fakeDeliverer struct {
	mu      sync.Mutex
	failFor map[string]error
	jobs    []*domain.DispatchJob
	done    chan *domain.DispatchJob
}

func newFakeDeliverer() *fakeDeliverer {
	return &fakeDeliverer{failFor: make(map[string]error), done: make(chan *domain.DispatchJob, 64)}
}

func (f *fakeDeliverer) Deliver(ctx context.Context, job *domain.DispatchJob) error {
	f.mu.Lock()
	f.jobs = append(f.jobs, job)
	err := f.failFor[job.Recipient]
	f.mu.Unlock()
	f.done <- job
	return err
}

// fakeDispatchLog implements domain.DispatchLogRepository.
type fakeDispatchLog struct {
	mu      sync.Mutex
	entries []*domain.DispatchLogEntry
	err     error
}

func (f *fakeDispatchLog) Record(ctx context.Context, e *domain.DispatchLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return f.err
}

func (f *fakeDispatchLog) states() map[string]domain.JobState {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]domain.JobState, len(f.entries))
	for _, e := range f.entries {
		out[e.Recipient] = e.State
	}
	return out
}

// fakeDispatcher implements domain.Dispatcher.
type fakeDispatcher struct {
	recipients []domain.Recipient
	req        domain.DispatchRequest
	cancelled  []string
}

func (f *fakeDispatcher) Schedule(recipients []domain.Recipient, req domain.DispatchRequest) *domain.DispatchAck {
	f.recipients = recipients
	f.req = req
	status := domain.DispatchSentNow
	if req.SendTime != nil {
		status = domain.DispatchScheduled
	}
	return &domain.DispatchAck{Status: status}
}

func (f *fakeDispatcher) Cancel(jobID string) error {
	if jobID == "" {
		return domain.ErrJobNotFound
	}
	f.cancelled = append(f.cancelled, jobID)
	return nil
}

func (f *fakeDispatcher) Pending() []*domain.DispatchJob { return nil }

// fakeMailer implements domain.Mailer.
type fakeMailer struct {
	sent []*domain.MailMessage
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.MailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer and keeps the last data.
type fakeRenderer struct {
	name string
	data *domain.InvitationEmailData
	err  error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	f.name = name
	f.data, _ = data.(*domain.InvitationEmailData)
	return "subject:" + f.data.Subject, "<p>html</p>", "text", nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "created-1"
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}
