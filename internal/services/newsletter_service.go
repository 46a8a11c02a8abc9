package services

import (
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"jobmetric.dev/internal/models"
)

// ErrInvalidEmail is returned when a signup address fails syntactic checks.
var ErrInvalidEmail = errors.New("invalid email address")

// NewsletterService holds the in-memory signup state. Nothing is persisted
// and no mail is sent; a successful signup only records the address and
// raises a transient submitted flag that clears itself after resetDelay.
type NewsletterService struct {
	mu          sync.Mutex
	resetDelay  time.Duration
	subscribers []string
	pending     string
	submitted   bool
}

// NewNewsletterService creates a new NewsletterService with the given
// reset delay for the submitted flag.
func NewNewsletterService(resetDelay time.Duration) *NewsletterService {
	return &NewsletterService{resetDelay: resetDelay}
}

// Subscribe validates the address, records it, and raises the submitted
// flag. The flag and the pending address clear after the reset delay; the
// timer is fire-and-forget and cannot be cancelled.
func (s *NewsletterService) Subscribe(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.Wrapf(ErrInvalidEmail, "%q", email)
	}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, email)
	s.pending = email
	s.submitted = true
	s.mu.Unlock()

	time.AfterFunc(s.resetDelay, s.reset)

	return nil
}

// reset clears the submitted flag and the pending address
func (s *NewsletterService) reset() {
	s.mu.Lock()
	s.submitted = false
	s.pending = ""
	s.mu.Unlock()
}

// Status returns the current transient signup state
func (s *NewsletterService) Status() models.NewsletterStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.NewsletterStatus{
		Submitted: s.submitted,
		Pending:   s.pending,
	}
}

// Subscribers returns a copy of every address recorded so far
func (s *NewsletterService) Subscribers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.subscribers))
	copy(out, s.subscribers)

	return out
}
