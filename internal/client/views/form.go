package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Feedback texts shown by AddUserForm.
const (
	MsgMissingFields = "Please fill in all fields"
	MsgUserAdded     = "User added successfully"
	MsgAddFailed     = "Failed to add user"
	MsgUnreachable   = "Server not reachable. Please try again later."
)

var (
	ErrMissingFields = errors.New("missing fields")
	ErrBusy          = errors.New("submission in progress")
)

// UserCreator is the part of the backend API the form needs.
type UserCreator interface {
	CreateUser(ctx context.Context, u models.NewUser) (string, error)
}

// AddUserForm is safe for concurrent use. At most one submission is in flight.
type AddUserForm struct {
	mu  sync.Mutex
	api UserCreator
	log logging.Logger

	name  string
	email string
	phone string

	busy    bool
	errText string
	success string
}

func NewAddUserForm(api UserCreator, log logging.Logger) *AddUserForm {
	if log == nil {
		log = logging.Nop()
	}
	return &AddUserForm{api: api, log: log.With("view", "add_user")}
}

func (f *AddUserForm) SetName(v string)  { f.set(&f.name, v) }
func (f *AddUserForm) SetEmail(v string) { f.set(&f.email, v) }
func (f *AddUserForm) SetPhone(v string) { f.set(&f.phone, v) }

func (f *AddUserForm) set(field *string, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*field = v
}

// Fields returns the current name, email and phone.
func (f *AddUserForm) Fields() (name, email, phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email, f.phone
}

func (f *AddUserForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Error is the inline error text, empty when there is none.
func (f *AddUserForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errText
}

// Success is the inline success text, empty when there is none.
func (f *AddUserForm) Success() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

// Submit validates the fields and sends a creation request.
//
// Empty fields fail with ErrMissingFields and a busy form fails with ErrBusy;
// neither reaches the backend. Backend and transport failures are returned
// after the inline error text has been set. On success all fields are cleared.
func (f *AddUserForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	if f.name == "" || f.email == "" || f.phone == "" {
		f.errText = MsgMissingFields
		f.mu.Unlock()
		return ErrMissingFields
	}

	f.busy = true
	f.errText = ""
	f.success = ""
	req := models.NewUser{Name: f.name, Email: f.email, PhoneNumber: f.phone}
	f.mu.Unlock()

	msg, err := f.api.CreateUser(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false

	if err != nil {
		f.errText = failureText(err)
		f.log.Warn(ctx, "add user failed", "error", err)
		return err
	}

	if msg == "" {
		msg = MsgUserAdded
	}
	f.success = msg
	f.name, f.email, f.phone = "", "", ""
	f.log.Info(ctx, "user added", "email", req.Email)
	return nil
}

func failureText(err error) string {
	var rej *client.RejectedError
	switch {
	case errors.As(err, &rej):
		if rej.Message != "" {
			return rej.Message
		}
		return MsgAddFailed
	default:
		// no response was received
		return MsgUnreachable
	}
}
