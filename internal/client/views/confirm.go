package views

import "context"

// Confirmer asks the user a yes/no question. Implementations may block until
// the user answers or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// AutoConfirm answers every question with its own value without asking.
type AutoConfirm bool

func (a AutoConfirm) Confirm(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return bool(a), nil
}
