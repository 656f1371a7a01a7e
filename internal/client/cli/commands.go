package cli

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/views"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// AddUser prompts for name, email and phone, then submits the form.
func (a *App) AddUser(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}

	a.form.SetName(name)
	a.form.SetEmail(email)
	a.form.SetPhone(phone)

	return a.Submit(ctx)
}

// SetField edits one form field. field is one of "name", "email", "phone".
func (a *App) SetField(field, value string) {
	switch field {
	case "name":
		a.form.SetName(value)
	case "email":
		a.form.SetEmail(value)
	case "phone":
		a.form.SetPhone(value)
	default:
		fprintln(a.out, "Unknown field:", field)
	}
}

// Submit sends the form and prints the inline feedback.
func (a *App) Submit(ctx context.Context) error {
	if a.form.Busy() {
		fprintln(a.out, "Still submitting, please wait.")
		return views.ErrBusy
	}

	fprintln(a.out, "Submitting...")
	err := a.form.Submit(ctx)
	a.printFormFeedback()
	return err
}

// ShowForm prints the form fields and the last feedback.
func (a *App) ShowForm() {
	name, email, phone := a.form.Fields()
	RenderForm(a.out, name, email, phone)
	a.printFormFeedback()
}

// List is the focus event for the user list: it refetches and renders.
func (a *App) List(ctx context.Context) error {
	if a.list.Loading() {
		fprintln(a.out, "Still loading, please wait.")
		return views.ErrBusy
	}

	fprintln(a.out, "Loading users...")
	err := a.list.Focus(ctx)
	if err != nil {
		fprintln(a.out, a.color.Red("Error: "+a.list.Alert()))
	}
	RenderUserList(a.out, a.list.Visible(), a.width)
	return err
}

// Search narrows the list to matching users without refetching.
func (a *App) Search(term string) {
	a.list.SetSearch(term)
	RenderUserList(a.out, a.list.Visible(), a.width)
}

// Delete removes a user after confirmation and renders the updated list.
func (a *App) Delete(ctx context.Context, id string) error {
	confirmed, err := a.list.Delete(ctx, id)
	switch {
	case err != nil && !confirmed:
		fprintln(a.out, a.color.Red("Error: "+err.Error()))
		return err
	case !confirmed:
		fprintln(a.out, "Cancelled.")
		return nil
	case err != nil:
		fprintln(a.out, a.color.Red(a.list.Alert()))
	default:
		fprintln(a.out, a.color.Green(a.list.Alert()))
	}

	RenderUserList(a.out, a.list.Visible(), a.width)
	return err
}

func (a *App) printFormFeedback() {
	if msg := a.form.Error(); msg != "" {
		fprintln(a.out, a.color.Red(msg))
	}
	if msg := a.form.Success(); msg != "" {
		fprintln(a.out, a.color.Green(msg))
	}
}
