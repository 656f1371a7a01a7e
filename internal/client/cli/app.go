package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/views"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/labstack/gommon/color"
)

type App struct {
	config *config.Config
	log    logging.Logger
	form   *views.AddUserForm
	list   *views.UserList
	reader *bufio.Reader
	out    io.Writer
	color  *color.Color
	width  int
}

// NewApp builds the REST client and both views from c. Input is read from
// stdin and output written to stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	return newApp(c, log, api, bufio.NewReader(os.Stdin), os.Stdout, terminalWidth(os.Stdout)), nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, r *bufio.Reader, out io.Writer, width int) *App {
	if log == nil {
		log = logging.Nop()
	}

	var confirm views.Confirmer = NewPromptConfirmer(r, out)
	if c.AssumeYes {
		confirm = views.AutoConfirm(true)
	}

	col := color.New()
	col.SetOutput(out)

	return &App{
		config: c,
		log:    log,
		form:   views.NewAddUserForm(api, log),
		list:   views.NewUserList(api, confirm, log),
		reader: r,
		out:    out,
		color:  col,
		width:  width,
	}
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "starting", "server_url", a.config.ServerURL)
	fprintln(a.out, "User directory CLI (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
}
