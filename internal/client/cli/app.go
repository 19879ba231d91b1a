package cli

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/bookshop/internal/client/client"
	"github.com/dmitrijs2005/bookshop/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client

	mu  sync.Mutex
	out io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, out io.Writer) *App {
	return &App{config: c, client: api, out: out}
}

// Run performs the demonstration. Lookup failures are printed and do not
// stop the run; only a cancelled context does.
func (a *App) Run(ctx context.Context) error {
	a.allBooks(ctx)

	if err := a.concurrentLookups(ctx); err != nil {
		return err
	}

	a.byAuthor(ctx)

	if a.config.Review {
		a.reviewScenario(ctx)
	}

	return ctx.Err()
}
