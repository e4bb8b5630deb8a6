package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/lumenwire-io/horizon/internal/constants"
	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// pagerOptions control how much of a collection a list command fetches.
type pagerOptions struct {
	all    bool
	pageBy uint
	order  horizon.Direction
}

func (o pagerOptions) chunkSize() int {
	if o.pageBy == 0 {
		return constants.DefaultPageSize
	}

	if o.pageBy > constants.MaxPageSize {
		return constants.MaxPageSize
	}

	return int(o.pageBy)
}

// addPagerFlags registers the shared list-command flags. The command reads
// the values after parsing.
func addPagerFlags(flags *pflag.FlagSet, opts *rawPagerFlags) {
	flags.BoolVar(&opts.all, "all", false, "fetch every page without prompting")
	flags.UintVar(&opts.pageBy, "page-by", constants.DefaultPageSize, "records per page")
	flags.StringVar(&opts.cursor, "cursor", "", "resume after this paging token")
	flags.StringVar(&opts.order, "order", "", "result order (asc or desc)")
}

type rawPagerFlags struct {
	all    bool
	pageBy uint
	cursor string
	order  string
}

func (r rawPagerFlags) options() (pagerOptions, error) {
	order, err := parseOrder(r.order)
	if err != nil {
		return pagerOptions{}, err
	}

	return pagerOptions{all: r.all, pageBy: r.pageBy, order: order}, nil
}

// pageRecords drives an iterator chunk by chunk, rendering as it goes. On an
// interactive terminal it prompts between chunks; press q to quit. With --all
// it keeps going until the collection is exhausted, and when not attached to
// a terminal it renders a single chunk so scripted runs stay bounded.
func pageRecords[R any, E horizon.Pageable[R, E]](
	ctx context.Context,
	client *horizon.Client,
	endpoint E,
	opts pagerOptions,
	render func([]R) error,
) error {
	it := horizon.NewIter[R](client, endpoint)
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	prompt := bufio.NewReader(os.Stdin)

	for {
		records, err := it.Collect(ctx, opts.chunkSize())
		if err != nil {
			return fmt.Errorf("fetching records: %w", err)
		}

		if len(records) > 0 {
			renderErr := render(records)
			if renderErr != nil {
				return renderErr
			}
		}

		if len(records) < opts.chunkSize() {
			return nil
		}

		if opts.all {
			continue
		}

		if !interactive {
			return nil
		}

		fmt.Fprint(os.Stderr, "press enter for the next page, q to quit: ")

		line, readErr := prompt.ReadString('\n')
		if readErr != nil || strings.TrimSpace(line) == "q" {
			return nil
		}
	}
}
