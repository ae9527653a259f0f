// Package pipeline runs one listing refresh: fetch, decode, filter, write,
// and optionally publish the written bytes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"iconlist/internal/listing"
	"iconlist/internal/models"
	"iconlist/internal/sink"
	"iconlist/pkg/utils"
)

// ErrEmpty is returned when Options.RequireNonEmpty is set and nothing survived the filter.
var ErrEmpty = errors.New("no icon names found")

type Format string

const (
	// FormatEntries is a JSON array of {type, name} directory entries.
	FormatEntries Format = "contents"
	// FormatKeys is a JSON object whose keys are the names.
	FormatKeys Format = "keys"
)

type Options struct {
	IconSet    string
	URL        string
	OutputPath string
	Format     Format

	MatchSuffix     string
	TrimSuffix      bool
	Sort            bool
	RequireNonEmpty bool
}

// Publisher copies a written list somewhere beyond the local sink.
type Publisher interface {
	Publish(ctx context.Context, name string, data []byte) (*models.PublishResult, error)
}

type Pipeline struct {
	fetcher   listing.Fetcher
	sink      sink.Sink
	publisher Publisher
}

func New(fetcher listing.Fetcher, out sink.Sink) *Pipeline {
	return &Pipeline{fetcher: fetcher, sink: out}
}

// WithPublisher makes Run publish after every successful local write.
func (p *Pipeline) WithPublisher(pub Publisher) *Pipeline {
	p.publisher = pub
	return p
}

func (p *Pipeline) Run(ctx context.Context, opts Options) (*models.RefreshResult, error) {
	start := time.Now()

	body, err := p.fetcher.Fetch(ctx, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	names, err := Extract(body, opts)
	if err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	if opts.RequireNonEmpty && len(names) == 0 {
		return nil, ErrEmpty
	}

	data := Render(names)
	if err := p.sink.Write(ctx, opts.OutputPath, data); err != nil {
		return nil, err
	}
	slog.Debug("wrote icon list", "path", opts.OutputPath, "count", len(names), "bytes", len(data))

	result := &models.RefreshResult{
		IconSet:        opts.IconSet,
		SourceURL:      opts.URL,
		OutputPath:     opts.OutputPath,
		Names:          names,
		Count:          len(names),
		TotalSizeBytes: int64(len(data)),
		TotalSizeHuman: utils.FormatBytes(int64(len(data))),
		OperationTime:  utils.FormatTime(start),
	}

	if p.publisher != nil {
		published, err := p.publisher.Publish(ctx, filepath.Base(opts.OutputPath), data)
		if err != nil {
			return nil, fmt.Errorf("publish %s: %w", opts.OutputPath, err)
		}
		result.Published = published
	}

	result.Duration = time.Since(start).String()
	return result, nil
}

// Extract decodes body according to opts.Format and applies the name filters.
func Extract(body []byte, opts Options) ([]string, error) {
	var names []string
	switch opts.Format {
	case FormatEntries, "":
		entries, err := listing.DecodeEntries(body)
		if err != nil {
			return nil, err
		}
		names = listing.FileNames(entries)
	case FormatKeys:
		keys, err := listing.DecodeKeys(body)
		if err != nil {
			return nil, err
		}
		names = keys
	default:
		return nil, fmt.Errorf("unknown listing format %q", opts.Format)
	}

	names = listing.MatchSuffix(names, opts.MatchSuffix, opts.TrimSuffix)
	if opts.Sort {
		sort.Strings(names)
	}
	return names, nil
}

// Render joins names with newlines and terminates the last line.
func Render(names []string) []byte {
	return []byte(strings.Join(names, "\n") + "\n")
}

// Report prints the one-line summary of a refresh.
func Report(w io.Writer, result *models.RefreshResult) error {
	_, err := fmt.Fprintf(w, "Written %d icon filenames to %s\n", result.Count, result.OutputPath)
	return err
}
