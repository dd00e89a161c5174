package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/es-debug/log-analyzer/internal/domain"
	"github.com/es-debug/log-analyzer/internal/stats"
)

const (
	DefaultWorkers = 5
	maxLineSize    = 1 << 20
)

var lineRegexp = regexp.MustCompile(
	`^([\w:.]+) - (\S+) \[([^\]]+)\] "([^"]+)" (\d{3}) (\d+) "([^"]*)" "([^"]*)"`,
)

type Parser struct {
	regex   *regexp.Regexp
	logger  *slog.Logger
	workers int
}

type Option func(*Parser)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

func WithWorkers(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.workers = n
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		regex:   lineRegexp,
		logger:  slog.Default(),
		workers: DefaultWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ParseLine converts one access-log line into a record.
func (p *Parser) ParseLine(text string) (domain.Record, error) {
	matches := p.regex.FindStringSubmatch(text)
	if matches == nil {
		return domain.Record{}, NewErrParse(KindMalformed, text, nil)
	}

	tm, err := time.Parse(domain.TimeLayout, matches[3])
	if err != nil {
		return domain.Record{}, NewErrParse(KindInvalidTimestamp, text, err)
	}

	// time.Parse accepts "aug" and fractional seconds; only the exact layout is valid.
	if tm.Format(domain.TimeLayout) != matches[3] {
		return domain.Record{}, NewErrParse(KindInvalidTimestamp, text, errTimestampLayout)
	}

	status, err := strconv.Atoi(matches[5])
	if err != nil {
		return domain.Record{}, NewErrParse(KindInvalidNumber, text, err)
	}

	size, err := strconv.ParseInt(matches[6], 10, 64)
	if err != nil {
		return domain.Record{}, NewErrParse(KindInvalidNumber, text, err)
	}

	return domain.Record{
		ClientAddress: matches[1],
		User:          matches[2],
		Time:          tm,
		Request:       matches[4],
		Status:        status,
		Size:          size,
		Referer:       matches[7],
		UserAgent:     matches[8],
	}, nil
}

func (p *Parser) read(ctx context.Context, in io.Reader, name string, lines chan<- line) error {
	reader := bufio.NewReaderSize(in, maxLineSize)

	for number := 1; ; number++ {
		text, tooLong, err := readLine(reader)

		if err == nil || text != "" || tooLong {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			select {
			case lines <- newLine(name, text, number, tooLong):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// ParseReader reads one stream line by line and aggregates the admitted
// records. Malformed and oversized lines are logged and skipped. Reading
// stops as soon as ctx is done.
func (p *Parser) ParseReader(ctx context.Context, in io.Reader, name string, filter *Filter) (*stats.Stats, error) {
	res := stats.New()
	lines := make(chan line)

	var readErr error

	go func() {
		defer close(lines)

		readErr = p.read(ctx, in, name, lines)
	}()

	for curLine := range lines {
		rec, err := p.parseLine(curLine)
		if err != nil {
			p.logger.Warn("skip line", "source", curLine.source, "line", curLine.number, "error", err)

			continue
		}

		if filter.Admit(rec) {
			res.Collect(rec)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if readErr != nil {
		return nil, fmt.Errorf("read %s: %w", name, readErr)
	}

	return res, nil
}

func (p *Parser) parseLine(l line) (domain.Record, error) {
	if l.tooLong {
		return domain.Record{}, NewErrParse(KindMalformed, "", errLineTooLong)
	}

	return p.ParseLine(l.text)
}

func (p *Parser) parseSource(ctx context.Context, source string, filter *Filter) (*stats.Stats, error) {
	in, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return p.ParseReader(ctx, in, source, filter)
}

// Parse reads every source matched by params.Path and returns the combined
// statistics. Sources are aggregated in parallel, one aggregator each, and
// merged in source order. Unreadable sources are logged and skipped.
func (p *Parser) Parse(ctx context.Context, params Params) (*stats.Stats, error) {
	sources, err := Sources(params.Path)
	if err != nil {
		return nil, fmt.Errorf("find sources: %w", err)
	}

	filter := params.Filter()
	results := make([]*stats.Stats, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)

	for i, source := range sources {
		eg.Go(func() error {
			res, err := p.parseSource(egCtx, source, filter)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}

				p.logger.Error("skip source", "source", source, "error", err)

				return nil
			}

			p.logger.Debug("source parsed", "source", source, "records", res.TotalRequests())
			results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("eg.Wait(): %w", err)
	}

	total := stats.New()
	read := 0

	for _, res := range results {
		if res == nil {
			continue
		}

		read++
		total.Merge(res)
	}

	if read == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSources, params.Path)
	}

	return total, nil
}
