package engine

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tartampluch/birthday-reminder/internal/config"
)

// ErrSourceUnavailable is returned when the birthday file cannot be opened or read.
// It is the only loader error that aborts a run.
var ErrSourceUnavailable = errors.New(config.ErrSourceUnavailable)

// Loader reads BirthdayEntry rows from a delimited text source.
type Loader struct {
	Delimiter  rune   // Field separator, config.FieldDelimiter by default
	DateLayout string // Layout of the date field, config.DateFormatInput by default
}

// NewLoader returns a Loader for name;DD.MM.YYYY rows.
func NewLoader() *Loader {
	return &Loader{
		Delimiter:  config.FieldDelimiter,
		DateLayout: config.DateFormatInput,
	}
}

// loadStats counts what happened to the rows of one source.
type loadStats struct {
	rows, entries, skipped int
}

// Load opens path and parses every row of it.
// Rows that cannot be used are logged and dropped; only a source that cannot
// be opened or read returns an error.
func (l *Loader) Load(ctx context.Context, path string) ([]BirthdayEntry, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompLoader,
		config.LogKeyFile, path,
	)
	log.DebugContext(ctx, config.MsgLoadStarted)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := l.Parse(ctx, f)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, config.MsgLoadDone, config.LogKeyDuration, time.Since(start).Milliseconds())
	return entries, nil
}

// Parse reads rows from r until EOF, in source order.
// Each line is split on its own, so a stray quote never reaches into the
// following rows.
func (l *Loader) Parse(ctx context.Context, r io.Reader) ([]BirthdayEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	var stats loadStats
	entries := make([]BirthdayEntry, 0)
	line := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++

		record, err := l.splitLine(scanner.Text())
		if errors.Is(err, io.EOF) {
			continue // Blank line
		}
		stats.rows++
		if err != nil {
			stats.skipped++
			slog.WarnContext(ctx, config.MsgSkippedRow,
				config.LogKeyComponent, config.CompLoader,
				config.LogKeyLine, line,
				config.LogKeyError, err)
			continue
		}

		entry, ok := l.parseRecord(ctx, record)
		if !ok {
			stats.skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, config.ErrSourceRead, err)
	}

	stats.entries = len(entries)
	slog.InfoContext(ctx, config.MsgLoadFinished,
		config.LogKeyComponent, config.CompLoader,
		config.LogKeyRows, stats.rows,
		config.LogKeyEntries, stats.entries,
		config.LogKeySkipped, stats.skipped,
	)
	return entries, nil
}

// splitLine returns the fields of one line. Quoted fields may contain the
// delimiter; quotes elsewhere are kept as written.
func (l *Loader) splitLine(text string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = l.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.Read()
}

// parseRecord turns one row into an entry. The second result is false when
// the row has to be skipped.
func (l *Loader) parseRecord(ctx context.Context, record []string) (BirthdayEntry, bool) {
	if len(record) < config.MinFields {
		slog.DebugContext(ctx, config.MsgSkippedShort,
			config.LogKeyComponent, config.CompLoader,
			config.LogKeyFields, len(record))
		return BirthdayEntry{}, false
	}

	name, raw := record[0], record[1]
	birthDate, err := time.Parse(l.DateLayout, raw)
	if err != nil {
		slog.WarnContext(ctx, config.MsgSkippedDate,
			config.LogKeyComponent, config.CompLoader,
			config.LogKeyName, name,
			config.LogKeyValue, raw,
			config.LogKeyError, err)
		return BirthdayEntry{}, false
	}

	return BirthdayEntry{Name: name, BirthDate: birthDate}, true
}
