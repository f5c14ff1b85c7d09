package scrape

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// Row is one record of the external bulk dataset, keyed by column header.
// Header casing, spacing and underscores are not guaranteed; consumers
// canonicalize keys before field lookup.
type Row map[string]string

// Fetcher retrieves the external bulk dataset from a single configured
// location: an http(s) URL or a local file path.
type Fetcher struct {
	source string
	client *http.Client

	maxAttempts int
	baseDelay   time.Duration
}

// NewFetcher creates a fetcher for the given source location.
func NewFetcher(source string) *Fetcher {
	return &Fetcher{
		source:      source,
		client:      &http.Client{Timeout: 15 * time.Second},
		maxAttempts: 3,
		baseDelay:   500 * time.Millisecond,
	}
}

// Fetch retrieves and decodes the dataset. Remote sources are retried with
// exponential backoff before giving up.
func (f *Fetcher) Fetch() ([]Row, error) {
	if f.source == "" {
		return nil, fmt.Errorf("no bulk data source configured")
	}

	var raw []byte
	var err error
	if isRemote(f.source) {
		raw, err = f.fetchRemote()
	} else {
		raw, err = os.ReadFile(f.source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bulk dataset from %s: %w", f.source, err)
	}

	rows, err := decodeCSV(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulk dataset: %w", err)
	}
	log.Printf("scrape: loaded %d rows from %s", len(rows), f.source)
	return rows, nil
}

// fetchRemote downloads the dataset with exponential back-off retry.
func (f *Fetcher) fetchRemote() ([]byte, error) {
	var lastErr error
	delay := f.baseDelay

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		raw, err := f.download()
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if attempt < f.maxAttempts {
			log.Printf("scrape: fetch failed (attempt %d/%d): %v, retrying in %v",
				attempt, f.maxAttempts, err, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", f.maxAttempts, lastErr)
}

func (f *Fetcher) download() ([]byte, error) {
	resp, err := f.client.Get(f.source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeCSV turns delimited text into header-keyed rows. Ragged records are
// tolerated: short records simply leave trailing columns unset.
func decodeCSV(raw []byte) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single malformed line must not abort the rest of the file.
			log.Printf("scrape: skipping malformed CSV record: %v", err)
			continue
		}

		row := make(Row, len(header))
		for i, value := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
