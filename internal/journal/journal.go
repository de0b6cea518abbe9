// Package journal appends finished runs to hourly rotated, zstd-compressed
// JSONL files and reads them back.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

const (
	filePrefix = "runs"
	hourLayout = "2006-01-02-15"
)

// Record is one journal line.
type Record struct {
	Time         time.Time `json:"time"`
	Game         string    `json:"game"`
	Player       string    `json:"player,omitempty"`
	Score        int       `json:"score"`
	CoinScore    int       `json:"coin_score"`
	Distance     float64   `json:"distance"`
	Ticks        int       `json:"ticks"`
	DurationMS   int64     `json:"duration_ms"`
	Reason       string    `json:"reason"`
	KilledBy     string    `json:"killed_by,omitempty"`
	Difficulty   string    `json:"difficulty"`
	Mode         string    `json:"mode"`
	NewHighScore bool      `json:"new_high_score"`
}

// FromSummary builds a record for a finished run. player is optional.
func FromSummary(game, player string, sum runner.RunSummary) Record {
	r := Record{
		Time:         sum.EndedAt.UTC(),
		Game:         game,
		Player:       player,
		Score:        sum.Score,
		CoinScore:    sum.CoinScore,
		Distance:     sum.Distance,
		Ticks:        sum.Ticks,
		DurationMS:   sum.Duration.Milliseconds(),
		Reason:       sum.Reason.String(),
		Difficulty:   string(sum.Difficulty),
		Mode:         string(sum.Mode),
		NewHighScore: sum.NewHighScore,
	}
	if sum.Reason == runner.EndDeath {
		r.KilledBy = sum.KilledBy.String()
	}
	return r
}

// Writer appends records to <dir>/runs-YYYY-MM-DD-HH.jsonl.zst, switching
// files when the UTC hour changes. Safe for concurrent use.
type Writer struct {
	dir string
	now func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

// NewWriter creates a writer rooted at dir. Files are opened lazily.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// Write appends one record and flushes it to the compressor.
func (w *Writer) Write(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := w.now().UTC().Format(hourLayout)
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return fmt.Errorf("journal: rotate: %w", err)
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("journal: flush: %w", err)
	}
	return nil
}

// Close finishes the current file. The writer reopens on the next Write.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Writer) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.pathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 16*1024)
	w.curHour = hour
	return nil
}

func (w *Writer) closeLocked() error {
	var errs []error
	if w.w != nil {
		errs = append(errs, w.w.Flush())
	}
	if w.enc != nil {
		errs = append(errs, w.enc.Close())
		w.enc = nil
	}
	if w.f != nil {
		errs = append(errs, w.f.Close())
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return errors.Join(errs...)
}

func (w *Writer) pathForHour(hour string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-%s.jsonl.zst", filePrefix, hour))
}

// ReadAll decodes every journal file under dir, oldest first.
// A missing directory yields no records.
func ReadAll(dir string) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, filePrefix+"-*.jsonl.zst"))
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	sort.Strings(paths)

	var out []Record
	for _, p := range paths {
		recs, err := readFile(p)
		if err != nil {
			return out, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func readFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("journal: %s: %w", filepath.Base(path), err)
	}
	defer dec.Close()

	var out []Record
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 16*1024), 1024*1024)
	for sc.Scan() {
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return out, fmt.Errorf("journal: %s: unmarshal: %w", filepath.Base(path), err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("journal: %s: %w", filepath.Base(path), err)
	}
	return out, nil
}
