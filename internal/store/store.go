// Package store holds the in-memory task list and its JSON persistence.
package store

import (
	"crypto/rand"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var (
	ErrIndexRange = errors.New("task number out of range")
	ErrCorrupt    = errors.New("task file is corrupt")
	timeNow       = func() time.Time { return time.Now().UTC() }
)

//go:embed schema.json
var schemaJSON string

var taskSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("tasklist.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("tasklist.schema.json")
}

// List is the ordered task store for one session. It is read from disk
// once at startup and written back wholesale by Save; there is no
// intermediate checkpointing. Task numbers are 1-based throughout.
type List struct {
	path      string
	backupDir string
	today     time.Time
	tasks     []Task
	logger    *log.Logger
}

type Options struct {
	// Path of the persistence file.
	Path string
	// BackupDir, when set, receives a snapshot copy on every Save.
	BackupDir string
	// Today is the reference date for due classification. It is captured
	// once; classifications are not refreshed as wall time moves on.
	Today  time.Time
	Logger *log.Logger
}

// Open loads the task file at opts.Path. A missing file yields an empty
// list; an unreadable, unparseable, or schema-invalid file is an error.
func Open(opts Options) (*List, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	today := opts.Today
	if today.IsZero() {
		today = timeNow()
	}
	l := &List{
		path:      opts.Path,
		backupDir: opts.BackupDir,
		today:     today,
		tasks:     []Task{},
		logger:    logger,
	}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) load() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no task file, starting empty", "path", l.path)
			return nil
		}
		return err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, l.path, err)
	}
	if err := taskSchema.Validate(raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, l.path, err)
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, l.path, err)
	}
	for i := range tasks {
		// The schema pins the shape but not calendar validity.
		date, ok := ParseDate(tasks[i].Date)
		if !ok {
			return fmt.Errorf("%w: %s: task %d has no such date %q", ErrCorrupt, l.path, i+1, tasks[i].Date)
		}
		clock, ok := ParseClock(tasks[i].Time)
		if !ok {
			return fmt.Errorf("%w: %s: task %d has no such time %q", ErrCorrupt, l.path, i+1, tasks[i].Time)
		}
		tasks[i].Date = date
		tasks[i].Time = clock
		tasks[i].Due = classifyDay(date, l.today)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	l.tasks = tasks
	l.logger.Debug("loaded task file", "path", l.path, "tasks", len(tasks))
	return nil
}

// Save rewrites the task file wholesale and, when a backup directory is
// configured, drops a snapshot copy there as well.
func (l *List) Save() error {
	data, err := json.MarshalIndent(l.tasks, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := atomicWriteFile(l.path, data, 0o644); err != nil {
		return err
	}
	l.logger.Debug("saved task file", "path", l.path, "tasks", len(l.tasks))
	if l.backupDir == "" {
		return nil
	}
	name := fmt.Sprintf("tasklist-%s.json", newULID())
	backup := filepath.Join(l.backupDir, name)
	if err := atomicWriteFile(backup, data, 0o644); err != nil {
		return err
	}
	l.logger.Info("wrote backup snapshot", "path", backup)
	return nil
}

// Today returns the reference date classifications are computed against.
func (l *List) Today() time.Time { return l.today }

func (l *List) Count() int { return len(l.tasks) }

// Tasks returns a copy of the records in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns task n (1-based).
func (l *List) Get(n int) (Task, error) {
	i, err := l.index(n)
	if err != nil {
		return Task{}, err
	}
	return l.tasks[i], nil
}

// Add appends a record. Date and clock must already be in normalized form
// (the validators produce it); the due tag is computed here.
func (l *List) Add(description string, p Priority, date, clock string) {
	l.tasks = append(l.tasks, Task{
		Description: description,
		Priority:    p,
		Date:        date,
		Time:        clock,
		Due:         classifyDay(date, l.today),
	})
}

func (l *List) SetPriority(n int, p Priority) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks[i].Priority = p
	return nil
}

// SetDate changes task n's date and recomputes its due tag against the
// session's reference date.
func (l *List) SetDate(n int, date string) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks[i].Date = date
	l.tasks[i].Due = classifyDay(date, l.today)
	return nil
}

func (l *List) SetTime(n int, clock string) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks[i].Time = clock
	return nil
}

func (l *List) SetDescription(n int, description string) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks[i].Description = description
	return nil
}

// Delete removes task n; later tasks shift down by one.
func (l *List) Delete(n int) error {
	i, err := l.index(n)
	if err != nil {
		return err
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

func (l *List) index(n int) (int, error) {
	if n < 1 || n > len(l.tasks) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexRange, n, len(l.tasks))
	}
	return n - 1, nil
}

func newULID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", timeNow().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
