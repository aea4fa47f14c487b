package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/planmate/pkg/task"
)

// Snapshot keys. The task collection and the diary each persist as one
// serialized block; affirmations get one key per day ever visited.
const (
	tasksKey          = "tasks"
	diaryKey          = "diary"
	affirmationPrefix = "affirmation-"
)

// Persistence defines the persistence contract for planner state. Loads never
// fail: malformed or missing snapshots degrade to empty collections so the
// application keeps running on in-memory defaults.
type Persistence interface {
	Tasks() []*task.Task
	SaveTasks(tasks []*task.Task) error
	Diary() map[string]string
	SaveDiary(entries map[string]string) error
	Affirmation(day string) (string, bool)
	SetAffirmation(day, text string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Tasks() []*task.Task {
	val, err := p.d.Read(tasksKey)
	if err != nil {
		return []*task.Task{}
	}
	var tasks []*task.Task
	if err := json.Unmarshal(val, &tasks); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", tasksKey, err)
		return []*task.Task{}
	}
	kept := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func (p *persistence) SaveTasks(tasks []*task.Task) error {
	if tasks == nil {
		tasks = []*task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return p.d.Write(tasksKey, data)
}

func (p *persistence) Diary() map[string]string {
	val, err := p.d.Read(diaryKey)
	if err != nil {
		return map[string]string{}
	}
	entries := make(map[string]string)
	if err := json.Unmarshal(val, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", diaryKey, err)
		return map[string]string{}
	}
	return entries
}

func (p *persistence) SaveDiary(entries map[string]string) error {
	if entries == nil {
		entries = map[string]string{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.d.Write(diaryKey, data)
}

func (p *persistence) Affirmation(day string) (string, bool) {
	val, err := p.d.Read(affirmationPrefix + day)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *persistence) SetAffirmation(day, text string) error {
	if strings.TrimSpace(day) == "" {
		return errors.New("store: day key required")
	}
	return p.d.Write(affirmationPrefix+day, []byte(text))
}

// flatTransform keeps every key in the base directory; the store holds a
// handful of snapshot keys, not a hierarchy.
func flatTransform(string) []string {
	return []string{}
}
