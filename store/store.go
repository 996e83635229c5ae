// Package store persists in-progress documents. One draft per template
// id; saving overwrites. Two tiers exist: Memory hands a ValueSet from
// the edit step to the preview step within one session, Sqlite keeps
// durable drafts across sessions.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/mbolis/quick-docs/model"
)

// Draft is a stored ValueSet plus bookkeeping for listings.
type Draft struct {
	TemplateID string         `json:"templateId"`
	Values     model.ValueSet `json:"values"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type Store interface {
	// Save upserts the draft for a template id.
	Save(ctx context.Context, templateID string, values model.ValueSet) error
	// Load returns the draft for a template id; ok=false means absent.
	Load(ctx context.Context, templateID string) (values model.ValueSet, ok bool, err error)
	Delete(ctx context.Context, templateID string) error
	List(ctx context.Context) ([]Draft, error)
}

type memory struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// Memory returns the transient tier: drafts live only as long as the
// process and are not shared across instances.
func Memory() Store {
	return &memory{drafts: map[string]Draft{}}
}

func (m *memory) Save(_ context.Context, templateID string, values model.ValueSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[templateID] = Draft{
		TemplateID: templateID,
		Values:     values,
		UpdatedAt:  time.Now(),
	}
	return nil
}

func (m *memory) Load(_ context.Context, templateID string) (model.ValueSet, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drafts[templateID]
	if !ok {
		return nil, false, nil
	}
	return d.Values, true, nil
}

func (m *memory) Delete(_ context.Context, templateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, templateID)
	return nil
}

func (m *memory) List(_ context.Context) ([]Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Draft, 0, len(m.drafts))
	for _, d := range m.drafts {
		out = append(out, d)
	}
	return out, nil
}
