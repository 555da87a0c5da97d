package internal

import "encoding/json"

// HistoryStore persists completed reports, newest-first, keyed by report id.
// Every mutation rewrites the whole serialized sequence before returning, so
// no partial state is ever observable to a subsequent read.
type HistoryStore struct {
	store *Store
}

// NewHistoryStore creates a history store on top of the key-value store
func NewHistoryStore(store *Store) *HistoryStore {
	return &HistoryStore{store: store}
}

// List returns all reports, newest first. Malformed stored data degrades to
// an empty history rather than an error, so a broken blob never blocks startup.
func (h *HistoryStore) List() ([]Report, error) {
	raw, ok, err := h.store.Get(HistoryKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Report{}, nil
	}

	var reports []Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		LogWarn("Malformed report history, starting from an empty list: %v", err)
		return []Report{}, nil
	}
	return reports, nil
}

// Save prepends a completed report to the history. It never merges or
// deduplicates by topic; every completed run is its own entry.
func (h *HistoryStore) Save(report *Report) error {
	reports, err := h.List()
	if err != nil {
		return err
	}
	updated := append([]Report{*report.Clone()}, reports...)
	return h.persist(updated)
}

// LoadByID returns a copy of the report with the given id
func (h *HistoryStore) LoadByID(id int64) (*Report, error) {
	reports, err := h.List()
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return reports[i].Clone(), nil
		}
	}
	return nil, ErrReportNotFound
}

// DeleteByID removes exactly the entry with the given id, keeping the
// relative order of the rest.
func (h *HistoryStore) DeleteByID(id int64) error {
	reports, err := h.List()
	if err != nil {
		return err
	}
	remaining := make([]Report, 0, len(reports))
	found := false
	for _, r := range reports {
		if r.ID == id && !found {
			found = true
			continue
		}
		remaining = append(remaining, r)
	}
	if !found {
		return ErrReportNotFound
	}
	return h.persist(remaining)
}

// Clear removes the entire history
func (h *HistoryStore) Clear() error {
	return h.store.Delete(HistoryKey)
}

func (h *HistoryStore) persist(reports []Report) error {
	data, err := json.Marshal(reports)
	if err != nil {
		return &StoreError{Key: HistoryKey, Op: "set", Err: err}
	}
	return h.store.Set(HistoryKey, string(data))
}
