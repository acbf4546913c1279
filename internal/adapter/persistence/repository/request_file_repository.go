package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultRequestsFile = "service_requests.json"

// RequestFileRepository keeps every service request in a single JSON array file,
// pretty-printed with 2-space indentation.
//
// Appends rewrite the whole document: the current file is read, the new record is
// appended and the result is written to a temp file that is renamed over the store.
// Appends through one repository are serialized; separate processes writing the same
// file are not coordinated.
//
// A file that exists but does not decode is reported as interfaces.ErrStoreCorrupt
// and is never overwritten.

type RequestFileRepository struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

var _ interfaces.IRequestStore = (*RequestFileRepository)(nil)

func NewRequestFileRepository(path string, logger *zap.Logger) *RequestFileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestFileRepository{
		path:   orDefault(path, defaultRequestsFile),
		logger: logger,
	}
}

func (r *RequestFileRepository) Path() string {
	return r.path
}

// Init creates the store as an empty array when the file does not exist yet.
func (r *RequestFileRepository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat request store %s: %w", r.path, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create request store dir %s: %w", dir, err)
		}
	}
	r.logger.Info("[intake][store] initializing empty request store", zap.String("path", r.path))
	return r.write([]entities.ServiceRequest{})
}

func (r *RequestFileRepository) Load(ctx context.Context) ([]entities.ServiceRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *RequestFileRepository) Append(ctx context.Context, req entities.ServiceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		r.logger.Error("[intake][store] refusing to append", zap.String("path", r.path), zap.Error(err))
		return err
	}

	records = append(records, req)
	if err := r.write(records); err != nil {
		r.logger.Error("[intake][store] rewrite failed", zap.String("path", r.path), zap.Error(err))
		return err
	}

	r.logger.Debug("[intake][store] appended",
		zap.String("path", r.path),
		zap.String("request_id", req.RequestID),
		zap.Int("records", len(records)),
	)
	return nil
}

func (r *RequestFileRepository) read() ([]entities.ServiceRequest, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entities.ServiceRequest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read request store %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []entities.ServiceRequest{}, nil
	}

	var records []entities.ServiceRequest
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", interfaces.ErrStoreCorrupt, r.path, err)
	}
	if records == nil {
		records = []entities.ServiceRequest{}
	}
	return records, nil
}

func (r *RequestFileRepository) write(records []entities.ServiceRequest) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode request store: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp store file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("replace request store %s: %w", r.path, err)
	}
	return nil
}
