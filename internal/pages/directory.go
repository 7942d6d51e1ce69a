package pages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"

	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// DefaultExtensions are the file types treated as pages
var DefaultExtensions = []string{".txt", ".md", ".markdown", ".text"}

// DirectoryOptions tunes discovery
type DirectoryOptions struct {
	Extensions []string
	MaxDepth   int
	CacheSize  int
}

// Directory is a page set discovered from a directory tree, one file per
// page. Files are appended in walk order, which is lexical per directory,
// so an index never moves once discovered. Contents load lazily.
type Directory struct {
	bus  eventbus.EventBus
	opts DirectoryOptions

	mu         sync.RWMutex
	paths      []string
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup

	cache *lru.Cache[string, domain.Page]
	// paths whose last read failed; reported once until a read succeeds
	failed map[string]struct{}
}

var _ domain.Provider = (*Directory)(nil)

// NewDirectory creates an empty directory page set. bus may be nil.
func NewDirectory(bus eventbus.EventBus, opts DirectoryOptions) (*Directory, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	opts.Extensions = lo.Map(opts.Extensions, func(ext string, _ int) string {
		return strings.ToLower(ext)
	})
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 5
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	cache, err := lru.New[string, domain.Page](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	return &Directory{bus: bus, opts: opts, cache: cache, failed: make(map[string]struct{})}, nil
}

// StartScan discovers pages under root in the background
func (d *Directory) StartScan(ctx context.Context, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	d.mu.Lock()
	if d.isScanning {
		d.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	d.isScanning = true
	scanCtx, cancel := context.WithCancel(ctx)
	d.cancelFunc = cancel
	d.mu.Unlock()

	d.publish(eventbus.ScanStartedEvent{Root: root})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		found := d.scan(scanCtx, root)

		d.mu.Lock()
		d.isScanning = false
		d.cancelFunc = nil
		d.mu.Unlock()
		cancel()

		d.publish(eventbus.ScanCompletedEvent{PagesFound: found})
	}()
	return nil
}

// StopScan cancels a running scan and waits for it to finish
func (d *Directory) StopScan() {
	d.mu.Lock()
	if d.cancelFunc != nil {
		d.cancelFunc()
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Wait blocks until the current scan is done
func (d *Directory) Wait() {
	d.wg.Wait()
}

// Scanning reports whether discovery is still running
func (d *Directory) Scanning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isScanning
}

// Len is the number of pages discovered so far
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.paths)
}

// Path returns the file behind page index
func (d *Directory) Path(index int) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if index < 0 || index >= len(d.paths) {
		return "", false
	}
	return d.paths[index], true
}

// PageAt loads the page at index, going through the content cache. A read
// failure renders as an error page and is not cached, so the next lookup
// retries; it is reported on the bus only the first time it happens.
func (d *Directory) PageAt(index int) (domain.Page, bool) {
	path, ok := d.Path(index)
	if !ok {
		return nil, false
	}
	if page, ok := d.cache.Get(path); ok {
		return page, true
	}

	title := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if d.markFailed(path) {
			log.Printf("Error reading page %s: %v", path, err)
			d.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to read %s", path), Err: err})
		}
		return domain.TextPage{Title: title, Body: fmt.Sprintf("error: %v", err)}, true
	}
	d.clearFailed(path)
	page := domain.TextPage{Title: title, Body: strings.ReplaceAll(string(data), "\r\n", "\n")}
	d.cache.Add(path, page)
	return page, true
}

// markFailed records a failed read and reports whether it is a new failure
func (d *Directory) markFailed(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, seen := d.failed[path]; seen {
		return false
	}
	d.failed[path] = struct{}{}
	return true
}

func (d *Directory) clearFailed(path string) {
	d.mu.Lock()
	delete(d.failed, path)
	d.mu.Unlock()
}

func (d *Directory) scan(ctx context.Context, root string) int {
	found := 0
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			depth := strings.Count(relPath, string(filepath.Separator))
			if depth >= d.opts.MaxDepth || strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") || !d.accepts(entry.Name()) {
			return nil
		}

		d.mu.Lock()
		index := len(d.paths)
		d.paths = append(d.paths, path)
		d.mu.Unlock()

		d.publish(eventbus.PageDiscoveredEvent{Index: index, Path: path})
		found++
		return nil
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Error scanning directory %s: %v", root, err)
		d.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to scan %s", root), Err: err})
	}
	return found
}

func (d *Directory) accepts(name string) bool {
	return lo.Contains(d.opts.Extensions, strings.ToLower(filepath.Ext(name)))
}

func (d *Directory) publish(event eventbus.DomainEvent) {
	if d.bus != nil {
		d.bus.Publish(event)
	}
}
