// Package native shows a page set in ov, which then owns the terminal,
// the page switching and the key bindings.
package native

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/noborus/ov/oviewer"

	"swiper/internal/domain"
	"swiper/internal/eventbus"
	"swiper/internal/paging"
)

// DefaultMaxPages caps how many pages are handed to ov in one session
const DefaultMaxPages = 1000

// OvView is a paging.NativeView backed by ov. Every page becomes an ov
// document; ov's document switching is the paging gesture.
type OvView struct {
	Bus      eventbus.EventBus
	MaxPages int
	Width    int
	Height   int
}

var _ paging.NativeView = (*OvView)(nil)

// Show runs ov starting on page start and reports the page ov was on when
// the user quit.
func (v *OvView) Show(provider domain.Provider, start int, selected func(position int)) error {
	pages := Collect(provider, v.maxPages())
	if len(pages) == 0 {
		return fmt.Errorf("no pages to show")
	}
	start = clamp(start, 0, len(pages)-1)

	docs, err := v.Documents(pages)
	if err != nil {
		return err
	}

	root, err := oviewer.NewOviewer(docs...)
	if err != nil {
		return fmt.Errorf("failed to create ov viewer: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)
	root.CurrentDoc = start
	root.Doc = docs[start]

	v.publish(eventbus.NativePagerOpenedEvent{Start: start})
	runErr := root.Run()

	position := start
	for i, doc := range docs {
		if doc == root.Doc {
			position = i
			break
		}
	}
	v.publish(eventbus.NativePagerClosedEvent{Position: position})
	log.Printf("ov closed on page %d", position)

	if selected != nil {
		selected(position)
	}
	if runErr != nil {
		return fmt.Errorf("ov exited with error: %w", runErr)
	}
	return nil
}

// Documents turns pages into ov documents named after their titles
func (v *OvView) Documents(pages []domain.Page) ([]*oviewer.Document, error) {
	docs := make([]*oviewer.Document, 0, len(pages))
	for i, page := range pages {
		doc, err := v.document(i, page)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (v *OvView) document(index int, page domain.Page) (*oviewer.Document, error) {
	doc, err := oviewer.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to create document for page %d: %w", index, err)
	}
	doc.FileName = Title(index, page)
	if err := doc.ControlReader(strings.NewReader(page.View(v.Width, v.Height)), nil); err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", index, err)
	}
	return doc, nil
}

func (v *OvView) maxPages() int {
	if v.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return v.MaxPages
}

func (v *OvView) publish(event eventbus.DomainEvent) {
	if v.Bus != nil {
		v.Bus.Publish(event)
	}
}

// Collect looks pages up from index 0 until the first gap or max
func Collect(provider domain.Provider, max int) []domain.Page {
	var out []domain.Page
	if provider == nil {
		return out
	}
	for i := 0; i < max; i++ {
		page, ok := provider.PageAt(i)
		if !ok {
			break
		}
		out = append(out, page)
	}
	return out
}

// Title names a page for ov's status line
func Title(index int, page domain.Page) string {
	if tp, ok := page.(domain.TextPage); ok && tp.Title != "" {
		return fmt.Sprintf("%d: %s", index+1, tp.Title)
	}
	return fmt.Sprintf("page %d", index+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ExecCommand runs a NativeView as a tea.ExecCommand so a running Bubble
// Tea program can hand over the terminal. Position holds the page the
// view reported last.
type ExecCommand struct {
	View     paging.NativeView
	Provider domain.Provider
	Start    int
	Position int
}

// NewExecCommand prepares a hand-over starting on page start
func NewExecCommand(view paging.NativeView, provider domain.Provider, start int) *ExecCommand {
	return &ExecCommand{View: view, Provider: provider, Start: start, Position: start}
}

// Run shows the view and blocks until it exits
func (c *ExecCommand) Run() error {
	return c.View.Show(c.Provider, c.Start, func(position int) {
		c.Position = position
	})
}

// ov opens the terminal itself
func (c *ExecCommand) SetStdin(io.Reader)  {}
func (c *ExecCommand) SetStdout(io.Writer) {}
func (c *ExecCommand) SetStderr(io.Writer) {}
