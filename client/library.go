/*
Copyright 2022 by Milo Christiansen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package client

import (
	"errors"
	"sync"
	"time"

	"github.com/teris-io/shortid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse"
)

// Library keeps a set of imported matrices for an application. Each matrix is parsed and validated once on
// import and handed out as clean copies afterwards, so callers may edit what they get without affecting the
// library or each other.
type Library struct {
	parseOpts []parse.Option

	entries map[string]*entry

	lock sync.RWMutex

	// Events are sent on this channel, if it is not nil. Sends never block, if the buffer is full the event
	// is dropped.
	Events chan *Event
}

type entry struct {
	info       Info
	matrix     *phylomatrix.MatrixObject
	advisories []phylomatrix.Advisory
}

// Info describes one imported matrix.
type Info struct {
	ID         string       `json:"id" yaml:"id"`
	Name       string       `json:"name" yaml:"name"`
	Format     parse.Format `json:"format" yaml:"format"`
	Taxa       int          `json:"taxa" yaml:"taxa"`
	Characters int          `json:"characters" yaml:"characters"`
	Advisories int          `json:"advisories" yaml:"advisories"`
}

// Returned by the lookup functions for an ID the library does not have.
var ErrNotFound = errors.New("Matrix not found.")

const (
	EventImported = iota // A matrix was added.
	EventRemoved         // A matrix was removed.
)

type Event struct {
	Type int
	ID   string
}

// Option configures a Library.
type Option func(*Library)

// WithParseOptions sets the options every import is parsed with.
func WithParseOptions(opts ...parse.Option) Option {
	return func(l *Library) {
		l.parseOpts = append(l.parseOpts, opts...)
	}
}

// WithEvents creates the Events channel with the given buffer size.
func WithEvents(buffer int) Option {
	return func(l *Library) {
		l.Events = make(chan *Event, buffer)
	}
}

// NewLibrary returns an empty library.
func NewLibrary(opts ...Option) *Library {
	l := &Library{
		entries: map[string]*entry{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var matrixIDService <-chan string

func init() {
	c := make(chan string)
	matrixIDService = c

	go func() {
		idsource := shortid.MustNew(16, shortid.DefaultABC, uint64(time.Now().UnixNano()))

		for {
			c <- idsource.MustGenerate()
		}
	}()
}

// Import parses and validates text and adds the result to the library. The name is only for display, it
// does not need to be unique.
func (l *Library) Import(name, text string) (string, error) {
	// Parse before taking the lock, this is by far the slowest part.
	p := parse.ParserFor(text, l.parseOpts...)
	if p == nil {
		return "", parse.ErrUnknownFormat
	}
	m, err := p.Parse()
	if err != nil {
		return "", err
	}
	adv := phylomatrix.Validate(m)

	l.lock.Lock()
	defer l.lock.Unlock()

	// Collisions should never happen, but make sure anyway.
	id := <-matrixIDService
	for _, ok := l.entries[id]; ok; _, ok = l.entries[id] {
		id = <-matrixIDService
	}

	l.entries[id] = &entry{
		info: Info{
			ID:         id,
			Name:       name,
			Format:     p.Format(),
			Taxa:       m.TaxonCount(),
			Characters: m.CharacterCount(),
			Advisories: len(adv),
		},
		matrix:     m,
		advisories: adv,
	}
	l.send(EventImported, id)
	return id, nil
}

// Get returns a clean copy of the matrix with the given ID.
func (l *Library) Get(id string) (*phylomatrix.MatrixObject, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	e, ok := l.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.matrix.CleanCopy(), nil
}

// Info returns the description of the matrix with the given ID.
func (l *Library) Info(id string) (Info, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	e, ok := l.entries[id]
	if !ok {
		return Info{}, ErrNotFound
	}
	return e.info, nil
}

// Advisories returns the validator findings recorded when the matrix was imported.
func (l *Library) Advisories(id string) ([]phylomatrix.Advisory, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	e, ok := l.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(e.advisories), nil
}

// List returns the IDs of all matrices, sorted.
func (l *Library) List() []string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	ids := maps.Keys(l.entries)
	slices.Sort(ids)
	return ids
}

// Remove drops a matrix from the library.
func (l *Library) Remove(id string) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.entries[id]; !ok {
		return ErrNotFound
	}
	delete(l.entries, id)
	l.send(EventRemoved, id)
	return nil
}

func (l *Library) send(typ int, id string) {
	if l.Events == nil {
		return
	}
	select {
	case l.Events <- &Event{Type: typ, ID: id}:
	default:
	}
}
