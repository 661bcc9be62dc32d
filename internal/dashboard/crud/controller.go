// Package crud holds a list of entities plus the modal state of the one the
// user is looking at, and drives remote reads and writes through a Backend.
package crud

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrCapability        = errors.New("operation not supported")
	ErrNotHeld           = errors.New("entry is not in the held list")
)

// Capability is a set of permitted operations.
type Capability uint8

const (
	Read Capability = 1 << iota
	Create
	Update
	Delete

	All = Read | Create | Update | Delete
)

// Has reports whether c includes every bit of other.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Mode is the state of the detail interaction.
type Mode int

const (
	Idle Mode = iota
	Viewing
	Editing
	Saving
	ConfirmingDelete
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "Viewing"
	case Editing:
		return "Editing"
	case Saving:
		return "Saving"
	case ConfirmingDelete:
		return "ConfirmingDelete"
	case Deleting:
		return "Deleting"
	default:
		return "Idle"
	}
}

// Backend binds the controller to an entity type T and its patch type P.
// Snapshot and Apply must agree: Apply(t, Snapshot(t)) leaves t unchanged.
type Backend[T, P any] struct {
	ID       func(T) string
	Snapshot func(T) P
	Apply    func(T, P) T

	List   func(ctx context.Context) ([]T, error)
	Update func(ctx context.Context, id string, patch P) error
	Delete func(ctx context.Context, id string) error

	// Gone reports errors that mean the entry no longer exists remotely.
	// A delete failing that way still removes the local entry.
	Gone func(error) bool
}

// Options tune a Controller.
type Options struct {
	Capabilities Capability
	// MaxAge makes Load re-fetch a snapshot older than it. Zero keeps the
	// snapshot until Refresh.
	MaxAge time.Duration
	Now    func() time.Time
}

// Controller is safe for concurrent reads; mutating calls are expected from
// one goroutine.
type Controller[T, P any] struct {
	backend Backend[T, P]
	caps    Capability
	maxAge  time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	items     []T
	loaded    bool
	loadedFor string
	loadedAt  time.Time

	mode     Mode
	selected string
	draft    P
	lastErr  string
}

// New returns an Idle controller with an empty list.
func New[T, P any](backend Backend[T, P], opts Options) *Controller[T, P] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Capabilities == 0 {
		opts.Capabilities = Read
	}

	return &Controller[T, P]{
		backend: backend,
		caps:    opts.Capabilities,
		maxAge:  opts.MaxAge,
		now:     opts.Now,
	}
}

// Capabilities returns the operations this controller permits.
func (c *Controller[T, P]) Capabilities() Capability {
	return c.caps
}

// Mode returns the current state.
func (c *Controller[T, P]) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.mode
}

// LastError is the message of the most recent failure, or "".
func (c *Controller[T, P]) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastErr
}

// Items returns a copy of the held list.
func (c *Controller[T, P]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// Find returns the held entry with id.
func (c *Controller[T, P]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return c.items[idx], true
}

// Selected returns the entry being viewed, edited or deleted.
func (c *Controller[T, P]) Selected() (T, bool) {
	c.mu.RLock()
	selected := c.selected
	c.mu.RUnlock()

	if selected == "" {
		var zero T

		return zero, false
	}

	return c.Find(selected)
}

// Draft returns the editable copy while Editing or Saving.
func (c *Controller[T, P]) Draft() (P, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mode != Editing && c.mode != Saving {
		var zero P

		return zero, false
	}

	return c.draft, true
}

// Load fetches the list once per identity. A later call for the same
// identity is a no-op unless the snapshot is older than MaxAge.
func (c *Controller[T, P]) Load(ctx context.Context, identity string) error {
	if !c.caps.Has(Read) {
		return errors.WithStack(ErrCapability)
	}

	c.mu.RLock()
	fresh := c.loaded && c.loadedFor == identity &&
		(c.maxAge <= 0 || c.now().Sub(c.loadedAt) < c.maxAge)
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	return c.fetch(ctx, identity)
}

// Refresh re-fetches the list for the identity it was last loaded for.
func (c *Controller[T, P]) Refresh(ctx context.Context) error {
	if !c.caps.Has(Read) {
		return errors.WithStack(ErrCapability)
	}

	c.mu.RLock()
	identity := c.loadedFor
	c.mu.RUnlock()

	return c.fetch(ctx, identity)
}

func (c *Controller[T, P]) fetch(ctx context.Context, identity string) error {
	items, err := c.backend.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.loadedFor != identity {
			// Never keep showing another identity's entries.
			c.resetLocked()
			c.items = nil
			c.loaded = false
			c.loadedFor = identity
		}
		c.lastErr = err.Error()

		return err
	}

	if c.loadedFor != identity {
		c.resetLocked()
	}
	c.items = items
	c.loaded = true
	c.loadedFor = identity
	c.loadedAt = c.now()
	c.lastErr = ""

	// The selection may have vanished remotely.
	if c.selected != "" && c.indexOf(c.selected) < 0 {
		c.resetLocked()
	}

	return nil
}

// Add runs create and prepends its result to the held list.
func (c *Controller[T, P]) Add(ctx context.Context, create func(context.Context) (T, error)) (T, error) {
	var zero T
	if !c.caps.Has(Create) {
		return zero, errors.WithStack(ErrCapability)
	}
	if c.Mode() != Idle {
		return zero, errors.WithStack(ErrInvalidTransition)
	}

	item, err := create(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.lastErr = err.Error()

		return zero, err
	}
	c.items = slices.Insert(c.items, 0, item)
	c.lastErr = ""

	return item, nil
}

// View moves Idle → Viewing.
func (c *Controller[T, P]) View(id string) error {
	if !c.caps.Has(Read) {
		return errors.WithStack(ErrCapability)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != Idle {
		return errors.WithStack(ErrInvalidTransition)
	}
	if c.indexOf(id) < 0 {
		return errors.WithStack(ErrNotHeld)
	}

	c.mode = Viewing
	c.selected = id

	return nil
}

// BeginEdit moves Idle → Editing with a snapshot of the entry as the draft.
func (c *Controller[T, P]) BeginEdit(id string) error {
	if !c.caps.Has(Update) {
		return errors.WithStack(ErrCapability)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != Idle {
		return errors.WithStack(ErrInvalidTransition)
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return errors.WithStack(ErrNotHeld)
	}

	c.mode = Editing
	c.selected = id
	c.draft = c.backend.Snapshot(c.items[idx])
	c.lastErr = ""

	return nil
}

// EditDraft changes the draft while Editing.
func (c *Controller[T, P]) EditDraft(edit func(*P)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != Editing {
		return errors.WithStack(ErrInvalidTransition)
	}
	edit(&c.draft)

	return nil
}

// Save sends the draft as the update. On success the same patch is applied to
// the held entry and the controller returns to Idle; on failure it goes back
// to Editing with the error kept.
func (c *Controller[T, P]) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.mode != Editing {
		c.mu.Unlock()

		return errors.WithStack(ErrInvalidTransition)
	}
	c.mode = Saving
	id, patch := c.selected, c.draft
	c.mu.Unlock()

	err := c.backend.Update(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.mode = Editing
		c.lastErr = err.Error()

		return err
	}

	if idx := c.indexOf(id); idx >= 0 {
		c.items[idx] = c.backend.Apply(c.items[idx], patch)
	}
	c.resetLocked()
	c.lastErr = ""

	return nil
}

// BeginDelete moves Idle → ConfirmingDelete. Nothing is sent yet.
func (c *Controller[T, P]) BeginDelete(id string) error {
	if !c.caps.Has(Delete) {
		return errors.WithStack(ErrCapability)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != Idle {
		return errors.WithStack(ErrInvalidTransition)
	}
	if c.indexOf(id) < 0 {
		return errors.WithStack(ErrNotHeld)
	}

	c.mode = ConfirmingDelete
	c.selected = id
	c.lastErr = ""

	return nil
}

// ConfirmDelete deletes the pending entry. Failure returns to
// ConfirmingDelete with the error kept.
func (c *Controller[T, P]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.mode != ConfirmingDelete {
		c.mu.Unlock()

		return errors.WithStack(ErrInvalidTransition)
	}
	c.mode = Deleting
	id := c.selected
	c.mu.Unlock()

	err := c.backend.Delete(ctx, id)
	if err != nil && c.backend.Gone != nil && c.backend.Gone(err) {
		err = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.mode = ConfirmingDelete
		c.lastErr = err.Error()

		return err
	}

	if idx := c.indexOf(id); idx >= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
	}
	c.resetLocked()
	c.lastErr = ""

	return nil
}

// Cancel returns to Idle from Viewing, Editing or ConfirmingDelete without
// any remote call.
func (c *Controller[T, P]) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case Viewing, Editing, ConfirmingDelete:
		c.resetLocked()
		c.lastErr = ""

		return nil
	default:
		return errors.WithStack(ErrInvalidTransition)
	}
}

func (c *Controller[T, P]) resetLocked() {
	var zero P
	c.mode = Idle
	c.selected = ""
	c.draft = zero
}

func (c *Controller[T, P]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return c.backend.ID(item) == id
	})
}
