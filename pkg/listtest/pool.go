package listtest

import (
	"reflect"

	"github.com/go-drift/listkit/pkg/adapter"
	"github.com/go-drift/listkit/pkg/content"
)

// TextCell is a fake cell view for tests.
type TextCell struct {
	Title      string
	Configured int
}

// BadgeCell is a second fake cell view, for reuse-key and type-mismatch
// tests.
type BadgeCell struct {
	Count int
}

// HeaderView is a fake decoration view for tests.
type HeaderView struct {
	Text string
}

// FakePool is an adapter.ReusePool double. It records every registration
// and acquisition and manufactures views from registered types, or from
// factories stubbed with [FakePool.Stub].
type FakePool struct {
	// Types holds the keys registered by concrete type.
	Types map[string]reflect.Type
	// Templates holds the keys registered by template name.
	Templates map[string]string
	// Acquired records every AcquireView key, in order.
	Acquired []string

	factories map[string]func() content.View
}

var _ adapter.ReusePool = (*FakePool)(nil)

// NewFakePool creates an empty pool.
func NewFakePool() *FakePool {
	return &FakePool{
		Types:     make(map[string]reflect.Type),
		Templates: make(map[string]string),
		factories: make(map[string]func() content.View),
	}
}

// Stub installs a factory for a key, overriding type-based construction.
// Use it to hand back deliberately wrong-typed views for fatal-path tests.
func (p *FakePool) Stub(key string, factory func() content.View) {
	p.factories[key] = factory
}

// RegisterType records a type registration.
func (p *FakePool) RegisterType(reuseKey string, viewType reflect.Type) {
	p.Types[reuseKey] = viewType
}

// RegisterTemplate records a template registration.
func (p *FakePool) RegisterTemplate(reuseKey string, template string) {
	p.Templates[reuseKey] = template
}

// AcquireView records the acquisition and returns a fresh view: the
// stubbed factory's result when one exists, otherwise a zero value of the
// registered type.
func (p *FakePool) AcquireView(reuseKey string) content.View {
	p.Acquired = append(p.Acquired, reuseKey)
	if factory, ok := p.factories[reuseKey]; ok {
		return factory()
	}
	vt, ok := p.Types[reuseKey]
	if !ok {
		return nil
	}
	if vt.Kind() == reflect.Pointer {
		return reflect.New(vt.Elem()).Interface()
	}
	return reflect.New(vt).Elem().Interface()
}

// Recorder captures event names in invocation order.
type Recorder struct {
	// Events is the ordered record.
	Events []string
}

// Record appends one event.
func (r *Recorder) Record(event string) {
	r.Events = append(r.Events, event)
}

// Hook returns a DisplayHook that records name plus the reported address.
func (r *Recorder) Hook(name string) content.DisplayHook {
	return func(_ content.View, a content.Address, _ *content.Tree) {
		r.Record(name + " " + a.String())
	}
}
