package cmd

import (
	"time"

	"github.com/modkeeper/modkeeper"
	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// catalogWaiter bridges the engine's asynchronous catalog events to the
// blocking flow of a CLI command.
type catalogWaiter struct {
	modkeeper.NopListener
	done chan error
}

func newCatalogWaiter() *catalogWaiter {
	return &catalogWaiter{done: make(chan error, 1)}
}

// CatalogLoaded implements modkeeper.Listener.
func (w *catalogWaiter) CatalogLoaded() {
	select {
	case w.done <- nil:
	default:
	}
}

// SyncFailed implements modkeeper.Listener.
func (w *catalogWaiter) SyncFailed(err error) {
	select {
	case w.done <- err:
	default:
	}
}

// wait blocks until the sync completes or the command timeout elapses. The
// engine drops a non-success catalog response without any notification, so
// the timeout is the only way such a cycle surfaces here.
func (w *catalogWaiter) wait() error {
	select {
	case err := <-w.done:
		return err
	case <-time.After(constants.CommandTimeout):
		return errors.New("timed out waiting for the registry")
	}
}

// moduleWaiter waits for one per-module sync to finish.
type moduleWaiter struct {
	modkeeper.NopListener
	name   string
	module chan *registry.Module
	failed chan error
}

func newModuleWaiter(name string) *moduleWaiter {
	return &moduleWaiter{
		name:   name,
		module: make(chan *registry.Module, 1),
		failed: make(chan error, 1),
	}
}

// ModuleReleasesLoaded implements modkeeper.Listener.
func (w *moduleWaiter) ModuleReleasesLoaded(m *registry.Module) {
	if m.Name != w.name {
		return
	}
	select {
	case w.module <- m:
	default:
	}
}

// SyncFailed implements modkeeper.Listener.
func (w *moduleWaiter) SyncFailed(err error) {
	select {
	case w.failed <- err:
	default:
	}
}

func (w *moduleWaiter) wait() (*registry.Module, error) {
	select {
	case m := <-w.module:
		return m, nil
	case err := <-w.failed:
		return nil, err
	case <-time.After(constants.CommandTimeout):
		return nil, errors.New("timed out waiting for the registry")
	}
}

// syncCatalog runs one catalog sync to completion on the given client.
func syncCatalog(client modkeeper.Client) error {
	waiter := newCatalogWaiter()
	client.Subscribe(waiter)
	defer client.Unsubscribe(waiter)

	client.Sync()
	return waiter.wait()
}
