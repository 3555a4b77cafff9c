// Package winsvc controls Windows services through the service control
// manager. Used to park the update service while its download cache is
// deleted.
package winsvc

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// stopPollInterval is how often the stop wait re-queries service state.
const stopPollInterval = 300 * time.Millisecond

// Controller stops and starts named services. The interface exists so
// the update-cache purge can be exercised without a live SCM.
type Controller interface {
	Stop(name string, timeout time.Duration) error
	Start(name string) error
}

// SCM is the real service control manager backed implementation.
type SCM struct{}

// Stop sends a stop control to the named service and waits until it
// reports Stopped or the timeout elapses. An already-stopped service is
// not an error.
func (SCM) Stop(name string, timeout time.Duration) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("connect to service manager: %w", err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return fmt.Errorf("open service %s: %w", name, err)
	}
	defer s.Close()

	status, err := s.Control(svc.Stop)
	if err != nil {
		if st, qerr := s.Query(); qerr == nil && st.State == svc.Stopped {
			return nil
		}
		return fmt.Errorf("stop service %s: %w", name, err)
	}

	deadline := time.Now().Add(timeout)
	for status.State != svc.Stopped {
		if time.Now().After(deadline) {
			return fmt.Errorf("service %s did not stop within %s", name, timeout)
		}
		time.Sleep(stopPollInterval)
		status, err = s.Query()
		if err != nil {
			return fmt.Errorf("query service %s: %w", name, err)
		}
	}

	return nil
}

// Start starts the named service. An already-running service is not an
// error, so Start is safe as an unconditional compensating step.
func (SCM) Start(name string) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("connect to service manager: %w", err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return fmt.Errorf("open service %s: %w", name, err)
	}
	defer s.Close()

	if err := s.Start(); err != nil {
		if errors.Is(err, windows.ERROR_SERVICE_ALREADY_RUNNING) {
			return nil
		}
		return fmt.Errorf("start service %s: %w", name, err)
	}
	return nil
}
