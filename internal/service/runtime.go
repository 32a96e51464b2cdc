package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultUserID owns records created while nobody is logged in.
const DefaultUserID = "default_user"

// Latency is the simulated network delay of each store action.
type Latency struct {
	Login          time.Duration
	Signup         time.Duration
	UpdatePassword time.Duration
	FetchTasks     time.Duration
	AddTask        time.Duration
	UpdateTask     time.Duration
	DeleteTask     time.Duration
	FetchProjects  time.Duration
	AddProject     time.Duration
	UpdateProject  time.Duration
	DeleteProject  time.Duration
}

// DefaultLatency is the simulated round trip of each action.
func DefaultLatency() Latency {
	return Latency{
		Login:          time.Second,
		Signup:         time.Second,
		UpdatePassword: time.Second,
		FetchTasks:     500 * time.Millisecond,
		AddTask:        500 * time.Millisecond,
		UpdateTask:     300 * time.Millisecond,
		DeleteTask:     300 * time.Millisecond,
		FetchProjects:  500 * time.Millisecond,
		AddProject:     500 * time.Millisecond,
		UpdateProject:  300 * time.Millisecond,
		DeleteProject:  300 * time.Millisecond,
	}
}

// Runtime is the environment shared by the stores: clock, delay and logger.
type Runtime struct {
	Now     func() time.Time
	Sleep   func(time.Duration)
	Latency Latency
	Log     logrus.FieldLogger
}

// NewRuntime returns a real-clock runtime. With simulate false all delays
// are zero.
func NewRuntime(log logrus.FieldLogger, simulate bool) Runtime {
	rt := Runtime{
		Now:   func() time.Time { return time.Now().UTC() },
		Sleep: time.Sleep,
		Log:   log,
	}
	if simulate {
		rt.Latency = DefaultLatency()
	}
	return rt
}

// delay blocks for d. The wait is not cancellable: a started action always
// completes.
func (rt Runtime) delay(d time.Duration) {
	if d <= 0 || rt.Sleep == nil {
		return
	}
	rt.Sleep(d)
}

// newID returns "<unix millis>_<9 random chars>".
func (rt Runtime) newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d_%s", rt.Now().UnixMilli(), suffix)
}
