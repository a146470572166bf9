package state

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
)

// ErrNoSuitableDevice is returned when no enumerated physical device can both
// present and run graphics work.
var ErrNoSuitableDevice = errors.New("no suitable accelerator found")

// Stage names an initialization step of a State.
type Stage string

const (
	StageInstance    Stage = "create instance"
	StageSurface     Stage = "bind window system"
	StageEnumerate   Stage = "enumerate physical devices"
	StageDevice      Stage = "create logical device"
	StageCommandPool Stage = "create command pool"
)

// InitializationError reports that the accelerator API rejected a creation
// request during one of the initialization stages.
type InitializationError struct {
	Stage  Stage
	Result common.VkResult
	cause  error
}

func newInitializationError(stage Stage, result common.VkResult, cause error) *InitializationError {
	if cause == nil {
		cause = errors.Newf("%s failed", stage)
	}
	return &InitializationError{
		Stage:  stage,
		Result: result,
		cause:  errors.WithStack(cause),
	}
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Result, e.cause)
}

func (e *InitializationError) Unwrap() error {
	return e.cause
}

// Format prints the wrapped stack trace under %+v.
func (e *InitializationError) Format(s fmt.State, verb rune) {
	errors.FormatError(e, s, verb)
}
