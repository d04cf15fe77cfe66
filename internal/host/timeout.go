package host

import (
	"time"

	"go.uber.org/fx"
)

// stopMargin is added on top of the process grace periods.
const stopMargin = 5 * time.Second

// StopTimeout makes sure the application has enough time to stop
// processes that get grace to exit after being terminated, and the
// same grace again after being killed. The fx default is kept if it
// is long enough already.
func StopTimeout(grace time.Duration) fx.Option {
	timeout := 2*grace + stopMargin
	if timeout <= fx.DefaultTimeout {
		return fx.Options()
	}

	return fx.StopTimeout(timeout)
}
