package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/internal/process"
)

func TestModule_ShutsDownWithSessionExitCode(t *testing.T) {
	server := newTestProcess(t, 100)
	shell := newTestProcess(t, 200)
	server.expectTerminate(0)

	launcher := process.NewMockLauncher(t)
	launcher.EXPECT().Launch(mock.Anything, serverConfig).Return(server, nil).Once()
	launcher.EXPECT().Launch(mock.Anything, shellConfig).Return(shell, nil).Once()

	var session *Session

	app := newTestApp(t, launcher, testConfig(0), fx.Populate(&session))
	app.RequireStart()

	waitPhase(t, session, PhaseBothRunning)

	shell.exit(5)

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 5, sig.ExitCode)
	case <-time.After(waitTimeout):
		t.Fatal("app was not shut down")
	}

	app.RequireStop()
}

func TestModule_StopTerminatesProcesses(t *testing.T) {
	server := newTestProcess(t, 100)
	shell := newTestProcess(t, 200)
	server.expectTerminate(143)
	shell.expectTerminate(143)

	launcher := process.NewMockLauncher(t)
	launcher.EXPECT().Launch(mock.Anything, serverConfig).Return(server, nil).Once()
	launcher.EXPECT().Launch(mock.Anything, shellConfig).Return(shell, nil).Once()

	var session *Session

	app := newTestApp(t, launcher, testConfig(0), fx.Populate(&session))
	app.RequireStart()

	waitPhase(t, session, PhaseBothRunning)

	app.RequireStop()

	assert.Equal(t, 0, session.ExitCode())
	assert.Equal(t, PhaseDone, session.Status().Phase)
}

func TestModule_StartFailsIfServerCannotLaunch(t *testing.T) {
	launcher := process.NewMockLauncher(t)
	launcher.EXPECT().Launch(mock.Anything, serverConfig).Return(nil, errors.New("exec: not found")).Once()

	app := newTestApp(t, launcher, testConfig(0))

	err := app.Start(context.Background())
	assert.ErrorContains(t, err, "failed to launch server")
}

func newTestApp(t *testing.T, launcher process.Launcher, config Config, opts ...fx.Option) *fxtest.App {
	return fxtest.New(t,
		fx.Supply(zap.NewNop()),
		fx.Provide(func() process.Launcher { return launcher }),
		fx.Provide(func() clockwork.Clock { return clockwork.NewFakeClock() }),
		Module(config),
		fx.Options(opts...),
	)
}
