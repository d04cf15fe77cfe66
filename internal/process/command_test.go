package process_test

import (
	"testing"

	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/stretchr/testify/assert"
)

func TestStartConfig_Argv(t *testing.T) {
	tests := []struct {
		name   string
		config process.StartConfig
		cmd    string
		args   []string
	}{
		{
			name:   "cmd and args",
			config: process.StartConfig{Cmd: "npx", Args: []string{"nuxi", "dev"}},
			cmd:    "npx",
			args:   []string{"nuxi", "dev"},
		},
		{
			name:   "command line",
			config: process.StartConfig{Command: "npx nuxi dev"},
			cmd:    "npx",
			args:   []string{"nuxi", "dev"},
		},
		{
			name:   "command line wins over cmd",
			config: process.StartConfig{Cmd: "node", Command: "npx nuxi dev"},
			cmd:    "npx",
			args:   []string{"nuxi", "dev"},
		},
		{
			name:   "args are appended to command line",
			config: process.StartConfig{Command: "npx nuxi dev", Args: []string{"playground"}},
			cmd:    "npx",
			args:   []string{"nuxi", "dev", "playground"},
		},
		{
			name:   "quoted words",
			config: process.StartConfig{Command: `sh -c "echo 'hello world'"`},
			cmd:    "sh",
			args:   []string{"-c", "echo 'hello world'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := tt.config.Argv()
			assert.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestStartConfig_Argv_Empty(t *testing.T) {
	_, _, err := process.StartConfig{}.Argv()
	assert.ErrorIs(t, err, process.ErrEmptyCommand)

	_, _, err = process.StartConfig{Command: "   "}.Argv()
	assert.ErrorIs(t, err, process.ErrEmptyCommand)
}

func TestStartConfig_Pattern(t *testing.T) {
	config := process.StartConfig{Command: "npx nuxi dev", Args: []string{"./app"}}

	assert.Equal(t, "npx nuxi dev \\./app", config.Pattern())
	assert.Equal(t, "", process.StartConfig{}.Pattern())
}
