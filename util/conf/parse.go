package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/util/cliflags"
)

// DefaultConfig is a flat map of config keys to default values.
type DefaultConfig map[string]any

type ParseOptions[C any] struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars. Neither env vars nor the
	// env file are loaded if empty.
	EnvPrefix string

	// EnvFile is the name of a dotenv file to load. Only variables
	// with EnvPrefix are taken into account. Missing files are ignored.
	EnvFile string

	// FileName is the name of the json configuration file to load.
	// Missing files are ignored.
	FileName string

	// Validate is called with the parsed config
	Validate func(C) error

	// Log is the logger to use
	Log *zap.Logger
}

// Parse loads the config from defaults, the config file, the dotenv
// file, env vars and cli flags, in this order. Later sources override
// earlier ones.
func Parse[C any](opt ParseOptions[C]) (C, error) {
	var config C

	var log *zap.Logger
	if opt.Log != nil {
		log = opt.Log
	} else {
		log = zap.NewNop()
	}

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		if err := loadFile(k, opt.FileName, log); err != nil {
			return config, err
		}
	}

	transformPrefixedEnv := func(s string) string {
		return transformEnv(s, opt.EnvPrefix)
	}

	if opt.EnvFile != "" && opt.EnvPrefix != "" {
		if err := loadEnvFile(k, opt.EnvFile, opt.EnvPrefix, transformPrefixedEnv, log); err != nil {
			return config, err
		}
	}

	if opt.EnvPrefix != "" {
		if err := k.Load(env.Provider(opt.EnvPrefix, ".", transformPrefixedEnv), nil); err != nil {
			log.Error("error parsing env vars", zap.Error(err))
			return config, err
		}
	}

	if opt.Cli != nil {
		transformFlag := func(s string) string {
			if opt.CliMap != nil {
				if name, ok := opt.CliMap[s]; ok {
					return name
				}
			}

			// replace - with _
			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	if opt.Validate != nil {
		if err := opt.Validate(config); err != nil {
			log.Error("invalid config", zap.Error(err))
			return config, err
		}
	}

	return config, nil
}

func loadFile(k *koanf.Koanf, name string, log *zap.Logger) error {
	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
		log.Debug("config file not found", zap.String("file", name))
		return nil
	}

	if err := k.Load(file.Provider(name), json.Parser()); err != nil {
		log.Error("error parsing file",
			zap.Error(err),
			zap.String("file", name),
		)
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

func loadEnvFile(k *koanf.Koanf, name, prefix string, cb func(string) string, log *zap.Logger) error {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("env file not found", zap.String("file", name))
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	vars, err := dotenv.Parser().Unmarshal(data)
	if err != nil {
		log.Error("error parsing env file",
			zap.Error(err),
			zap.String("file", name),
		)
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	mp := make(map[string]any, len(vars))
	for key, value := range vars {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		mp[cb(key)] = value
	}

	return k.Load(confmap.Provider(mp, "."), nil)
}

func transformEnv(s, prefix string) string {
	// drop the prefix
	s = strings.TrimPrefix(s, prefix)
	// allow specifying nested env vars w/ __
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
