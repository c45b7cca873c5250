package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argvparse/internal/testutils"
)

// clearEnv blanks every variable Load consults.
func clearEnv(t *testing.T) {
	t.Helper()
	testutils.ClearEnv(t, "ARGVPARSE_LOG_LEVEL", "ARGVPARSE_LOG_FILE", "ARGVPARSE_OUTPUT", "ARGVPARSE_NO_COLOR", DirEnv)
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyLogLevel, "", "")
	flags.String(KeyLogFile, "", "")
	flags.String(KeyOutput, "", "")
	flags.Bool(KeyNoColor, false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New(), Options{ConfigDir: t.TempDir(), WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, OutputText, cfg.Output)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_ConfigFileInDir(t *testing.T) {
	clearEnv(t)
	dir := testutils.NewFileHelpers().CreateTempDir(t, map[string]string{
		"config.yaml": "output: json\nlog-level: debug\nno-color: true\n",
	})

	cfg, err := Load(viper.New(), Options{ConfigDir: dir, WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{filepath.Join(dir, "config.yaml")}, cfg.Sources)
}

func TestLoad_DotEnvLayering(t *testing.T) {
	clearEnv(t)
	files := testutils.NewFileHelpers()
	configDir := files.CreateTempDir(t, map[string]string{
		"config.yaml": "output: json\nlog-level: warn\n",
		".env":        "ARGVPARSE_OUTPUT=yaml\nARGVPARSE_LOG_LEVEL=error\nOTHER_KEY=ignored\n",
	})
	workDir := files.CreateTempDir(t, map[string]string{
		".env": "# local overrides\nARGVPARSE_LOG_LEVEL=debug\n",
	})

	cfg, err := Load(viper.New(), Options{ConfigDir: configDir, WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{
		filepath.Join(configDir, "config.yaml"),
		filepath.Join(configDir, ".env"),
		filepath.Join(workDir, ".env"),
	}, cfg.Sources)
}

func TestLoad_EnvironmentBeatsDotEnv(t *testing.T) {
	clearEnv(t)
	workDir := testutils.NewFileHelpers().CreateTempDir(t, map[string]string{".env": "ARGVPARSE_OUTPUT=yaml\n"})
	t.Setenv("ARGVPARSE_OUTPUT", "json")
	t.Setenv("ARGVPARSE_NO_COLOR", "true")

	cfg, err := Load(viper.New(), Options{ConfigDir: t.TempDir(), WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.True(t, cfg.NoColor)
}

func TestLoad_FlagsBeatEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARGVPARSE_OUTPUT", "json")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output=yaml", "--log-level=warn"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v, Options{ConfigDir: t.TempDir(), WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnchangedFlagsKeepLowerLayers(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARGVPARSE_OUTPUT", "json")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	v := viper.New()
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v, Options{ConfigDir: t.TempDir(), WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	path := testutils.NewFileHelpers().CreateTempFile(t, "custom.yaml", "output: YAML\n")

	cfg, err := Load(viper.New(), Options{ConfigFile: path, ConfigDir: t.TempDir(), WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Contains(t, cfg.Sources, path)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := Load(viper.New(), Options{
			ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"),
			ConfigDir:  t.TempDir(),
			WorkDir:    t.TempDir(),
		})
		assert.Error(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		t.Setenv("ARGVPARSE_OUTPUT", "xml")
		_, err := Load(viper.New(), Options{ConfigDir: t.TempDir(), WorkDir: t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("malformed config file", func(t *testing.T) {
		dir := testutils.NewFileHelpers().CreateTempDir(t, map[string]string{"config.yaml": "output: [json\n"})
		_, err := Load(viper.New(), Options{ConfigDir: dir, WorkDir: t.TempDir()})
		assert.Error(t, err)
	})
}

func TestBindFlags_MissingFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyLogLevel, "", "")

	err := BindFlags(viper.New(), flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-file")
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/argvparse-test")
	assert.Equal(t, "/tmp/argvparse-test", DefaultDir())

	if runtime.GOOS != "linux" {
		return
	}
	t.Setenv(DirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultDir())
}

func TestSettingKey(t *testing.T) {
	key, ok := settingKey("ARGVPARSE_LOG_LEVEL")
	assert.True(t, ok)
	assert.Equal(t, "log-level", key)

	_, ok = settingKey("ARGVPARSE_")
	assert.False(t, ok)
	_, ok = settingKey("OTHER_OUTPUT")
	assert.False(t, ok)
}
