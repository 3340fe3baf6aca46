package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	assert.Equal(t, "myconfig.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_SECRET_KEY", "test-secret")

	appHost, appPort, logLevel,
		pgHost, pgPort, _, _, _,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, _,
		cacheTTLSecond,
		kafkaHost, kafkaPort, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, 60, cacheTTLSecond)
	assert.Equal(t, "localhost", kafkaHost)
	assert.Equal(t, "9092", kafkaPort)
	assert.Equal(t, "ledger-events", kafkaTopic)
	assert.Equal(t, "test-secret", jwtSecret)
	assert.Equal(t, 3600, jwtExp)
}

func TestParseConfig_MissingJWTSecretIsFatal(t *testing.T) {
	resetEnv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_,
		_, _, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_SECRET_KEY", "test-secret")
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_,
		_, _, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	assert.Contains(t, buf.String(), "v1.0.0")
	assert.Contains(t, buf.String(), "abcd1234")
	assert.Contains(t, buf.String(), "2025-09-26")
}
