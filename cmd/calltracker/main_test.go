package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTwilio(t *testing.T, voiceURL string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Accounts/AC1/Applications/AP1.json", r.URL.Path)
		fmt.Fprintf(w, `{"sid":"AP1","friendly_name":"Call tracking","voice_url":%q,"voice_method":"POST"}`, voiceURL)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setTwilioEnv(t *testing.T, baseURL string) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_APP_SID", "AP1")
	t.Setenv("TWILIO_API_BASE_URL", baseURL)
	t.Setenv("PUBLIC_BASE_URL", "https://calls.acme.test/")
	t.Setenv("LOG_LEVEL", "error")
}

func TestCheckApp(t *testing.T) {
	t.Run("Healthy application", func(t *testing.T) {
		setTwilioEnv(t, fakeTwilio(t, "https://calls.acme.test/forward-call").URL)

		out, err := runCLI(t, "check-app")
		require.NoError(t, err)
		assert.Contains(t, out, "expected:    https://calls.acme.test/forward-call")
		assert.Contains(t, out, "ok")
	})

	t.Run("Placeholder voice URL", func(t *testing.T) {
		setTwilioEnv(t, fakeTwilio(t, "http://www.example.com/forward-call").URL)

		_, err := runCLI(t, "check-app")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https://www.twilio.com/user/account/apps/AP1")
	})

	t.Run("Missing application SID", func(t *testing.T) {
		setTwilioEnv(t, fakeTwilio(t, "").URL)
		t.Setenv("TWILIO_APP_SID", "")

		_, err := runCLI(t, "check-app")
		assert.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:seedtest?mode=memory&cache=shared&_fk=1")
	t.Setenv("LOG_LEVEL", "error")

	_, err := runCLI(t, "seed", "--sources", "3", "--calls", "10", "--seed", "5")
	require.NoError(t, err)
}

func TestHashPassword(t *testing.T) {
	rootCmd.SetIn(bytes.NewBufferString("correct horse\n"))
	defer rootCmd.SetIn(nil)

	out, err := runCLI(t, "hash-password")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(strings.TrimSpace(out), "correct horse"))
}
