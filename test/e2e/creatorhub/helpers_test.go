package creatorhub_test

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/pkg/apisdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and fixtures shared by the creatorhub end-to-end tests.
 */

const (
	testImageName = "creatorhub-test:latest"

	managerPassword = "Manager123!"
	creatorPassword = "Creator123!"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building CreatorHub Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up CreatorHub Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/creatorhub/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// relaxedLimits lifts every rate limit so tests can make rapid requests.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
	"RATELIMIT_LENIENT_REQUESTS":  "1000",
	"RATELIMIT_LENIENT_BURST":     "1000",
}

// setupContainer starts creatorhub and returns a client for it. extraEnv
// is applied on top of the defaults.
func setupContainer(t *testing.T, extraEnv map[string]string) *apisdk.Client {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"APP_BASE_URL": "https://app.example.com",
		"TOKEN_ISSUER": "creatorhub-e2e",
		"ENV":          "test",
		"LOG_LEVEL":    "info",
		"LOG_FORMAT":   "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return apisdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// registerManager creates a manager account and logs it in.
func registerManager(t *testing.T, client *apisdk.Client, email string) *apisdk.Session {
	t.Helper()
	ctx := t.Context()

	_, err := client.Register(ctx, apisdk.RegisterRequest{
		Email:    email,
		Password: managerPassword,
		FullName: "Manager " + email,
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, email, managerPassword)
	require.NoError(t, err)
	return session
}

func createRosterEntry(t *testing.T, session *apisdk.Session, handle string) *apisdk.RosterResponse {
	t.Helper()
	entry, err := session.CreateRosterEntry(t.Context(), apisdk.RosterRequest{
		Platform:      "instagram",
		Handle:        handle,
		URL:           "https://instagram.com/" + handle,
		FollowerCount: 42000,
	})
	require.NoError(t, err)
	return entry
}

// inviteToken issues an invite and returns the raw token from its URL.
func inviteToken(t *testing.T, session *apisdk.Session, entryID, email string) string {
	t.Helper()
	inv, err := session.CreateInvite(t.Context(), apisdk.CreateInviteRequest{
		InfluencerID: entryID,
		Email:        email,
	})
	require.NoError(t, err)

	u, err := url.Parse(inv.URL)
	require.NoError(t, err)
	require.Equal(t, "/onboarding", u.Path)
	return u.Query().Get("token")
}

// onboardCreator runs the full invite flow and returns the creator's session.
func onboardCreator(t *testing.T, client *apisdk.Client, manager *apisdk.Session, entryID, email string) *apisdk.Session {
	t.Helper()
	ctx := t.Context()

	token := inviteToken(t, manager, entryID, email)
	_, err := client.CompleteInvite(ctx, apisdk.CompleteRequest{
		Token:    token,
		Email:    email,
		Password: creatorPassword,
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, email, creatorPassword)
	require.NoError(t, err)
	return session
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *apisdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %v", err)
	require.Equal(t, code, apiErr.Code, "unexpected code: %v", err)
}
