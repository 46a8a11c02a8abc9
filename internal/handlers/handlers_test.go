package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmetric.dev/internal/config"
	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/handlers"
	"jobmetric.dev/internal/models"
)

func testRegistry() *content.Registry {
	return &content.Registry{
		Features: []models.FeatureItem{
			{Title: "Custom Fields", Description: "Typed fields.", Icon: "🧩"},
		},
		Packages: []models.Package{
			{Name: "JobMetric", Description: "Umbrella.", Link: "/docs/jobmetric", Badge: "Stable"},
			{Name: "State Machine", Description: "Flows.", Link: "/docs/state-machine", Badge: "Stable"},
			{Name: "Metadata", Description: "Metadata.", Link: "/docs/metadata", Badge: "Stable"},
		},
		Projects: []models.Project{
			{ID: "panel", Title: "Admin Panel", Description: "An admin panel.", Link: "https://example.com"},
		},
		Stats: []models.Stat{
			{Number: "50+", Label: "Packages", Description: "Published packages."},
		},
		Team: []models.TeamMember{
			{Name: "Majid", Role: "Team Lead", Email: "majid@example.com", IsLead: true},
			{Name: "Sara", Role: "Developer", Email: "sara@example.com"},
		},
		Testimonials: []models.Testimonial{
			{Quote: "Great.", Author: "Amir", Role: "CTO"},
		},
		Posts: []models.BlogPost{
			{Title: "Post", Excerpt: "Short.", Link: "/blog/post", Date: "2026-01-01"},
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("does-not-exist.yml")
	require.NoError(t, err)
	cfg.Newsletter.ResetDelay = 50 * time.Millisecond

	router, err := handlers.SetupRoutes(cfg, testRegistry())
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestListPackagesKeepsOrder(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/packages")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var packages []models.Package
	require.NoError(t, json.Unmarshal(body, &packages))
	require.Len(t, packages, 3)
	assert.Equal(t, "JobMetric", packages[0].Name)
	assert.Equal(t, "State Machine", packages[1].Name)
	assert.Equal(t, "Metadata", packages[2].Name)
}

func TestGetPackage(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/packages/"+url.PathEscape("State Machine"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pkg models.Package
	require.NoError(t, json.Unmarshal(body, &pkg))
	assert.Equal(t, "/docs/state-machine", pkg.Link)

	resp, _ = get(t, srv, "/api/packages/Unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProjectNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := get(t, srv, "/api/projects/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGroupedTeam(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/team/grouped")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var groups models.TeamGroups
	require.NoError(t, json.Unmarshal(body, &groups))
	require.Len(t, groups.Leads, 1)
	require.Len(t, groups.Developers, 1)
	assert.Equal(t, "Majid", groups.Leads[0].Name)
	assert.Equal(t, "Sara", groups.Developers[0].Name)
}

func TestNewsletterSubscribeForm(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().PostForm(srv.URL+"/api/newsletter", url.Values{"email": {"test@example.com"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	// submitted flag is raised right after signup
	_, body := get(t, srv, "/api/newsletter/status")
	var status models.NewsletterStatus
	require.NoError(t, json.Unmarshal(body, &status))
	assert.True(t, status.Submitted)
	assert.Equal(t, "test@example.com", status.Pending)

	// and clears after the reset delay
	assert.Eventually(t, func() bool {
		_, body := get(t, srv, "/api/newsletter/status")
		var status models.NewsletterStatus
		if err := json.Unmarshal(body, &status); err != nil {
			return false
		}
		return !status.Submitted && status.Pending == ""
	}, time.Second, 10*time.Millisecond)
}

func TestNewsletterSubscribeJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/newsletter", "application/json",
		strings.NewReader(`{"email":"json@example.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestNewsletterRejectsInvalidEmail(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().PostForm(srv.URL+"/api/newsletter", url.Values{"email": {"not-an-email"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html := string(body)
	assert.Contains(t, html, "JobMetric")
	assert.Contains(t, html, `id="packages"`)
	assert.Contains(t, html, "State Machine")
}

func TestTeamPage(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/team")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Team Lead")
	assert.Contains(t, string(body), "Majid")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// the counter needs at least one finished request before it shows up
	_, _ = get(t, srv, "/api/health")

	resp, body := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "site_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/packages", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
