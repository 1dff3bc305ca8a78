package tui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
)

// releaseEndpoint is the GitHub latest-release URL. Overridden in tests.
var releaseEndpoint = "https://api.github.com/repos/redaelm/jobdeck/releases/latest"

// versionCheckMsg carries the result of the background release check.
type versionCheckMsg struct {
	latestVersion string
	hasUpdate     bool
}

// releaseVersion is a parsed semver triple.
type releaseVersion [3]int

// parseRelease reads "v1.2.3" or "1.2" into a triple; missing parts are zero.
func parseRelease(tag string) releaseVersion {
	var v releaseVersion
	parts := strings.SplitN(strings.TrimPrefix(tag, "v"), ".", 3)
	for i := range v {
		if i < len(parts) {
			v[i], _ = strconv.Atoi(parts[i]) //nolint:errcheck
		}
	}
	return v
}

// newerThan compares triples lexicographically.
func (v releaseVersion) newerThan(other releaseVersion) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] > other[i]
		}
	}
	return false
}

// checkVersion asks GitHub for the latest release in the background. Release
// builds only: "dev" and empty versions skip the call entirely, and every
// failure mode degrades to "no update" rather than surfacing an error.
func checkVersion(current string) tea.Cmd {
	if current == "" || current == "dev" {
		return nil
	}
	return func() tea.Msg {
		tag, ok := fetchLatestTag()
		if !ok {
			return versionCheckMsg{}
		}
		if parseRelease(tag).newerThan(parseRelease(current)) {
			return versionCheckMsg{latestVersion: "v" + strings.TrimPrefix(tag, "v"), hasUpdate: true}
		}
		return versionCheckMsg{}
	}
}

// fetchLatestTag returns the tag name of the newest published release.
func fetchLatestTag() (string, bool) {
	hc := &http.Client{Timeout: 5 * time.Second}
	resp, err := hc.Get(releaseEndpoint)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", false
	}
	if release.TagName == "" {
		return "", false
	}
	return release.TagName, true
}
