package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	gover "github.com/hashicorp/go-version"

	"github.com/urbanpiper/squadview/config"
)

const (
	CliVersion    = "0.2.1"
	CheckInterval = 10 * time.Minute
	repoOwner     = "urbanpiper"
	repoName      = "squadview"
)

// GitRef represents a git reference from GitHub API
type GitRef struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}

// CheckLatestVersionOfCli checks if there's a newer version available.
// The check is rate-limited through the config file so background calls on
// every launch don't hammer the API.
// Returns: current version, latest version, update available, error
func CheckLatestVersionOfCli(debug bool) (string, string, bool, error) {
	configManager, err := config.NewManager()
	if err != nil {
		if debug {
			fmt.Printf("Debug: failed to load config: %v\n", err)
		}
		return CliVersion, "", false, err
	}

	// Skip the check if we checked recently
	lastCheckStr := configManager.GetLastUpdateCheckTime()
	if lastCheckStr != "" {
		lastCheck, err := time.Parse(time.RFC3339, lastCheckStr)
		if err == nil && time.Since(lastCheck) < CheckInterval {
			if debug {
				fmt.Printf("Debug: skipping version check (last checked %v ago)\n", time.Since(lastCheck))
			}
			return CliVersion, "", false, nil
		}
	}

	now := time.Now().UTC()
	if err := configManager.SetLastUpdateCheckTime(now.Format(time.RFC3339)); err != nil {
		if debug {
			fmt.Printf("Debug: failed to save last check time: %v\n", err)
		}
	}

	latestVersion, err := fetchLatestVersion(context.Background())
	if err != nil {
		if debug {
			fmt.Printf("Debug: failed to fetch latest version: %v\n", err)
		}
		return CliVersion, "", false, err
	}

	current, err := gover.NewVersion(CliVersion)
	if err != nil {
		if debug {
			fmt.Printf("Debug: failed to parse current version: %v\n", err)
		}
		return CliVersion, "", false, err
	}

	updateAvailable := latestVersion.GreaterThan(current)
	return CliVersion, latestVersion.String(), updateAvailable, nil
}

// fetchLatestVersion fetches the latest version from GitHub API
func fetchLatestVersion(ctx context.Context) (*gover.Version, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/git/refs/tags", repoOwner, repoName)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var refs []GitRef
	if err := json.Unmarshal(body, &refs); err != nil {
		return nil, err
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("no tags found")
	}

	var versions []*gover.Version
	for _, ref := range refs {
		// "refs/tags/v0.1.0" -> "0.1.0"
		if len(ref.Ref) <= 10 {
			continue
		}
		tagName := ref.Ref[10:]
		if len(tagName) > 0 && tagName[0] == 'v' {
			tagName = tagName[1:]
		}

		v, err := gover.NewVersion(tagName)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	if len(versions) == 0 {
		return nil, fmt.Errorf("no valid versions found")
	}

	sort.Sort(sort.Reverse(gover.Collection(versions)))
	return versions[0], nil
}
