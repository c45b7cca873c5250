// Package version holds build information for argvparse.
// Values are injected at build time via -ldflags and validated as semantic versions.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// Info represents comprehensive version information
type Info struct {
	Version     string          `json:"version" yaml:"version"`
	GitCommit   string          `json:"gitCommit" yaml:"gitCommit"`
	BuildDate   string          `json:"buildDate" yaml:"buildDate"`
	GoVersion   string          `json:"goVersion" yaml:"goVersion"`
	Platform    string          `json:"platform" yaml:"platform"`
	Prerelease  bool            `json:"prerelease" yaml:"prerelease"`
	Development bool            `json:"development" yaml:"development"`
	SemVer      *semver.Version `json:"-" yaml:"-"`
}

// GetInfo returns the build information, failing if Version is not semver.
func GetInfo() (*Info, error) {
	sv, err := parse()
	if err != nil {
		return nil, err
	}

	return &Info{
		Version:     Version,
		GitCommit:   GitCommit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Prerelease:  IsPrerelease(),
		Development: IsDevelopment(),
		SemVer:      sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("argvparse v%s (invalid version)", Version)
	}

	parts := []string{fmt.Sprintf("argvparse v%s", info.Version)}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns one field per line
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("argvparse v%s (error: %v)", Version, err)
	}

	lines := []string{
		fmt.Sprintf("argvparse v%s", info.Version),
		fmt.Sprintf("Git Commit: %s", info.GitCommit),
		fmt.Sprintf("Build Date: %s", info.BuildDate),
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, fmt.Sprintf("Build Metadata: %s", meta))
	}
	lines = append(lines,
		fmt.Sprintf("Go Version: %s", info.GoVersion),
		fmt.Sprintf("Platform: %s", info.Platform),
	)
	if info.Prerelease {
		lines = append(lines, "Prerelease: yes")
	}
	if info.Development {
		lines = append(lines, "Development build")
	}

	return strings.Join(lines, "\n")
}

// ValidateVersion validates that the current version is a valid semantic version
func ValidateVersion() error {
	_, err := parse()
	return err
}

func parse() (*semver.Version, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return sv, nil
}

// IsPrerelease returns true if the current version is a prerelease
func IsPrerelease() bool {
	sv, err := parse()
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}

// IsDevelopment returns true if this appears to be a development build
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}

// SetBuildInfo sets build information

func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}

// ApplyVCSInfo fills GitCommit and BuildDate from the VCS stamp the Go
// toolchain embeds, when -ldflags did not set them.
func ApplyVCSInfo(bi *debug.BuildInfo) {
	if bi == nil {
		return
	}
	commit, date := GitCommit, BuildDate
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "unknown" && setting.Value != "" {
				commit = setting.Value
			}
		case "vcs.time":
			if date == "unknown" && setting.Value != "" {
				date = setting.Value
			}
		}
	}
	SetBuildInfo(Version, commit, date)
}
