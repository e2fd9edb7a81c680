package utils

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

var (
	versionMu sync.RWMutex
	current   = Version{Tag: "0.0.1", Str: "0.0.1-dev"}
)

// SetVersion records the build-time version info, normally injected via
// -ldflags through main.
func SetVersion(version, branch, commit, buildDate string) {
	if version == "" {
		version = "0.0.1"
	}
	if branch == "" {
		branch = "main"
	}
	if commit == "" {
		commit = "dev"
	}
	if buildDate == "" {
		buildDate = "unknown"
	}

	commitShort := commit
	if len(commit) > 7 {
		commitShort = commit[:7]
	}

	parts := strings.SplitN(version, ".", 3)
	major, minor, patch := parts[0], "0", "0"
	if len(parts) > 1 {
		minor = parts[1]
	}
	if len(parts) > 2 {
		patch = parts[2]
	}

	obj := VersionObject{
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Branch:    branch,
		Commit:    commitShort,
		BuildDate: buildDate,
		Arch:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	versionMu.Lock()
	defer versionMu.Unlock()
	current = Version{
		Tag: version,
		Str: fmt.Sprintf("%s-%s+%s.%s.%s", version, branch, commitShort, buildDate, obj.Arch),
		Obj: obj,
	}
}

// GetVersion returns the version info for the service.
func GetVersion() Version {
	versionMu.RLock()
	defer versionMu.RUnlock()
	return current
}
