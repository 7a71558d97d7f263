package trayico

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

var ErrInvalidVersion = errors.New("invalid version")

// Matches Windows style four part versions. The groups are:
// 1  the major.minor.patch part
// 2  the build number
// 3  anything after it, such as a prerelease
var fourPartRegexp = regexp.MustCompile(`^(\d+\.\d+\.\d+)\.(\d+)(.*)$`)

// Version is a file version as stored in a Windows resource.
type Version struct {
	Major, Minor, Patch, Build int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// ParseVersion parses versions like "1.2.3", "v1.2", "1.2.3-rc.1" or
// "1.2.3.4". Prerelease and build metadata are dropped.
func ParseVersion(s string) (Version, error) {
	var v Version

	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if m := fourPartRegexp.FindStringSubmatch(raw); m != nil {
		build, err := strconv.Atoi(m[2])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		v.Build = build
		raw = m[1] + m[3]
	}

	canonical := semver.Canonical("v" + raw)
	if canonical == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	core := strings.TrimPrefix(strings.TrimSuffix(canonical, semver.Prerelease(canonical)), "v")

	parts := strings.Split(core, ".")
	nums := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		*nums[i] = n
	}
	return v, nil
}

// GitVersion returns the version from the closest git tag, or "0.0.0.0" when
// there is none.
func GitVersion() string {
	output, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err == nil {
		if version := strings.TrimSpace(string(output)); version != "" {
			return strings.TrimPrefix(version, "v")
		}
	}

	output, err = exec.Command("git", "tag", "--points-at", "HEAD").Output()
	if err == nil {
		if tags := strings.Fields(string(output)); len(tags) > 0 {
			return strings.TrimPrefix(tags[0], "v")
		}
	}

	return "0.0.0.0"
}
