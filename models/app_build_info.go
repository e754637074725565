// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags into the
// sommelier binaries. Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

// Lines returns the metadata as "Label: value" lines in a fixed order.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", orNotAvailable(a.Version)),
		fmt.Sprintf("Build date: %s", orNotAvailable(a.Date)),
		fmt.Sprintf("Build commit: %s", orNotAvailable(a.Commit)),
	}
}

func (a AppBuildInfo) String() string {
	return strings.Join(a.Lines(), "\n")
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
