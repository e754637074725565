// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/sommelier/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := "Application: Sommelier\n" + info.String()
	return overlayBoxStyle.Render(renderPage("ABOUT", body, hint(keys.back)))
}
