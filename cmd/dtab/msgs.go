package main

import (
	_ "embed"
	"strings"
)

var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	msgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
