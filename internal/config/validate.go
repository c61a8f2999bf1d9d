package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims the keyword list and checks the few
// settings the run cannot proceed without.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	seen := map[string]bool{}
	var kws []string
	for _, k := range out.Input.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		key := strings.ToLower(k)
		if seen[key] {
			continue
		}
		seen[key] = true
		kws = append(kws, k)
	}
	out.Input.Keywords = kws

	if strings.TrimSpace(out.App.OutputDir) == "" {
		out.App.OutputDir = "charts"
	}

	if strings.TrimSpace(out.Input.File) == "" {
		res.addErr("input.file is required")
	}
	if len(out.Input.Keywords) == 0 {
		res.addErr("input.keywords must list at least one keyword")
	}

	if u := strings.TrimSpace(out.Rates.URL); u != "" {
		parsed, err := url.Parse(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			res.addErr("rates.url is not a valid URL: %q", u)
		}
	}
	if out.Rates.TimeoutSeconds < 0 {
		res.addErr("rates.timeout_seconds must be >= 0")
	} else if out.Rates.TimeoutSeconds > 120 {
		res.addWarn("rates.timeout_seconds is very high (%d); the run blocks on this fetch.", out.Rates.TimeoutSeconds)
	}

	if out.Charts.TopCities < 0 {
		res.addErr("charts.top_cities must be >= 0")
	}
	if out.Charts.TopSkills < 0 {
		res.addErr("charts.top_skills must be >= 0")
	}

	return out, res
}
