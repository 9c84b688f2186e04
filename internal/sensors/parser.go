// Package sensors converts the human-readable output of the lm-sensors
// `sensors` utility into typed snapshots of channel readings, grouped by
// category (CPU temperature, fan speed, storage temperature, other).
//
// Parsing is a single left-to-right scan over lines with one piece of
// carried context: the current adapter name, updated on adapter header
// lines. Each remaining line is tried against an ordered list of pure
// line matchers; the first match wins and anything unmatched is ignored.
package sensors

import (
	"regexp"
	"strconv"
	"strings"
)

// adapterToken marks an adapter/controller header line.
const adapterToken = "Adapter:"

// StorageChannel is the fixed channel key for NVMe composite temperatures.
// It is deliberately not adapter-qualified: with multiple NVMe adapters the
// last one wins within a snapshot. Preserved as observed behavior.
const StorageChannel = "NVMe"

// storageMarker gates composite-temperature lines on the adapter context.
const storageMarker = "nvme"

var (
	coreRe      = regexp.MustCompile(`(Core \d+):\s+([+-])(\d+(?:\.\d+)?)°C`)
	packageRe   = regexp.MustCompile(`(Package id \d+):\s+([+-])(\d+(?:\.\d+)?)°C`)
	fanRe       = regexp.MustCompile(`(fan\d+):\s+(\d+) RPM(?:\s+\(min\s*=\s*\d+ RPM,\s*max\s*=\s*(\d+) RPM\))?`)
	compositeRe = regexp.MustCompile(`Composite:\s+([+-])(\d+(?:\.\d+)?)°C`)
	tempRe      = regexp.MustCompile(`(temp\d+):\s+([+-])(\d+(?:\.\d+)?)°C`)
)

// match is the result of one line matcher: a single sample, plus an
// optional fan capacity hint when the line carried a max-RPM clause.
type match struct {
	category Category
	key      string
	value    float64
	maxRPM   int // 0 when the line had no max-RPM clause
}

// lineMatcher inspects one trimmed, non-empty line under the current
// adapter context. Matchers are pure: no state beyond their inputs.
type lineMatcher func(line, adapter string) (match, bool)

// matchers are tried in priority order; the first match wins per line.
var matchers = []lineMatcher{
	matchCoreTemp,
	matchPackageTemp,
	matchFanSpeed,
	matchCompositeTemp,
	matchGenericTemp,
}

// Parse converts one raw text capture into a snapshot. It never fails:
// unrecognized lines are skipped, and a line that matches a shape but has
// an unparseable numeric payload is dropped without affecting the rest.
func Parse(raw string) *Snapshot {
	snap := NewSnapshot()
	adapter := "unknown"

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Adapter header: text before the first colon becomes the new
		// adapter context. Produces no sample.
		if strings.Contains(line, adapterToken) {
			if idx := strings.Index(line, ":"); idx >= 0 {
				adapter = strings.TrimSpace(line[:idx])
			}
			continue
		}

		for _, m := range matchers {
			res, ok := m(line, adapter)
			if !ok {
				continue
			}
			snap.Channels(res.category)[res.key] = res.value
			if res.maxRPM > 0 {
				snap.FanMaxRPM[res.key] = res.maxRPM
			}
			break
		}
	}

	return snap
}

// matchCoreTemp matches per-core CPU temperature lines like
// "Core 0:  +45.0°C  (high = +80.0°C, crit = +100.0°C)".
func matchCoreTemp(line, _ string) (match, bool) {
	m := coreRe.FindStringSubmatch(line)
	if m == nil {
		return match{}, false
	}
	// Sign is consumed but not applied; temperatures are magnitudes here.
	temp, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return match{}, false
	}
	return match{category: CPUTemperature, key: m[1], value: temp}, true
}

// matchPackageTemp matches CPU package temperature lines like
// "Package id 0:  +47.0°C".
func matchPackageTemp(line, _ string) (match, bool) {
	m := packageRe.FindStringSubmatch(line)
	if m == nil {
		return match{}, false
	}
	temp, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return match{}, false
	}
	return match{category: CPUTemperature, key: m[1], value: temp}, true
}

// matchFanSpeed matches fan tachometer lines like
// "fan1:  2125 RPM  (min =    0 RPM, max = 3700 RPM)".
// The min/max clause is optional; when present, the max value is recorded
// as the fan's rated capacity.
func matchFanSpeed(line, _ string) (match, bool) {
	m := fanRe.FindStringSubmatch(line)
	if m == nil {
		return match{}, false
	}
	rpm, err := strconv.Atoi(m[2])
	if err != nil {
		return match{}, false
	}
	res := match{category: FanSpeed, key: m[1], value: float64(rpm)}
	if m[3] != "" {
		maxRPM, err := strconv.Atoi(m[3])
		if err == nil {
			res.maxRPM = maxRPM
		}
	}
	return res, true
}

// matchCompositeTemp matches NVMe composite temperature lines like
// "Composite:  +38.9°C", but only while the adapter context names a
// storage controller.
func matchCompositeTemp(line, adapter string) (match, bool) {
	if !strings.Contains(strings.ToLower(adapter), storageMarker) {
		return match{}, false
	}
	m := compositeRe.FindStringSubmatch(line)
	if m == nil {
		return match{}, false
	}
	temp, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return match{}, false
	}
	return match{category: StorageTemperature, key: StorageChannel, value: temp}, true
}

// matchGenericTemp matches generic temperature channels like
// "temp1:  +34.0°C". Keys are adapter-qualified so identically numbered
// channels on different adapters stay distinct.
func matchGenericTemp(line, adapter string) (match, bool) {
	m := tempRe.FindStringSubmatch(line)
	if m == nil {
		return match{}, false
	}
	temp, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return match{}, false
	}
	return match{category: OtherTemperature, key: adapter + "_" + m[1], value: temp}, true
}
