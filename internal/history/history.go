// Package history maintains bounded rolling histories of sensor readings,
// one ring buffer per (category, channel) pair. Channels are created the
// first time they appear in a snapshot and never deleted; a channel absent
// from a snapshot simply stops advancing until it reappears.
//
// The store is single-owner state: the tick loop is the only writer, and
// reads for rendering never interleave with an ingest. It is not safe for
// concurrent mutation.
package history

import (
	"sort"

	"github.com/rileyhilliard/senso/internal/sensors"
)

// DefaultCapacity is the default number of samples retained per channel.
const DefaultCapacity = 60

// DefaultFanMaxRPM is the assumed rated fan speed when a fan's max-RPM
// clause has never been observed.
const DefaultFanMaxRPM = 4000

// Store owns the per-category channel histories and the learned fan
// capacities.
type Store struct {
	capacity   int
	fanDefault int
	channels   map[sensors.Category]map[string]*ringBuffer
	fanMax     map[string]int
	current    map[sensors.Category][]string // sorted key set of the last ingested snapshot
}

// NewStore creates a store. Non-positive arguments fall back to the
// defaults (60 samples, 4000 RPM).
func NewStore(capacity, fanDefaultRPM int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if fanDefaultRPM <= 0 {
		fanDefaultRPM = DefaultFanMaxRPM
	}

	channels := make(map[sensors.Category]map[string]*ringBuffer)
	current := make(map[sensors.Category][]string)
	for _, cat := range sensors.Categories() {
		channels[cat] = make(map[string]*ringBuffer)
		current[cat] = nil
	}

	return &Store{
		capacity:   capacity,
		fanDefault: fanDefaultRPM,
		channels:   channels,
		fanMax:     make(map[string]int),
		current:    current,
	}
}

// Capacity returns the configured per-channel sample capacity.
func (s *Store) Capacity() int {
	return s.capacity
}

// Ingest reconciles the store with one parsed snapshot: new channels get
// fresh buffers, present channels get the latest value appended, absent
// channels are left untouched. Fan capacity hints overwrite learned values.
func (s *Store) Ingest(snap *sensors.Snapshot) {
	if snap == nil {
		return
	}

	for _, cat := range sensors.Categories() {
		readings := snap.Channels(cat)

		keys := make([]string, 0, len(readings))
		for key, value := range readings {
			keys = append(keys, key)
			buf, ok := s.channels[cat][key]
			if !ok {
				buf = newRingBuffer(s.capacity)
				s.channels[cat][key] = buf
			}
			buf.push(value)
		}
		sort.Strings(keys)
		s.current[cat] = keys
	}

	for fan, maxRPM := range snap.FanMaxRPM {
		s.fanMax[fan] = maxRPM
	}
}

// Keys returns the sorted key set of the most recent snapshot for the
// category. Render layers diff this against what they last drew to decide
// when to rebuild their visual elements.
func (s *Store) Keys(cat sensors.Category) []string {
	return s.current[cat]
}

// SeenKeys returns the sorted set of every channel ever observed in the
// category, including ones absent from the current snapshot.
func (s *Store) SeenKeys(cat sensors.Category) []string {
	keys := make([]string, 0, len(s.channels[cat]))
	for key := range s.channels[cat] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Series returns the full read view for a category: every seen channel
// mapped to exactly Capacity values, oldest first. Short histories are
// front-padded by repeating their oldest stored value, so new channels
// don't render a startup transient of zeros.
func (s *Store) Series(cat sensors.Category) map[string][]float64 {
	out := make(map[string][]float64, len(s.channels[cat]))
	for key, buf := range s.channels[cat] {
		out[key] = buf.padded()
	}
	return out
}

// Latest returns the most recent stored value for a channel.
func (s *Store) Latest(cat sensors.Category, key string) (float64, bool) {
	buf, ok := s.channels[cat][key]
	if !ok || buf.count == 0 {
		return 0, false
	}
	return buf.last(), true
}

// Stats returns the minimum, peak, and average over a channel's stored
// values (unpadded). ok is false when the channel has never been seen.
func (s *Store) Stats(cat sensors.Category, key string) (min, peak, avg float64, ok bool) {
	buf, found := s.channels[cat][key]
	if !found || buf.count == 0 {
		return 0, 0, 0, false
	}

	vals := buf.values()
	min, peak = vals[0], vals[0]
	sum := 0.0
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > peak {
			peak = v
		}
		sum += v
	}
	return min, peak, sum / float64(len(vals)), true
}

// FanCapacity returns the learned rated max RPM for a fan, or the default
// when the max-RPM clause has never been observed for it.
func (s *Store) FanCapacity(fan string) int {
	if maxRPM, ok := s.fanMax[fan]; ok {
		return maxRPM
	}
	return s.fanDefault
}

// PercentOf normalizes a raw RPM reading against the fan's capacity,
// clamped to 100.
func (s *Store) PercentOf(fan string, rpm float64) float64 {
	capacity := s.FanCapacity(fan)
	if capacity <= 0 {
		return 0
	}
	percent := rpm / float64(capacity) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, evicting the oldest when full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// values returns the stored values in chronological order (oldest first).
func (r *ringBuffer) values() []float64 {
	if r.count == 0 {
		return nil
	}

	result := make([]float64, r.count)

	// head points to the next write position, so the oldest stored value
	// is at head-count (mod size).
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}

// last returns the most recently pushed value. Callers check count first.
func (r *ringBuffer) last() float64 {
	return r.data[(r.head-1+r.size)%r.size]
}

// padded returns exactly size values, front-padding a short buffer by
// repeating its oldest value.
func (r *ringBuffer) padded() []float64 {
	vals := r.values()
	if len(vals) == r.size {
		return vals
	}

	result := make([]float64, r.size)
	pad := r.size - len(vals)
	for i := 0; i < pad; i++ {
		result[i] = vals[0]
	}
	copy(result[pad:], vals)
	return result
}
