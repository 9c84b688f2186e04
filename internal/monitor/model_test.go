package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/sensors"
)

// fakeSource returns canned output, or an error when failing is set.
type fakeSource struct {
	output  string
	failing bool
	calls   int
}

func (f *fakeSource) Capture(_ context.Context) (string, error) {
	f.calls++
	if f.failing {
		return "", errors.New(errors.ErrSensors, "Failed to run sensors command", "Check that lm-sensors is installed")
	}
	return f.output, nil
}

func (f *fakeSource) Describe() string {
	return "fake"
}

const fakeOutput = `coretemp-isa-0000 Adapter: ISA adapter
Core 0:        +45.0°C
Core 1:        +43.0°C

nct6775-isa-0290 Adapter: ISA adapter
fan1:        2125 RPM  (min =    0 RPM, max = 3700 RPM)
`

func newTestModel(src sensors.Source) Model {
	return NewModel(src, history.NewStore(10, 0), time.Second, time.Second)
}

func TestNewModel(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	assert.Equal(t, time.Second, m.interval)
	assert.False(t, m.Paused())
	assert.Empty(t, m.Notice())

	// Color maps initialized for every category
	for _, cat := range sensors.Categories() {
		assert.NotNil(t, m.channelColors[cat])
	}
}

func TestNewModelDefaults(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := NewModel(src, history.NewStore(0, 0), 0, 0)

	assert.Equal(t, time.Second, m.interval)
	assert.Equal(t, 2*time.Second, m.timeout)
}

func TestCaptureCmdSuccess(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	msg := m.captureCmd()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Equal(t, 45.0, snap.snap.CPUTemps["Core 0"])
	assert.Equal(t, 1, src.calls)
}

func TestCaptureCmdFailure(t *testing.T) {
	src := &fakeSource{failing: true}
	m := newTestModel(src)

	msg := m.captureCmd()()
	errMsg, ok := msg.(captureErrMsg)
	require.True(t, ok)
	assert.True(t, errors.IsCode(errMsg.err, errors.ErrSensors))
}

func TestUpdateSnapshotIngests(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	snap := sensors.Parse(fakeOutput)
	updated, _ := m.Update(snapshotMsg{snap: snap, time: time.Now()})
	m = updated.(Model)

	latest, ok := m.store.Latest(sensors.CPUTemperature, "Core 0")
	require.True(t, ok)
	assert.Equal(t, 45.0, latest)
	assert.Equal(t, 3700, m.store.FanCapacity("fan1"))
	assert.Empty(t, m.Notice())
}

func TestUpdateCaptureErrorKeepsHistory(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	snap := sensors.Parse(fakeOutput)
	updated, _ := m.Update(snapshotMsg{snap: snap, time: time.Now()})
	m = updated.(Model)

	before := m.store.Series(sensors.CPUTemperature)

	failure := errors.New(errors.ErrSensors, "command exited 1", "")
	updated, _ = m.Update(captureErrMsg{err: failure})
	m = updated.(Model)

	// The failure surfaces as a notice; histories are untouched.
	assert.Contains(t, m.Notice(), "command exited 1")
	assert.Equal(t, before, m.store.Series(sensors.CPUTemperature))

	// The next good snapshot clears the notice.
	updated, _ = m.Update(snapshotMsg{snap: snap, time: time.Now()})
	m = updated.(Model)
	assert.Empty(t, m.Notice())
}

func TestUpdateTickWhilePaused(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)
	m.paused = true

	// A paused tick reschedules itself without capturing.
	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 0, src.calls)
}

func TestUpdateTickSkipsCaptureWhileInFlight(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := NewModel(src, history.NewStore(10, 0), 10*time.Millisecond, time.Second)

	// The capture issued by Init is still outstanding, so a tick only
	// reschedules itself instead of starting an overlapping capture.
	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.IsType(t, tickMsg{}, cmd())
	assert.Equal(t, 0, src.calls)

	// Once the outcome lands, the next tick captures again.
	updated, _ = m.Update(snapshotMsg{snap: sensors.Parse(fakeOutput), time: time.Now()})
	m = updated.(Model)
	_, cmd = m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.BatchMsg{}, cmd())
}

func TestUpdateCaptureErrorAllowsNextCapture(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := NewModel(src, history.NewStore(10, 0), 10*time.Millisecond, time.Second)

	failure := errors.New(errors.ErrSensors, "command exited 1", "")
	updated, _ := m.Update(captureErrMsg{err: failure})
	m = updated.(Model)

	_, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.BatchMsg{}, cmd())
}

func TestReconcileColorsStableAcrossIngests(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	snap := sensors.Parse(fakeOutput)
	updated, _ := m.Update(snapshotMsg{snap: snap, time: time.Now()})
	m = updated.(Model)

	core0 := m.colorFor(sensors.CPUTemperature, "Core 0")
	core1 := m.colorFor(sensors.CPUTemperature, "Core 1")
	assert.NotEqual(t, core0, core1)

	// Same key set: assignments survive another ingest.
	updated, _ = m.Update(snapshotMsg{snap: snap, time: time.Now()})
	m = updated.(Model)
	assert.Equal(t, core0, m.colorFor(sensors.CPUTemperature, "Core 0"))

	// A new channel changes the key set and triggers reassignment.
	grown := sensors.Parse(fakeOutput)
	grown.CPUTemps["Core 2"] = 50
	updated, _ = m.Update(snapshotMsg{snap: grown, time: time.Now()})
	m = updated.(Model)
	assert.Equal(t, ChannelColor(2), m.colorFor(sensors.CPUTemperature, "Core 2"))
}

func TestUpdateWindowSize(t *testing.T) {
	src := &fakeSource{output: fakeOutput}
	m := newTestModel(src)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.True(t, m.viewportReady)
	assert.Equal(t, 120, m.viewport.Width)
}

func TestSecondsSinceUpdate(t *testing.T) {
	m := Model{}
	assert.Equal(t, 0, m.SecondsSinceUpdate())

	m.lastUpdate = time.Now().Add(-5 * time.Second)
	assert.GreaterOrEqual(t, m.SecondsSinceUpdate(), 5)
}

func TestSameKeys(t *testing.T) {
	assert.True(t, sameKeys(nil, nil))
	assert.True(t, sameKeys([]string{"a"}, []string{"a"}))
	assert.False(t, sameKeys([]string{"a"}, []string{"b"}))
	assert.False(t, sameKeys([]string{"a"}, []string{"a", "b"}))
}
