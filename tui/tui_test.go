package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SynapticNetworks/ripplenet/types"
)

type fakeObserver struct {
	dims types.LayerParams
}

func (f *fakeObserver) LayerDimensions() types.LayerParams { return f.dims }

func (f *fakeObserver) NeuronRefractTimeout(layerIndex, idx int) uint8 {
	return uint8(idx % 3)
}

func (f *fakeObserver) NeuronAccumulatedWeights(layerIndex, idx int) []float32 {
	return []float32{0.1, 0.2, 0.3}
}

func (f *fakeObserver) NeuronDistanceWeights(layerIndex, idx int) []float32 {
	return []float32{1, 0.5, 0.25}
}

func (f *fakeObserver) NeuronFullCoordinates(idx int) types.NeuronCoord {
	return types.NeuronCoordFromIndex(f.dims, idx)
}

type fakePusher struct {
	pushed []bool
}

func (f *fakePusher) PushRawBits(bits []bool) {
	f.pushed = bits
}

func newTestModel() (Model, *fakeObserver, *fakePusher) {
	dims := types.LayerParams{FieldWidth: 2, FieldHeight: 2, LayerWidth: 2, LayerHeight: 1}
	obs := &fakeObserver{dims: dims}
	pusher := &fakePusher{}
	return New(obs, pusher), obs, pusher
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestScreenSelectionKeys(t *testing.T) {
	m, _, _ := newTestModel()

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	if m.screen != ScreenAccumulated {
		t.Errorf("screen = %v, want ScreenAccumulated", m.screen)
	}

	updated, _ = m.Update(key("d"))
	m = updated.(Model)
	if m.screen != ScreenDistance {
		t.Errorf("screen = %v, want ScreenDistance", m.screen)
	}

	updated, _ = m.Update(key("n"))
	m = updated.(Model)
	if m.screen != ScreenNeuron {
		t.Errorf("screen = %v, want ScreenNeuron", m.screen)
	}
}

func TestTabTogglesLayer(t *testing.T) {
	m, _, _ := newTestModel()
	if m.layer != 1 {
		t.Fatalf("initial layer = %d, want 1", m.layer)
	}

	updated, _ := m.Update(key("tab"))
	m = updated.(Model)
	if m.layer != 2 {
		t.Errorf("layer = %d, want 2 after one tab", m.layer)
	}

	updated, _ = m.Update(key("tab"))
	m = updated.(Model)
	if m.layer != 1 {
		t.Errorf("layer = %d, want 1 after second tab", m.layer)
	}
}

func TestCursorMovement(t *testing.T) {
	m, _, _ := newTestModel()

	updated, _ := m.Update(key("down"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(key("up"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// Cursor never goes negative.
	updated, _ = m.Update(key("up"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (floored)", m.cursor)
	}
}

func TestBufferAppendAndBackspace(t *testing.T) {
	m, _, _ := newTestModel()

	for _, k := range []string{"+", "-", "1", "0"} {
		updated, _ := m.Update(key(k))
		m = updated.(Model)
	}
	if got := m.buffer.String(); got != "+-+-" {
		t.Errorf("buffer = %q, want +-+-", got)
	}

	updated, _ := m.Update(key("backspace"))
	m = updated.(Model)
	if got := m.buffer.String(); got != "+-+" {
		t.Errorf("buffer = %q, want +-+", got)
	}
}

func TestEnterPushesBufferAndClearsIt(t *testing.T) {
	m, _, pusher := newTestModel()

	for _, k := range []string{"+", "-", "+"} {
		updated, _ := m.Update(key(k))
		m = updated.(Model)
	}

	updated, _ := m.Update(key("enter"))
	m = updated.(Model)

	if len(pusher.pushed) != 3 || !pusher.pushed[0] || pusher.pushed[1] || !pusher.pushed[2] {
		t.Errorf("pushed = %v, want [true false true]", pusher.pushed)
	}
	if m.buffer.Len() != 0 {
		t.Errorf("buffer not cleared after enter, got %q", m.buffer.String())
	}
}

func TestEscReturnsToNeuronScreen(t *testing.T) {
	m, _, _ := newTestModel()

	updated, _ := m.Update(key("d"))
	m = updated.(Model)

	updated, _ = m.Update(key("esc"))
	m = updated.(Model)

	if m.screen != ScreenNeuron {
		t.Errorf("screen = %v, want ScreenNeuron after esc", m.screen)
	}
}

func TestQQuits(t *testing.T) {
	m, _, _ := newTestModel()

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a tea.Quit command")
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m, _, _ := newTestModel()

	for _, screen := range []Screen{ScreenNeuron, ScreenAccumulated, ScreenDistance} {
		m.screen = screen
		out := m.View()
		if !strings.Contains(out, "layer 1") {
			t.Errorf("View for screen %v missing layer header: %q", screen, out)
		}
	}
}
