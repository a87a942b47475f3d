// Package tui implements the inspector (C12): a bubbletea program that
// polls the data layer's read-locked observer methods and renders one of
// three screens (neuron refractory map, accumulated weights, distance
// weights), plus a text prompt that pushes a raw +/- bit sample.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/SynapticNetworks/ripplenet/types"
)

// Screen selects which of the three views is rendered.
type Screen int

const (
	ScreenNeuron Screen = iota
	ScreenAccumulated
	ScreenDistance
)

// Observer is the subset of datalayer.Layer the inspector reads; it
// touches nothing else, deliberately narrowed to the read-locked
// observer operations so the inspector can never mutate network state.
type Observer interface {
	LayerDimensions() types.LayerParams
	NeuronRefractTimeout(layerIndex, idx int) uint8
	NeuronAccumulatedWeights(layerIndex, idx int) []float32
	NeuronDistanceWeights(layerIndex, idx int) []float32
	NeuronFullCoordinates(idx int) types.NeuronCoord
}

// Pusher is the subset of datalayer.Layer the inspector's enter-key
// prompt writes to.
type Pusher interface {
	PushRawBits(bits []bool)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model driving the inspector.
type Model struct {
	observer Observer
	pusher   Pusher

	screen Screen
	layer  int // 1 or 2
	cursor int // neuron index within the current layer

	buffer strings.Builder
}

// New builds an inspector model starting on the neuron screen, layer 1,
// cursor at neuron 0.
func New(observer Observer, pusher Pusher) Model {
	return Model{observer: observer, pusher: pusher, screen: ScreenNeuron, layer: 1}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles the exact keybindings specified: n/a/d select screen,
// Tab toggles layer, arrow keys move the neuron cursor, +/1 and ./0/-
// append to the raw-bit buffer, Backspace removes a character, Enter
// pushes the buffer as a raw sample and clears it, Esc returns to the
// neuron screen, q quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.screen = ScreenNeuron
	case "a":
		m.screen = ScreenAccumulated
	case "d":
		m.screen = ScreenDistance
	case "tab":
		if m.layer == 1 {
			m.layer = 2
		} else {
			m.layer = 1
		}
	case "up", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "right":
		m.cursor++
	case "+", "1":
		m.buffer.WriteByte('+')
	case ".", "0", "-":
		m.buffer.WriteByte('-')
	case "backspace":
		trimLast(&m.buffer)
	case "enter":
		m.pushBuffer()
		m.buffer.Reset()
	case "esc":
		m.screen = ScreenNeuron
	}

	return m, nil
}

func (m *Model) pushBuffer() {
	s := m.buffer.String()
	bits := make([]bool, len(s))
	for i, c := range s {
		bits[i] = c == '+'
	}
	m.pusher.PushRawBits(bits)
}

// trimLast removes the final byte of b, if any.
func trimLast(b *strings.Builder) {
	s := b.String()
	if len(s) == 0 {
		return
	}
	b.Reset()
	b.WriteString(s[:len(s)-1])
}

// View renders the currently selected screen.
func (m Model) View() string {
	dims := m.observer.LayerDimensions()
	neuronCount := dims.NeuronCount()
	if m.cursor >= neuronCount {
		m.cursor = neuronCount - 1
	}

	var body string
	switch m.screen {
	case ScreenAccumulated:
		body = m.renderWeightRow("accumulated weights", m.observer.NeuronAccumulatedWeights(m.layer, m.cursor))
	case ScreenDistance:
		body = m.renderWeightRow("distance weights", m.observer.NeuronDistanceWeights(m.layer, m.cursor))
	default:
		body = m.renderNeuronMap(dims)
	}

	coord := m.observer.NeuronFullCoordinates(m.cursor)
	header := headerStyle.Render(fmt.Sprintf("layer %d  neuron %d  field(%d,%d) intra(%d,%d)",
		m.layer, m.cursor, coord.Field.X, coord.Field.Y, coord.IntraField.X, coord.IntraField.Y))

	prompt := promptStyle.Render("sample: " + m.buffer.String())
	footer := footerStyle.Render("n/a/d screen  tab layer  arrows cursor  +/- bits  enter push  esc reset  q quit")

	return strings.Join([]string{header, body, prompt, footer}, "\n")
}

func (m Model) renderNeuronMap(dims types.LayerParams) string {
	var b strings.Builder
	n := dims.NeuronCount()
	rowWidth := dims.FieldWidth * dims.LayerWidth
	for i := 0; i < n; i++ {
		timeout := m.observer.NeuronRefractTimeout(m.layer, i)
		cell := fmt.Sprintf("%3d", timeout)
		if i == m.cursor {
			cell = cursorStyle.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%rowWidth == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderWeightRow(label string, row []float32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s row for neuron %d:\n", label, m.cursor)
	for i, v := range row {
		fmt.Fprintf(&b, "%6.3f ", v)
		if (i+1)%8 == 0 {
			b.WriteByte('\n')
		}
	}
	if len(row) > 0 {
		mean, stddev := stat.MeanStdDev(float64Row(row), nil)
		fmt.Fprintf(&b, "\nmean %.3f  stddev %.3f  max %.3f\n", mean, stddev, floats.Max(float64Row(row)))
	}
	return b.String()
}

// float64Row widens a weight row to float64, the precision gonum/stat
// operates in.
func float64Row(row []float32) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = float64(v)
	}
	return out
}
