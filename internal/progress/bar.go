package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// barSpinner supplies the frames that advance on every redraw.
var barSpinner = spinner.MiniDot

// DefaultBarWidth is the number of cells in the bar itself.
const DefaultBarWidth = 30

var (
	filledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Bar draws a single-line progress indicator:
//
//	⠹ [12/40] █████████░░░░░░░░░░░░░░░░░░░░░ ETA: 00:00:16
type Bar struct {
	out   io.Writer
	width int
	tick  time.Duration

	mu    sync.Mutex
	snap  Snapshot
	frame int

	stop chan struct{}
	done chan struct{}
}

// BarOption configures a Bar.
type BarOption func(*Bar)

// WithWidth sets the number of cells in the bar.
func WithWidth(width int) BarOption {
	return func(b *Bar) {
		if width > 0 {
			b.width = width
		}
	}
}

// WithTickInterval sets the steady redraw interval. Zero disables steady redraws.
// The default is the spinner's own frame rate.
func WithTickInterval(d time.Duration) BarOption {
	return func(b *Bar) {
		b.tick = d
	}
}

// NewBar creates a Bar writing to out.
func NewBar(out io.Writer, opts ...BarOption) *Bar {
	b := &Bar{
		out:   out,
		width: DefaultBarWidth,
		tick:  barSpinner.FPS,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start draws the empty bar and begins steady redraws.
func (b *Bar) Start(total int) {
	b.mu.Lock()
	b.snap = Snapshot{Total: total}
	b.frame = 0
	b.drawLocked()
	b.mu.Unlock()

	if b.tick <= 0 {
		return
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.loop(b.stop, b.done)
}

func (b *Bar) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(b.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.mu.Lock()
			b.frame++
			b.drawLocked()
			b.mu.Unlock()
		}
	}
}

// Update redraws the bar with the new snapshot.
func (b *Bar) Update(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = s
	b.frame++
	b.drawLocked()
}

// Finish stops steady redraws and leaves the final state on its own line.
func (b *Bar) Finish(err error) {
	if b.stop != nil {
		close(b.stop)
		<-b.done
		b.stop = nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	line := RenderLine(b.snap, -1, b.width)
	if err != nil {
		line += " " + failedStyle.Render("failed")
	}
	fmt.Fprintf(b.out, "\r%s\n", line)
}

func (b *Bar) drawLocked() {
	fmt.Fprintf(b.out, "\r%s", RenderLine(b.snap, b.frame, b.width))
}

// RenderLine renders one line of the bar. A negative frame renders a blank spinner.
func RenderLine(s Snapshot, frame, width int) string {
	spin := " "
	if frame >= 0 {
		spin = barSpinner.Frames[frame%len(barSpinner.Frames)]
	}

	filled := int(s.Fraction() * float64(width))
	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s [%d/%d] %s ETA: %s",
		spinnerStyle.Render(spin), s.Completed, s.Total, bar, FormatDuration(s.ETA()))
}

// FormatDuration renders d as hh:mm:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
