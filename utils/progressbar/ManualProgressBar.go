// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/OverKoder/Jormungandr/utils/intutils"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	status          string
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar width characters
// wide that reaches 100% after max calls to Increment
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		out:         out,
		width:       width,
		maxProgress: intutils.Max(max, 1),
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	p.currentProgress = intutils.Min(p.currentProgress+1, p.maxProgress)
}

// SetStatus sets the text displayed after the bar
func (p *ManualProgressBar) SetStatus(format string, args ...interface{}) {
	p.status = fmt.Sprintf(format, args...)
}

// Progress returns the fraction of iterations completed
func (p *ManualProgressBar) Progress() float64 {
	return float64(p.currentProgress) / float64(p.maxProgress)
}

// String returns the progress bar as it would be displayed
func (p *ManualProgressBar) String() string {
	filled := intutils.Clip(int(p.Progress()*float64(p.width)), 0, p.width)

	p.bar.Reset()
	p.bar.WriteString("|")
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&p.bar, "| [%.2f%% | elapsed: %v]", p.Progress()*100,
		time.Since(p.startTime).Truncate(time.Second))
	if p.status != "" {
		fmt.Fprintf(&p.bar, " %v", p.status)
	}
	return p.bar.String()
}

// Display redraws the progress bar on the current line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.String())
}

// Close moves the output past the progress bar
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
