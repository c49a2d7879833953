// Package prompt collects the optional SEO detail bag interactively. Every
// question may be skipped with an empty answer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/castkit/shownotes/internal/episode"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Prompter asks the fixed SEO questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given streams, typically stdin/stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskSEO runs the four fixed questions and returns the answers. All answers
// are optional; an input error ends the session with whatever was collected
// so far plus the error.
func (p *Prompter) AskSEO() (episode.SEODetails, error) {
	var details episode.SEODetails

	fmt.Fprintln(p.out, hintStyle.Render("SEO details (press Enter to skip any question)"))

	questions := []struct {
		text string
		dst  *string
	}{
		{"Main keyword for this episode?", &details.MainKeyword},
		{"What is the guest's expertise?", &details.GuestExpertise},
		{"Who is the target audience?", &details.TargetAudience},
		{"Key takeaways?", &details.KeyTakeaways},
	}

	for _, q := range questions {
		fmt.Fprintf(p.out, "%s ", questionStyle.Render(q.text))
		answer, err := p.in.ReadString('\n')
		*q.dst = strings.TrimSpace(answer)
		if err != nil {
			if err == io.EOF {
				return details, nil
			}
			return details, fmt.Errorf("failed to read answer: %w", err)
		}
	}
	return details, nil
}
