// Package survey runs sequential terminal Q&A sessions: one question at a
// time, Enter accepts the default, invalid answers re-prompt inline.
package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind selects how an answer is parsed.
type Kind int

const (
	Confirm Kind = iota // yes/no
	Text                // free text
	Int                 // whole number
	Choice              // one of Choices
)

// Question describes a single prompt.
type Question struct {
	Key     string
	Prompt  string
	Kind    Kind
	Default string   // used verbatim when the answer is empty
	Choices []string // Choice kind only

	// Normalize rewrites the raw answer before parsing (e.g. lowercasing).
	Normalize func(string) string

	// Validate rejects parsed answers with a message shown to the user.
	Validate func(string) error
}

// ConfirmQ builds a yes/no question.
func ConfirmQ(key, prompt string, def bool) Question {
	d := "n"
	if def {
		d = "y"
	}
	return Question{Key: key, Prompt: prompt, Kind: Confirm, Default: d}
}

// TextQ builds a free-text question.
func TextQ(key, prompt, def string) Question {
	return Question{Key: key, Prompt: prompt, Kind: Text, Default: def}
}

// IntQ builds a whole-number question.
func IntQ(key, prompt string, def int) Question {
	return Question{Key: key, Prompt: prompt, Kind: Int, Default: strconv.Itoa(def)}
}

// ChoiceQ builds a fixed-choice question.
func ChoiceQ(key, prompt string, choices []string, def string) Question {
	return Question{Key: key, Prompt: prompt, Kind: Choice, Choices: choices, Default: def}
}

// Answers holds the collected answers keyed by Question.Key. Confirm
// answers are stored as "y"/"n".
type Answers map[string]string

// Bool reports a confirm answer.
func (a Answers) Bool(key string) bool { return a[key] == "y" }

// Int returns an int answer, or fallback when absent or malformed.
func (a Answers) Int(key string, fallback int) int {
	if n, err := strconv.Atoi(a[key]); err == nil {
		return n
	}
	return fallback
}

// String returns a text answer.
func (a Answers) String(key string) string { return a[key] }

// ErrCancelled is returned when the user aborts the survey.
var ErrCancelled = fmt.Errorf("survey cancelled")

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the bubbletea model driving one survey. Exported so tests can
// feed it key messages directly.
type Model struct {
	questions []Question
	idx       int
	input     textinput.Model
	answers   []string
	errText   string
	done      bool
	cancelled bool
}

// NewModel builds a survey model over questions.
func NewModel(questions []Question) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Focus()
	return Model{questions: questions, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.questions) == 0 {
				m.done = true
				return m, tea.Quit
			}
			q := m.questions[m.idx]
			answer, err := resolve(q, m.input.Value())
			if err != nil {
				m.errText = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.answers = append(m.answers, answer)
			m.errText = ""
			m.input.SetValue("")
			if m.idx < len(m.questions)-1 {
				m.idx++
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done || m.cancelled || len(m.questions) == 0 {
		return ""
	}
	q := m.questions[m.idx]
	var b strings.Builder
	if m.errText != "" {
		b.WriteString(errStyle.Render(m.errText) + "\n")
	}
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString(" " + hintStyle.Render(defaultHint(q)))
	b.WriteString("\n" + m.input.View() + "\n")
	return b.String()
}

// Done reports whether every question was answered.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the user aborted the survey.
func (m Model) Cancelled() bool { return m.cancelled }

// Answers returns the collected answers keyed by question key.
func (m Model) Answers() Answers {
	out := make(Answers, len(m.answers))
	for i, a := range m.answers {
		out[m.questions[i].Key] = a
	}
	return out
}

// defaultHint renders the inline hint for a question.
func defaultHint(q Question) string {
	switch q.Kind {
	case Confirm:
		if q.Default == "y" {
			return "[Y/n]"
		}
		return "[y/N]"
	case Choice:
		return "(" + strings.Join(q.Choices, "/") + ") [" + q.Default + "]"
	default:
		if q.Default != "" {
			return "[" + q.Default + "]"
		}
		return ""
	}
}

// resolve applies the default, normalization, parsing and validation rules
// to a raw answer.
func resolve(q Question, raw string) (string, error) {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		answer = q.Default
	}
	if q.Normalize != nil {
		answer = q.Normalize(answer)
	}

	switch q.Kind {
	case Confirm:
		switch strings.ToLower(answer) {
		case "y", "yes", "true":
			answer = "y"
		case "n", "no", "false":
			answer = "n"
		default:
			return "", fmt.Errorf("please answer y or n")
		}
	case Int:
		if _, err := strconv.Atoi(answer); err != nil {
			return "", fmt.Errorf("please enter a whole number")
		}
	case Choice:
		answer = strings.ToLower(answer)
		ok := false
		for _, c := range q.Choices {
			if answer == c {
				ok = true
				break
			}
		}
		if !ok {
			return "", fmt.Errorf("please choose one of: %s", strings.Join(q.Choices, ", "))
		}
	}

	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

// Ask runs the survey in a terminal program and returns the answers.
func Ask(questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return Answers{}, nil
	}
	p := tea.NewProgram(NewModel(questions))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(Model)
	if !ok || !final.done {
		return nil, ErrCancelled
	}
	return final.Answers(), nil
}
