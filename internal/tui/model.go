// Package tui implements the interactive mortgage calculator form.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Focus slots, in tab order. The first three are text inputs.
const (
	focusAmount = iota
	focusTerm
	focusRate
	focusType
	focusCount
)

const inputCount = focusType

// Model is the bubbletea model for the calculator form. The form owns all
// mutable state; the calculator is only invoked on submit.
type Model struct {
	logger    *zap.Logger
	formatter *format.Formatter
	precision string
	keys      KeyMap
	help      help.Model
	styles    styles

	inputs        [inputCount]textinput.Model
	repaymentType mortgage.RepaymentType
	focus         int

	errors map[string]string
	result *mortgage.PaymentResult
}

// New creates the form model. A nil formatter uses the default locale.
func New(logger *zap.Logger, formatter *format.Formatter, precision string) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if formatter == nil {
		formatter = format.NewFormatter("")
	}

	m := Model{
		logger:    logger,
		formatter: formatter,
		precision: precision,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    defaultStyles(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 20
		ti.CharLimit = 20
		m.inputs[i] = ti
	}
	m.inputs[focusAmount].Width = 30
	m.inputs[focusAmount].Focus()
	return m
}

// Run starts the interactive form and blocks until the user quits.
func Run(logger *zap.Logger, formatter *format.Formatter, precision string) error {
	_, err := tea.NewProgram(New(logger, formatter, precision)).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, m.setFocus(focusAmount)
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		if m.focus == focusType {
			switch {
			case key.Matches(msg, m.keys.Left):
				m.repaymentType = mortgage.Repayment
			case key.Matches(msg, m.keys.Right):
				m.repaymentType = mortgage.InterestOnly
			case key.Matches(msg, m.keys.Toggle):
				if m.repaymentType == mortgage.Repayment {
					m.repaymentType = mortgage.InterestOnly
				} else {
					m.repaymentType = mortgage.Repayment
				}
			}
			return m, nil
		}
	}

	if m.focus < inputCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m *Model) clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.repaymentType = 0
	m.errors = nil
	m.result = nil
	m.logger.Debug("form cleared", zap.String("op", "tui.clear"))
}

func (m *Model) submit() {
	input, err := validation.ParseForm(m.Form())
	if err != nil {
		m.errors = validation.FieldErrors(err)
		m.result = nil
		m.logger.Debug("form rejected",
			zap.String("op", "tui.submit"),
			zap.Error(err),
		)
		return
	}

	result, err := quote.Compute(input, m.precision)
	if err != nil {
		m.errors = map[string]string{"": err.Error()}
		m.result = nil
		m.logger.Warn("calculation failed",
			zap.String("op", "tui.submit"),
			zap.Error(err),
		)
		return
	}

	m.errors = nil
	m.result = &result
	m.logger.Debug("calculated repayments",
		zap.String("op", "tui.submit"),
		zap.Float64("monthlyPayment", result.MonthlyPayment),
	)
}

// Form returns the raw field values as entered.
func (m Model) Form() validation.Form {
	form := validation.Form{
		Amount: m.inputs[focusAmount].Value(),
		Term:   m.inputs[focusTerm].Value(),
		Rate:   m.inputs[focusRate].Value(),
	}
	if m.repaymentType.Valid() {
		form.Type = m.repaymentType.String()
	}
	return form
}

// Result returns the last successful calculation, if any.
func (m Model) Result() (mortgage.PaymentResult, bool) {
	if m.result == nil {
		return mortgage.PaymentResult{}, false
	}
	return *m.result, true
}

// Errors returns the field errors from the last submit, keyed by field.
func (m Model) Errors() map[string]string {
	return m.errors
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Mortgage Calculator"))
	b.WriteString("\n\n")

	b.WriteString(m.field("Mortgage Amount", focusAmount, validation.FieldAmount, m.formatter.Symbol(), ""))
	b.WriteString(m.field("Mortgage Term", focusTerm, validation.FieldTerm, "", "years"))
	b.WriteString(m.field("Interest Rate", focusRate, validation.FieldRate, "", "%"))
	b.WriteString(m.typeSelector())

	b.WriteString(m.styles.button.Render("Calculate Repayments"))
	b.WriteString("\n")
	if msg, ok := m.errors[""]; ok {
		b.WriteString(m.styles.errorText.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(m.resultsPanel())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) field(label string, slot int, name, prefix, suffix string) string {
	affix := m.styles.affix
	if m.focus == slot {
		affix = m.styles.focusedAffix
	}
	msg, invalid := m.errors[name]
	if invalid {
		affix = m.styles.errorAffix
	}

	parts := []string{}
	if prefix != "" {
		parts = append(parts, affix.Render(prefix))
	}
	parts = append(parts, " "+m.inputs[slot].View()+" ")
	if suffix != "" {
		parts = append(parts, affix.Render(suffix))
	}

	var b strings.Builder
	b.WriteString(m.styles.label.Render(label))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
	b.WriteString("\n")
	if invalid {
		b.WriteString(m.styles.errorText.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) typeSelector() string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render("Mortgage Type"))
	b.WriteString("\n")
	for _, t := range []mortgage.RepaymentType{mortgage.Repayment, mortgage.InterestOnly} {
		marker := "( ) "
		style := m.styles.radio
		if m.repaymentType == t {
			marker = "(•) "
			style = m.styles.radioChecked
		}
		line := marker + t.Label()
		if m.focus == focusType && (m.repaymentType == t || (!m.repaymentType.Valid() && t == mortgage.Repayment)) {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	if msg, ok := m.errors[validation.FieldType]; ok {
		b.WriteString(m.styles.errorText.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultsPanel() string {
	var b strings.Builder
	if m.result == nil {
		b.WriteString(m.styles.panelTitle.Render("Results shown here"))
		b.WriteString("\n")
		b.WriteString(m.styles.panelText.Render("Complete the form and press enter to see what your monthly repayments would be."))
		return m.styles.panel.Render(b.String())
	}

	b.WriteString(m.styles.panelTitle.Render("Your results"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.panelText.Render("Your monthly repayments"))
	b.WriteString("\n")
	b.WriteString(m.styles.headline.Render(m.formatter.Format(m.result.MonthlyPayment)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.panelText.Render("Total you'll repay over the term"))
	b.WriteString("\n")
	b.WriteString(m.styles.figure.Render(m.formatter.Format(m.result.TotalPayment)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.panelText.Render("Total interest over the term"))
	b.WriteString("\n")
	b.WriteString(m.styles.figure.Render(m.formatter.Format(m.result.TotalInterest)))
	return m.styles.panel.Render(b.String())
}
