// Package form implements the admin form screens whose dependent fields
// follow a parent field through a cascade controller.
package form

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/screens/formbridge"
	"github.com/reshuffle/admin/internal/ui/components"
	"github.com/reshuffle/admin/internal/ui/layout"
	"github.com/reshuffle/admin/internal/ui/theme"
)

// controller is the part of cascade.Controller the screen drives.
type controller interface {
	Load(ctx context.Context, parent string) error
	ParentChanged(parent string)
	FlushParent()
	FieldChanged(id cascade.FieldID, value string) error
	Close()
}

// loadedMsg reports the page-load fetch of one screen.
type loadedMsg struct {
	From *FormScreen
	Err  error
}

// row is one dependent field on screen.
type row struct {
	id      cascade.FieldID
	name    string
	kind    cascade.Kind
	label   string
	value   string
	enabled bool
	sel     components.Select
	input   components.TextInput
}

func newRow(id cascade.FieldID, name string, kind cascade.Kind, seed cascade.Values) row {
	r := row{id: id, name: name, kind: kind, value: seed[id]}
	switch kind {
	case cascade.KindSelect:
		r.sel = components.NewSelect()
		name := r.value
		if name == "" {
			name = "---------"
		}
		r.sel.SetOptions([]components.SelectOption{{Key: r.value, Name: name}}, r.value)
		r.sel.Disabled = true
	default:
		r.input = components.NewTextInput("", true, 9)
		r.input.SetValue(r.value)
		r.input.Disabled = true
	}
	return r
}

// FormScreen edits a parent field and the chain of fields depending on it.
// Focus index 0 is the parent input, i+1 is rows[i].
type FormScreen struct {
	title      string
	ctrl       controller
	bridge     *formbridge.Bridge
	parentName string
	parent     components.TextInput
	rows       []row
	focus      int
	loaded     bool
	status     string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.Closer = (*FormScreen)(nil)

func newScreen(title, parentName, parentValue string, ctrl controller, bridge *formbridge.Bridge, rows []row) *FormScreen {
	parent := components.NewTextInput("id", true, 9)
	parent.SetValue(parentValue)
	return &FormScreen{
		title:      title,
		ctrl:       ctrl,
		bridge:     bridge,
		parentName: parentName,
		parent:     parent,
		rows:       rows,
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return tea.Batch(s.parent.Focus(), s.load(), s.bridge.Wait())
}

// load runs the page-load fetch for the current parent value.
func (s *FormScreen) load() tea.Cmd {
	ctrl, parent := s.ctrl, s.parent.Value()
	return func() tea.Msg {
		return loadedMsg{From: s, Err: ctrl.Load(context.Background(), parent)}
	}
}

func (s *FormScreen) Title() string {
	return s.title
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Apply"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close stops the controller and releases the bridge.
func (s *FormScreen) Close() {
	s.ctrl.Close()
	s.bridge.Close()
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case formbridge.SnapshotMsg:
		s.apply(msg.Snapshot)
		return s, s.bridge.Wait()

	case loadedMsg:
		if msg.From == s {
			s.status = statusFor(msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			s.commit()
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			s.commit()
			return s, s.moveFocus(-1)
		case "enter":
			if s.focus == 0 {
				return s, s.flushParent()
			}
			s.commit()
			return s, nil
		}
	}
	return s, s.updateFocused(msg)
}

// apply copies a controller snapshot into the widgets.
func (s *FormScreen) apply(snap cascade.Snapshot) {
	s.loaded = true
	s.status = ""
	for i := range s.rows {
		r := &s.rows[i]
		f, ok := snap.Field(r.id)
		if !ok {
			continue
		}
		r.enabled = f.Enabled
		r.label = f.Label
		r.value = f.Value
		switch r.kind {
		case cascade.KindSelect:
			r.sel.SetOptions(toSelectOptions(f.Options), f.Value)
			r.sel.Disabled = !f.Enabled
		default:
			r.input.SetValue(f.Value)
			r.input.Disabled = !f.Enabled
		}
	}
}

// updateFocused routes msg to the focused widget. Parent edits are
// debounced by the controller; select changes apply at once.
func (s *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	if s.focus == 0 {
		before := s.parent.Value()
		var cmd tea.Cmd
		s.parent, cmd = s.parent.Update(msg)
		if v := s.parent.Value(); v != before {
			s.ctrl.ParentChanged(v)
		}
		return cmd
	}

	r := &s.rows[s.focus-1]
	if r.kind == cascade.KindSelect {
		before := r.sel.Value()
		r.sel, _ = r.sel.Update(msg)
		if v := r.sel.Value(); v != before {
			s.fieldChanged(r.id, v)
		}
		return nil
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

// flushParent fetches a pending parent edit without waiting for the
// debounce window.
func (s *FormScreen) flushParent() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		ctrl.FlushParent()
		return nil
	}
}

// commit applies a pending edit of the focused number field, the way a
// browser fires change on blur.
func (s *FormScreen) commit() {
	if s.focus == 0 {
		return
	}
	r := &s.rows[s.focus-1]
	if r.kind != cascade.KindNumber || !r.enabled {
		return
	}
	if v := r.input.Value(); v != r.value {
		s.fieldChanged(r.id, v)
	}
}

func (s *FormScreen) fieldChanged(id cascade.FieldID, v string) {
	if err := s.ctrl.FieldChanged(id, v); errors.Is(err, cascade.ErrNoPayload) {
		s.status = "Waiting for validation data"
	}
}

// moveFocus moves focus by delta, skipping disabled rows.
func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	n := len(s.rows) + 1
	next := s.focus
	for range n {
		next = (next + delta + n) % n
		if next == 0 || s.rows[next-1].enabled {
			break
		}
	}
	return s.setFocus(next)
}

func (s *FormScreen) setFocus(i int) tea.Cmd {
	if s.focus == 0 {
		s.parent.Blur()
	} else {
		r := &s.rows[s.focus-1]
		if r.kind == cascade.KindSelect {
			r.sel.Focused = false
		} else {
			r.input.Blur()
		}
	}

	s.focus = i
	if i == 0 {
		return s.parent.Focus()
	}
	r := &s.rows[i-1]
	if r.kind == cascade.KindSelect {
		r.sel.Focused = true
		return nil
	}
	return r.input.Focus()
}

func (s *FormScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.RenderField(s.parentName, s.parent.View(), s.focus == 0, true))
	b.WriteString("\n\n")

	for i, r := range s.rows {
		label := r.label
		if label == "" {
			label = r.name
		}
		var widget string
		if r.kind == cascade.KindSelect {
			widget = r.sel.View()
		} else {
			widget = r.input.View()
		}
		b.WriteString(layout.RenderField(label, widget, s.focus == i+1, r.enabled))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.status != "":
		b.WriteString("  " + theme.Failed.Render(s.status))
	case !s.loaded:
		b.WriteString("  " + theme.Hint.Render("Loading validation data..."))
	}

	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(b.String())
}

func toSelectOptions(opts []cascade.Option) []components.SelectOption {
	out := make([]components.SelectOption, len(opts))
	for i, o := range opts {
		out[i] = components.SelectOption{Key: o.Key, Name: o.Name}
	}
	return out
}

// statusFor renders a load error for the status line. Superseded, closed
// and cancelled loads are not errors from the user's point of view.
func statusFor(err error) string {
	switch {
	case err == nil,
		errors.Is(err, cascade.ErrSuperseded),
		errors.Is(err, cascade.ErrClosed),
		errors.Is(err, context.Canceled):
		return ""
	default:
		return "Validation failed: " + err.Error()
	}
}
