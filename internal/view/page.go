// Package view renders the active screen of a session as HTML with
// gomponents. Triggers are wired as htmx posts that swap the #screen element.
package view

import (
	"fmt"
	"io"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/session"
)

// ScreenID is the element htmx swaps after every trigger.
const ScreenID = "screen"

// Model is everything a render needs. View is the mounted presenter, or nil
// on a blank dashboard.
type Model struct {
	State     session.State
	View      any
	Available []session.Transition
	Flash     FlashData
}

// NewModel captures a controller for rendering. It must be called while the
// caller holds the session.
func NewModel(c *session.Controller, flash FlashData) Model {
	snap := c.Snapshot()
	return Model{
		State:     snap,
		View:      c.View(),
		Available: session.Available(snap.Screen),
		Flash:     flash,
	}
}

// Render writes a node; it exists so handlers do not import gomponents.
func Render(w io.Writer, node gomponents.Node) error {
	return node.Render(w)
}

// Page renders the full document.
func Page(m Model) gomponents.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(gomponents.Text("OnCampus")),
				html.Script(html.Src("https://unpkg.com/htmx.org@2.0.4")),
			),
			html.Body(
				Screen(m),
			),
		),
	)
}

// Screen renders the #screen fragment: flash messages, trigger buttons and
// the presenter. A blank dashboard renders an empty main element.
func Screen(m Model) gomponents.Node {
	children := []gomponents.Node{
		html.ID(ScreenID),
		gomponents.Attr("data-screen", string(m.State.Screen)),
	}
	if m.View != nil {
		children = append(children, flash(m.Flash), triggers(m.Available), presenter(m.View))
	}
	return html.Main(children...)
}

func flash(f FlashData) gomponents.Node {
	if f.Empty() {
		return nil
	}
	messages := func(class string, list []string) gomponents.Node {
		return gomponents.Map(list, func(msg string) gomponents.Node {
			return html.P(html.Class("flash "+class), gomponents.Text(msg))
		})
	}
	return html.Div(
		html.Class("flash-messages"),
		messages("notice", f.Notice),
		messages("success", f.Success),
		messages("error", f.Error),
	)
}

func triggers(available []session.Transition) gomponents.Node {
	var buttons []gomponents.Node
	for _, t := range available {
		if t.Payload {
			continue
		}
		buttons = append(buttons, html.Button(
			html.Type("button"),
			hx.Post("/api/session/triggers/"+string(t.Trigger)),
			hx.Target("#"+ScreenID),
			hx.Swap("outerHTML"),
			gomponents.Text(domain.Label(string(t.Trigger))),
		))
	}
	if len(buttons) == 0 {
		return nil
	}
	return html.Nav(append([]gomponents.Node{html.Class("triggers")}, buttons...)...)
}

func field(label, name, inputType, value string) gomponents.Node {
	return html.P(
		html.Span(html.Class("field-label"), gomponents.Text(label)),
		html.Input(html.Name(name), html.Type(inputType), html.Value(value), html.Placeholder(label)),
	)
}

func submit(url, label string) gomponents.Node {
	return html.Button(
		html.Type("submit"),
		hx.Post(url),
		hx.Target("#"+ScreenID),
		hx.Swap("outerHTML"),
		gomponents.Text(label),
	)
}

func metric(label string, value int) gomponents.Node {
	return html.Div(html.Class("metric"),
		html.Strong(gomponents.Text(fmt.Sprint(value))),
		html.Span(gomponents.Text(label)),
	)
}
