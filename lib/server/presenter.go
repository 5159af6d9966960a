package server

import (
	"github.com/pescuma/cities/lib/viewmodel"
)

// sessionPresenter keeps what a browser would show, so clients can read it
// back from /api/state. Confirm answers with whatever the current request
// asked for.
type sessionPresenter struct {
	editors   map[viewmodel.Editor]string
	lastAlert string
	confirm   bool
}

func newSessionPresenter() *sessionPresenter {
	return &sessionPresenter{
		editors: map[viewmodel.Editor]string{},
		confirm: true,
	}
}

func (p *sessionPresenter) ShowEditor(editor viewmodel.Editor, title string) {
	p.editors[editor] = title
	p.lastAlert = ""
}

func (p *sessionPresenter) HideEditor(editor viewmodel.Editor) {
	delete(p.editors, editor)
	p.lastAlert = ""
}

func (p *sessionPresenter) Alert(message string) {
	p.lastAlert = message
}

func (p *sessionPresenter) Confirm(string) bool {
	return p.confirm
}
