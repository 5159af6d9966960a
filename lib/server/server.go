package server

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/viewmodel"
	"github.com/pescuma/cities/lib/workspace"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, ws *workspace.Workspace, opts *Options) error {
	s := newServer(opts)

	console.Printf("Loading existing data...\n")

	s.load(ws)
	defer s.vm.Close()

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

// server serializes every view-model call behind mutex, so handlers see the
// same single threaded model a UI event loop would.
type server struct {
	opts *Options

	mutex     sync.Mutex
	ws        *workspace.Workspace
	vm        *viewmodel.ViewModel
	presenter *sessionPresenter
}

func newServer(opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2428
	}

	return &server{
		opts:      opts,
		presenter: newSessionPresenter(),
	}
}

func (s *server) load(ws *workspace.Workspace) {
	s.ws = ws
	s.vm = ws.LoadViewModel(s.presenter)
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	s.initCities(r)
	s.initEditing(r)

	return r
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}
