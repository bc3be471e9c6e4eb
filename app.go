package main

import (
	"github.com/abhinav/dirspread/internal/log"
	"github.com/abhinav/dirspread/internal/session"
	"github.com/abhinav/dirspread/internal/spread"
	"github.com/benbjohnson/clock"
)

// app spreads a directory into terminal tabs.
type app struct {
	Log   *log.Logger
	Clock clock.Clock

	LookupEnv func(string) (string, bool) // == os.LookupEnv
	Getwd     func() (string, error)      // == os.Getwd

	NewBackend func(spread.Terminal, spread.Options) (spread.Backend, error)
}

func (a *app) Run(cfg *config) error {
	parent, err := session.ResolveParent(cfg.Dir, a.Getwd)
	if err != nil {
		return err
	}

	// The session must be fully resolved before we touch the terminal.
	sess, err := session.Load(parent)
	if err != nil {
		return err
	}
	a.Log.Debug("loaded session", "session", sess)
	for _, d := range sess.Dirs {
		if len(d.OnOpen) == 0 {
			continue
		}
		// Commands are sent as-is even if they fail this check.
		if err := session.CheckCommand(d.OnOpen); err != nil {
			a.Log.Debugf("onOpen for %q does not split into words: %v", d.DirName, err)
		}
	}

	term := cfg.Terminal
	if len(term) == 0 {
		term = spread.Detect(a.LookupEnv)
		a.Log.Debugf("detected terminal: %v", term)
	}

	backend, err := a.NewBackend(term, spread.Options{
		Log:       a.Log,
		KittyPath: cfg.KittyPath,
		DryRun:    cfg.DryRun,
	})
	if err != nil {
		return err
	}

	start := a.Clock.Now()
	if err := backend.OpenSession(sess); err != nil {
		return err
	}
	a.Log.Debugf("spread %v in %v", parent, a.Clock.Since(start))
	return nil
}
