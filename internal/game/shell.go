package game

import (
	"fmt"

	"github.com/vovakirdan/coin-quest/internal/core"
)

// Shell owns the active scene and the edge-detection state of the keyboard.
// Hosts call Update then Draw once per tick.
type Shell struct {
	session *Session
	scene   Scene
	keys    *core.KeyTracker
}

// NewShell creates a shell showing the menu.
func NewShell(s *Session) *Shell {
	sh := &Shell{session: s, keys: core.NewKeyTracker()}
	sh.change(SceneMenu)
	return sh
}

// Session returns the session driven by the shell.
func (sh *Shell) Session() *Session { return sh.session }

// Scene returns the kind of the active scene.
func (sh *Shell) Scene() SceneKind { return sh.scene.Kind() }

// Quit reports whether the player chose to exit.
func (sh *Shell) Quit() bool { return sh.session.quit }

// Update advances the active scene by one frame with the actions held now.
func (sh *Shell) Update(held core.InputFrame) {
	if sh.session.quit {
		return
	}
	sh.keys.Advance(held)
	if next := sh.scene.Update(sh.keys); next != sh.scene.Kind() {
		sh.change(next)
	}
}

// Draw renders the active scene.
func (sh *Shell) Draw(c Canvas) {
	sh.scene.Draw(c)
}

// change replaces the active scene with a new one of the given kind.
func (sh *Shell) change(kind SceneKind) {
	s := sh.session
	var next Scene
	switch kind {
	case SceneMenu:
		next = &menuScene{s: s}
	case ScenePlay:
		next = &playScene{s: s}
	case SceneGameOver:
		next = &endScene{kind: SceneGameOver, title: "GAME OVER", color: core.ColorRed, s: s}
	case SceneWin:
		next = &endScene{kind: SceneWin, title: "YOU WIN!", color: core.ColorGreen, s: s}
	default:
		panic(fmt.Sprintf("unknown scene %d", kind))
	}

	from := "none"
	if sh.scene != nil {
		from = sh.scene.Kind().String()
	}
	s.logger.Debug("scene change", "from", from, "to", kind)
	sh.scene = next
	next.Init()
}
