package systems

import (
	"fmt"

	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/fonts"
	"github.com/automoto/pupu/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD prints the character state in the top-left corner and a banner
// while paused.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	_, ch, ok := getCharacter(e)
	if !ok {
		return
	}
	m := cfg.Render.HUDMargin
	face := fonts.HUD.Get()

	line := fmt.Sprintf("%s  jumps %d  respawns %d", ch.Pose(), ch.JumpBudget(), ch.Respawns)
	if ch.Lifecycle() == kinematic.Injured {
		line += fmt.Sprintf("  hurt %.1fs", ch.RecoveryLeft())
	}
	text.Draw(screen, line, face, m, m+face.Metrics().Ascent.Ceil(), cfg.White)

	if !getSession(e).Paused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)
	drawCentered(screen, "PAUSED", fonts.Banner.Get(), w/2, h/2)
	drawCentered(screen, "P resume   R respawn", face, w/2, h/2+20)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int) {
	width := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-width/2, y, cfg.White)
}
