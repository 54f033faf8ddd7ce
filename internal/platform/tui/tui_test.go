package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-hopper/internal/core"
)

type fakeGame struct {
	resets int
	steps  []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for _, a := range in.Moves {
		frame.Set(a)
	}
	for a, on := range in.Actions {
		if on && !a.IsMove() {
			frame.Set(a)
		}
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("s"), core.ActionDown},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("b"), core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuKeyMapActions(t *testing.T) {
	km := DefaultMenuKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hop")

	if got, want := RenderScreen(s), "hop  \n     "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsStyledText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextStyled(0, 0, "ab", core.Style{FG: core.ColorRed})
	s.DrawTextStyled(2, 0, "cd", core.Style{FG: core.ColorGreen, BG: core.ColorDeepBlue})

	out := RenderScreen(s)
	for _, part := range []string{"ab", "cd"} {
		if !strings.Contains(out, part) {
			t.Errorf("output %q lost %q", out, part)
		}
	}
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 120, ScreenH: 12, TickRate: 60, Seed: 1}, nil)
}

func TestModelForwardsMovesInOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	next, _ := m.Update(runes("w"))
	next, _ = next.Update(runes("a"))
	next, _ = next.Update(TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	moves := g.steps[0].Moves
	if len(moves) != 2 || moves[0] != core.ActionUp || moves[1] != core.ActionLeft {
		t.Errorf("moves = %v, want [Up Left]", moves)
	}

	next.Update(TickMsg{})
	if len(g.steps[1].Moves) != 0 {
		t.Errorf("input not cleared between ticks: %v", g.steps[1].Moves)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	next, _ := m.Update(runes("r"))
	next, _ = next.Update(TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart honored mid-run: resets = %d", g.resets)
	}

	g.state = core.GameState{Score: 9, GameOver: true}
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(runes("r"))
	next, _ = next.Update(TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d after restart, want 2", g.resets)
	}
	if best := next.(Model).Best(); best != 9 {
		t.Errorf("Best = %d, want 9", best)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	next, cmd := m.Update(runes("b"))
	if next.(Model).BackToMenu() || cmd != nil {
		t.Fatal("back accepted during a run")
	}

	g.state = core.GameState{Paused: true}
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(runes("b"))
	if !next.(Model).BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	next, cmd := m.Update(runes("q"))

	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("quit key ignored")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelViewHasHelpBar(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("game frame missing")
	}
	if !strings.Contains(view, "hop") || !strings.Contains(view, "quit") {
		t.Errorf("help bar missing from view:\n%s", view)
	}
}
