package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/photonics/internal/games/photon"
	"github.com/vovakirdan/photonics/internal/storage"
)

func menuIDs(m MenuModel) []string {
	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.GameID
	}
	return ids
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, testConfig)
	ids := strings.Join(menuIDs(m), ",")
	for _, want := range []string{photon.GameID, photon.FreePlayID} {
		if !strings.Contains(ids, want) {
			t.Errorf("menu %q missing %q", ids, want)
		}
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openStore(t)
	store.SaveScore(photon.GameID, 12)

	m := NewMenuModel(store, testConfig)
	if !strings.Contains(m.View(), "best 12") {
		t.Errorf("menu should show the best score:\n%s", m.View())
	}
}

func TestMenuShowsSummary(t *testing.T) {
	m := NewMenuModel(nil, testConfig)
	want := m.items[m.cursor].Summary
	if want == "" {
		t.Fatal("photon variants should carry a summary")
	}
	if !strings.Contains(m.View(), want) {
		t.Errorf("menu should describe the highlighted variant:\n%s", m.View())
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig)
	var target int
	for i, it := range m.items {
		if it.GameID == photon.FreePlayID {
			target = i
		}
	}

	var next tea.Model = m
	for range target {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should end the menu program")
	}

	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != photon.FreePlayID {
		t.Errorf("Selected() = %+v, want %s", sel, photon.FreePlayID)
	}
}

func TestMenuScoreboardKey(t *testing.T) {
	next, _ := NewMenuModel(nil, testConfig).Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}
}

func TestScoreboardToggleQuiz(t *testing.T) {
	store := openStore(t)
	store.SaveScore(photon.GameID, 9)
	store.SaveQuizResult(storage.QuizResult{GameID: photon.GameID, Score: 4, Total: 5, Answers: "1-2-2-2-1"})

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == photon.GameID {
			m.gameCursor = i
			m.loadScores(g.ID)
		}
	}

	if v := m.View(); !strings.Contains(v, "PHOTONS CAUGHT") || !strings.Contains(v, "Best 9") {
		t.Errorf("default view should list caught counts and totals:\n%s", v)
	}

	next, _ := m.Update(runeKey('v'))
	v := next.(ScoreboardModel).View()
	if !strings.Contains(v, "QUIZ RESULTS") || !strings.Contains(v, "4/5") {
		t.Errorf("toggled view should list quiz results:\n%s", v)
	}
	if !strings.Contains(v, "Best quiz 4/5") {
		t.Errorf("toggled view should show the best quiz:\n%s", v)
	}
}

func TestSessionModelFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig, "tester")

	// Enter starts the first variant
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.gameModel == nil || cmd == nil {
		t.Fatal("enter should start a game")
	}

	// q leaves the game for the menu without ending the session
	m, _ = m.Update(runeKey('q'))
	s = m.(SessionModel)
	if s.gameModel != nil || s.quitting {
		t.Fatalf("q in a game should return to the menu, quitting=%v", s.quitting)
	}

	// q in the menu ends the session
	m, cmd = m.Update(runeKey('q'))
	if cmd == nil || !m.(SessionModel).quitting {
		t.Error("q in the menu should end the session")
	}
}
