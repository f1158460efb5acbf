package main

import "testing"

func TestControllerPlacementListenerReportsMover(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	var placements []PlayerColor
	controller.SetPlacementListener(func(player PlayerColor) {
		placements = append(placements, player)
	})

	controller.Start(ModeHumanVsHuman)
	controller.SubmitHumanMove(Move{X: 7, Y: 7})
	controller.SubmitHumanMove(Move{X: 8, Y: 7})
	controller.SubmitHumanMove(Move{X: 8, Y: 7}) // rejected, no event

	if len(placements) != 2 {
		t.Fatalf("expected 2 placement events, got %d", len(placements))
	}
	if placements[0] != PlayerBlack || placements[1] != PlayerWhite {
		t.Fatalf("expected black then white events, got %v", placements)
	}
}

func TestControllerWithoutListenerStillPlays(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	controller.Start(ModeHumanVsHuman)
	if applied, reason := controller.SubmitHumanMove(Move{X: 7, Y: 7}); !applied {
		t.Fatalf("expected move to apply with no listener installed: %s", reason)
	}
}

func TestControllerListenerFiresForComputerMoves(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	var placements []PlayerColor
	controller.SetPlacementListener(func(player PlayerColor) {
		placements = append(placements, player)
	})

	controller.Start(ModeHumanVsAI)
	controller.ChooseSide(PlayerWhite)
	if len(placements) != 1 || placements[0] != PlayerBlack {
		t.Fatalf("expected the computer's opening to fire a black event, got %v", placements)
	}
}

func TestControllerRestartReturnsToSideSelection(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	controller.Start(ModeHumanVsAI)
	controller.ChooseSide(PlayerWhite)
	controller.SubmitHumanMove(Move{X: 0, Y: 0})

	controller.Restart()
	state := controller.State()
	if state.Status != StatusNotStarted {
		t.Fatalf("expected restart to wait for side selection again, got %v", state.Status)
	}
	if state.Board.CountEmpty() != 15*15 {
		t.Fatalf("expected cleared board after restart")
	}
	if controller.Mode() != ModeHumanVsAI {
		t.Fatalf("expected restart to keep the session mode")
	}
	if _, chosen := controller.HumanColor(); chosen {
		t.Fatalf("expected side assignment discarded by restart")
	}
	if ok, _ := controller.ChooseSide(PlayerBlack); !ok {
		t.Fatalf("expected side selection to be available after restart")
	}
}

func TestControllerRestartKeepsHumanVsHumanRunning(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	controller.Start(ModeHumanVsHuman)
	controller.SubmitHumanMove(Move{X: 7, Y: 7})
	controller.Restart()
	state := controller.State()
	if state.Status != StatusRunning {
		t.Fatalf("expected restarted human-vs-human game to run immediately, got %v", state.Status)
	}
	if state.ToMove != PlayerBlack {
		t.Fatalf("expected black to move first after restart")
	}
}

func TestControllerStartAndRestartRotateGameID(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	first := controller.GameID()
	controller.Start(ModeHumanVsHuman)
	second := controller.GameID()
	if first == second {
		t.Fatalf("expected a fresh game id on start")
	}
	controller.Restart()
	if controller.GameID() == second {
		t.Fatalf("expected a fresh game id on restart")
	}
}

func TestControllerTickDrivesComputerMove(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	controller.Start(ModeHumanVsAI)
	controller.ChooseSide(PlayerBlack)
	controller.SubmitHumanMove(Move{X: 7, Y: 7})
	if !controller.AiPending() {
		t.Fatalf("expected pending computer move after human move")
	}
	if controller.Tick(0.25) {
		t.Fatalf("expected no move before the think delay")
	}
	if !controller.Tick(0.25) {
		t.Fatalf("expected the computer to move at the think delay")
	}
	if controller.State().ToMove != PlayerBlack {
		t.Fatalf("expected turn back to the human")
	}
}
