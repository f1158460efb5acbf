package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
)

var validate = validator.New()

type StatusResponse struct {
	GameID      string  `json:"game_id"`
	Mode        string  `json:"mode"`
	HumanPlayer int     `json:"human_player"`
	NextPlayer  int     `json:"next_player"`
	Winner      int     `json:"winner"`
	Status      string  `json:"status"`
	BoardSize   int     `json:"board_size"`
	Board       [][]int `json:"board"`
	AiPending   bool    `json:"ai_pending"`
	WinningLine []Move  `json:"winning_line"`
}

type startRequest struct {
	Mode string `json:"mode" validate:"required,oneof=human_vs_human human_vs_ai"`
}

type sideRequest struct {
	Side string `json:"side" validate:"required,oneof=black white"`
}

type moveRequest struct {
	X int `json:"x" validate:"gte=0"`
	Y int `json:"y" validate:"gte=0"`
}

type settingsRequest struct {
	Config *Config `json:"config"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	controller.SetPlacementListener(hub.publishPlaced)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())
	go runTickLoop(ctx, controller, hub)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload startRequest
		if !decodeAndValidate(w, r, &payload) {
			return
		}
		if ok, reason := controller.Start(modeFromString(payload.Mode)); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
			return
		}
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.publishRestart(status)
	})

	r.Post("/api/side", func(w http.ResponseWriter, r *http.Request) {
		var payload sideRequest
		if !decodeAndValidate(w, r, &payload) {
			return
		}
		color := PlayerBlack
		if payload.Side == "white" {
			color = PlayerWhite
		}
		if ok, reason := controller.ChooseSide(color); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
			return
		}
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.publishStatus(status)
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload moveRequest
		if !decodeAndValidate(w, r, &payload) {
			return
		}
		applied, reason := controller.SubmitHumanMove(Move{X: payload.X, Y: payload.Y})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
			return
		}
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.publishStatus(status)
	})

	r.Post("/api/restart", func(w http.ResponseWriter, r *http.Request) {
		controller.Restart()
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.publishRestart(status)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload settingsRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		writeJSON(w, http.StatusOK, map[string]any{"config": GetConfig()})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	config := GetConfig()
	server := &http.Server{
		Addr:    config.Addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", config.Addr)
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
	cancel()
}

// runTickLoop feeds real elapsed time into the controller so the
// computer's think delay tracks wall-clock time regardless of tick
// jitter.
func runTickLoop(ctx context.Context, controller *GameController, hub *Hub) {
	interval := time.Duration(GetConfig().TickIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			if controller.Tick(delta) {
				hub.publishStatus(controllerStatus(controller))
			}
		}
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return false
	}
	if err := validate.Struct(payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		GameID:      controller.GameID(),
		Mode:        modeToString(controller.Mode()),
		HumanPlayer: humanPlayerInt(controller),
		NextPlayer:  playerToInt(state.ToMove),
		Winner:      winnerFromStatus(state.Status),
		Status:      statusToString(state.Status),
		BoardSize:   state.Board.Size(),
		Board:       boardToSlice(state.Board),
		AiPending:   controller.AiPending(),
		WinningLine: append([]Move(nil), state.WinningLine...),
	}
}

func humanPlayerInt(controller *GameController) int {
	color, chosen := controller.HumanColor()
	if !chosen {
		return 0
	}
	return playerToInt(color)
}

func modeFromString(mode string) GameMode {
	switch mode {
	case "human_vs_human":
		return ModeHumanVsHuman
	case "human_vs_ai":
		return ModeHumanVsAI
	default:
		return ModeUnset
	}
}

func modeToString(mode GameMode) string {
	switch mode {
	case ModeHumanVsHuman:
		return "human_vs_human"
	case ModeHumanVsAI:
		return "human_vs_ai"
	default:
		return "unset"
	}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(board.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
