/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

// Chicken vs Banana
//
// Two players share a grid of face-down tiles, half chickens and half
// bananas. Each player owns one kind.
//
// Sequential rules: players alternate clicking tiles, Chicken first. Clicking
// a tile of your own kind claims it; clicking the other kind loses at once.
// Claiming every tile of your kind wins.
//
// Simultaneous rules: each round both players pick one tile, then both picks
// are revealed together. One wrong pick loses, two wrong picks tie, and a
// board cleared without mistakes is a tie.
//
// Features:
// - WebSockets per game ID: /play/:gameid and /play/:gameid/ws
// - Players take the chicken or banana seat; one device may hold both
// - Seats held by disconnected players are freed after --player-timeout
// - Any seated player may restart or switch rules
// - Optional reveal delay so both simultaneous picks are shown before scoring
// - Debug reveal-all toggle for simultaneous games (--debug)
// - Read-only JSON state at /play/:gameid/state, QR share code at /play/:gameid/qr

import (
	"slices"
	"sync"
	"time"

	"github.com/Seednode/chickenbanana/games/chickenbanana"
	"github.com/gorilla/websocket"
)

// Messages coming from clients
type ClientMessage struct {
	Type    string `json:"type"`              // "join", "leave", "select", "reset", "mode", "reveal_all"
	Faction string `json:"faction,omitempty"` // join / leave / select
	Tile    int    `json:"tile,omitempty"`    // select
	Mode    string `json:"mode,omitempty"`    // mode
}

// SessionInfoMessage is sent immediately on connect.
type SessionInfoMessage struct {
	Type        string `json:"type"` // "session_info"
	GameID      string `json:"game_id"`
	Debug       bool   `json:"debug"`
	RevealDelay int64  `json:"reveal_delay_ms"`
}

// SeatState reports which seats are taken by anyone.
type SeatState struct {
	Chicken bool `json:"chicken"`
	Banana  bool `json:"banana"`
}

// GameStateMessage carries the public game snapshot plus the seats this
// particular client holds.
type GameStateMessage struct {
	Type  string                  `json:"type"` // "game_state"
	Game  chickenbanana.Snapshot  `json:"game"`
	Seats SeatState               `json:"seats"`
	Yours []chickenbanana.Faction `json:"yours"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type command struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id   string
	cfg  *Config
	game *chickenbanana.Game

	clients map[*Client]bool
	seats   map[chickenbanana.Faction]string // faction -> playerID

	register chan *Client
	unreg    chan *Client
	commands chan command
	settle   chan int
	done     chan struct{}
	stop     sync.Once

	// bumped on every restart so stale settle timers are dropped
	round int

	createdAt  time.Time
	lastActive time.Time

	mu sync.RWMutex
}

func newHub(cfg *Config, gameID string, game *chickenbanana.Game) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		cfg:        cfg,
		game:       game,
		clients:    make(map[*Client]bool),
		seats:      make(map[chickenbanana.Faction]string),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		commands:   make(chan command),
		settle:     make(chan int),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.clients[c] = true

			c.send <- SessionInfoMessage{
				Type:        "session_info",
				GameID:      h.id,
				Debug:       h.cfg.debug,
				RevealDelay: h.cfg.revealDelay.Milliseconds(),
			}
			c.send <- h.stateForLocked(c.playerID, h.game.Snapshot())
			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			seated := len(h.heldByLocked(c.playerID)) > 0
			h.mu.Unlock()

			if seated {
				go h.scheduleRelease(c.playerID, h.cfg.playerTimeout)
			}

		case cmd := <-h.commands:
			h.handleCommand(cmd)

		case round := <-h.settle:
			h.handleSettle(round)
		}
	}
}

// submit hands a message to the run loop unless the hub has been closed.
func (h *Hub) submit(c *Client, msg ClientMessage) bool {
	select {
	case h.commands <- command{client: c, msg: msg}:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) handleCommand(cmd command) {
	c := cmd.client
	msg := cmd.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	switch msg.Type {
	case "join":
		f, err := chickenbanana.ParseFaction(msg.Faction)
		if err != nil || !f.Valid() {
			return
		}
		if holder, ok := h.seats[f]; ok {
			if holder != c.playerID {
				return
			}
			break
		}
		h.seats[f] = c.playerID
		logf(h.cfg, "GAMES: Player %s took the %s seat in %s", shortID(c.playerID), f, h.id)

	case "leave":
		f, err := chickenbanana.ParseFaction(msg.Faction)
		if err != nil {
			return
		}
		if !h.releaseLocked(c.playerID, f) {
			return
		}

	case "select":
		f, ok := h.seatForLocked(c.playerID, msg.Faction)
		if !ok || !h.game.Select(f, msg.Tile) {
			return
		}
		h.afterMoveLocked()

	case "reset":
		if len(h.heldByLocked(c.playerID)) == 0 {
			return
		}
		h.game.Reset()
		h.round++
		logf(h.cfg, "GAMES: Restarted %s (%s)", h.id, h.game.Mode())

	case "mode":
		if len(h.heldByLocked(c.playerID)) == 0 {
			return
		}
		m, err := chickenbanana.ParseMode(msg.Mode)
		if err != nil {
			return
		}
		if err := h.game.SetMode(m); err != nil {
			return
		}
		h.round++
		logf(h.cfg, "GAMES: Switched %s to %s rules", h.id, m)

	case "reveal_all":
		if !h.cfg.debug || len(h.heldByLocked(c.playerID)) == 0 {
			return
		}
		if !h.game.ToggleRevealAll() {
			return
		}

	default:
		return
	}

	h.broadcastGameStateLocked()
}

// afterMoveLocked schedules a deferred reveal or logs a finished game.
func (h *Hub) afterMoveLocked() {
	if h.game.Settling() {
		round := h.round
		time.AfterFunc(h.cfg.revealDelay, func() {
			select {
			case h.settle <- round:
			case <-h.done:
			}
		})
		return
	}

	h.logResultLocked()
}

func (h *Hub) handleSettle(round int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if round != h.round || !h.game.Settle() {
		return
	}

	h.lastActive = time.Now()
	h.logResultLocked()
	h.broadcastGameStateLocked()
}

func (h *Hub) logResultLocked() {
	if r := h.game.Result(); r.Terminal() {
		logf(h.cfg, "GAMES: %s in %s", r, h.id)
	}
}

// heldByLocked returns the seats playerID holds, chicken first.
func (h *Hub) heldByLocked(playerID string) []chickenbanana.Faction {
	var held []chickenbanana.Faction
	for _, f := range chickenbanana.Factions {
		if id, ok := h.seats[f]; ok && id == playerID {
			held = append(held, f)
		}
	}
	return held
}

// seatForLocked decides which faction a select from playerID acts for. A
// player holding both seats in a sequential game plays whoever's turn it is.
func (h *Hub) seatForLocked(playerID, requested string) (chickenbanana.Faction, bool) {
	f, err := chickenbanana.ParseFaction(requested)
	if err != nil {
		return chickenbanana.NoFaction, false
	}

	held := h.heldByLocked(playerID)

	switch {
	case f != chickenbanana.NoFaction:
		return f, slices.Contains(held, f)
	case len(held) == 1:
		return held[0], true
	case len(held) == 2 && h.game.Mode() == chickenbanana.Sequential:
		return chickenbanana.NoFaction, true
	default:
		return chickenbanana.NoFaction, false
	}
}

// releaseLocked frees f, or every seat of playerID when f is NoFaction.
func (h *Hub) releaseLocked(playerID string, f chickenbanana.Faction) bool {
	changed := false
	for _, seat := range h.heldByLocked(playerID) {
		if f != chickenbanana.NoFaction && seat != f {
			continue
		}
		delete(h.seats, seat)
		changed = true
		logf(h.cfg, "GAMES: Player %s left the %s seat in %s", shortID(playerID), seat, h.id)
	}
	return changed
}

// scheduleRelease waits for d, and if no client with this playerID is
// connected by then, frees that player's seats.
func (h *Hub) scheduleRelease(playerID string, d time.Duration) {
	select {
	case <-time.After(d):
	case <-h.done:
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.playerID == playerID {
			return
		}
	}

	if h.releaseLocked(playerID, chickenbanana.NoFaction) {
		h.broadcastGameStateLocked()
	}
}

func (h *Hub) stateForLocked(playerID string, snap chickenbanana.Snapshot) GameStateMessage {
	_, chicken := h.seats[chickenbanana.Chicken]
	_, banana := h.seats[chickenbanana.Banana]

	yours := h.heldByLocked(playerID)
	if yours == nil {
		yours = []chickenbanana.Faction{}
	}

	return GameStateMessage{
		Type:  "game_state",
		Game:  snap,
		Seats: SeatState{Chicken: chicken, Banana: banana},
		Yours: yours,
	}
}

func (h *Hub) broadcastGameStateLocked() {
	snap := h.game.Snapshot()

	for client := range h.clients {
		select {
		case client.send <- h.stateForLocked(client.playerID, snap):
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// snapshot is safe to call from outside the run loop.
func (h *Hub) snapshot() chickenbanana.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.game.Snapshot()
}

// closeAll stops the run loop and disconnects every client.
func (h *Hub) closeAll() {
	h.stop.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

func shortID(playerID string) string {
	if len(playerID) > 8 {
		return playerID[:8]
	}
	return playerID
}
