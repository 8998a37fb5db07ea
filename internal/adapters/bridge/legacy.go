package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	legacyHandshakeWait = 5 * time.Second
	legacyMaxFrameSize  = 1 << 20
)

var _ ports.Bridge = (*LegacyBridge)(nil)

type legacyRequest struct {
	ID   uint64         `json:"id"`
	Cmd  string         `json:"cmd"`
	Args map[string]any `json:"args,omitempty"`
}

type legacyResponse struct {
	ID     uint64 `json:"id"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

type legacyReply struct {
	resp legacyResponse
	err  error
}

// LegacyBridge implements ports.Bridge over the v1 WebSocket protocol.
// Text frames {id, cmd, args} are answered by {id, result, error}.
//
// The connection is dialed on the first call and re-dialed after it drops.
// Calls pending on a dropped connection fail with ErrBridgeClosed.
type LegacyBridge struct {
	url     string
	dialer  websocket.Dialer
	timeout time.Duration

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[uint64]chan legacyReply
	nextID  uint64
	closed  bool

	writeMu sync.Mutex
}

// NewLegacyBridge returns a v1 bridge for the ws:// or wss:// url.
func NewLegacyBridge(url string, timeout time.Duration) *LegacyBridge {
	return &LegacyBridge{
		url:     url,
		dialer:  websocket.Dialer{HandshakeTimeout: legacyHandshakeWait},
		timeout: timeout,
		pending: make(map[uint64]chan legacyReply),
	}
}

// Invoke implements ports.Bridge.
func (b *LegacyBridge) Invoke(ctx context.Context, command string, args map[string]any) (any, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	conn, id, replies, err := b.acquire(ctx)
	if err != nil {
		return nil, zerr.With(err, "command", command)
	}
	defer b.release(id)

	b.writeMu.Lock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	err = conn.WriteJSON(legacyRequest{ID: id, Cmd: command, Args: args})
	b.writeMu.Unlock()
	if err != nil {
		b.drop(conn)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBridgeCallFailed.Error()), "command", command)
	}

	select {
	case reply := <-replies:
		if reply.err != nil {
			return nil, zerr.With(reply.err, "command", command)
		}
		if reply.resp.Error != "" {
			err := zerr.Wrap(errors.New(reply.resp.Error), domain.ErrBridgeCallFailed.Error())
			return nil, zerr.With(err, "command", command)
		}
		return reply.resp.Result, nil
	case <-ctx.Done():
		return nil, zerr.With(zerr.Wrap(ctx.Err(), domain.ErrBridgeCallFailed.Error()), "command", command)
	}
}

// acquire returns the live connection, dialing it if needed, and registers a
// reply slot for a new request id on it. The dial runs without mu held.
func (b *LegacyBridge) acquire(ctx context.Context) (*websocket.Conn, uint64, chan legacyReply, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, 0, nil, domain.ErrBridgeClosed
	}
	if b.conn != nil {
		defer b.mu.Unlock()
		id, replies := b.register()
		return b.conn, id, replies, nil
	}
	b.mu.Unlock()

	conn, _, err := b.dialer.DialContext(ctx, b.url, nil)
	if err != nil {
		return nil, 0, nil, zerr.With(zerr.Wrap(err, domain.ErrBridgeDialFailed.Error()), "url", b.url)
	}
	conn.SetReadLimit(legacyMaxFrameSize)

	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.closed:
		_ = conn.Close()
		return nil, 0, nil, domain.ErrBridgeClosed
	case b.conn != nil:
		// A concurrent call dialed first.
		_ = conn.Close()
	default:
		b.conn = conn
		go b.readLoop(conn)
	}

	id, replies := b.register()
	return b.conn, id, replies, nil
}

// register must be called with mu held.
func (b *LegacyBridge) register() (uint64, chan legacyReply) {
	b.nextID++
	replies := make(chan legacyReply, 1)
	b.pending[b.nextID] = replies
	return b.nextID, replies
}

func (b *LegacyBridge) release(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, id)
}

func (b *LegacyBridge) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			b.drop(conn)
			return
		}

		var resp legacyResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			continue
		}

		b.mu.Lock()
		replies, ok := b.pending[resp.ID]
		b.mu.Unlock()
		if !ok {
			continue
		}

		select {
		case replies <- legacyReply{resp: resp}:
		default:
		}
	}
}

// drop forgets conn if it is still current and fails every pending call.
func (b *LegacyBridge) drop(conn *websocket.Conn) {
	b.mu.Lock()
	if b.conn == conn {
		b.conn = nil
		b.failPending()
	}
	b.mu.Unlock()

	_ = conn.Close()
}

// failPending must be called with mu held.
func (b *LegacyBridge) failPending() {
	for id, replies := range b.pending {
		select {
		case replies <- legacyReply{err: domain.ErrBridgeClosed}:
		default:
		}
		delete(b.pending, id)
	}
}

// Close implements ports.Bridge. Later calls fail with ErrBridgeClosed.
func (b *LegacyBridge) Close() error {
	b.mu.Lock()
	conn := b.conn
	b.conn = nil
	b.closed = true
	b.failPending()
	b.mu.Unlock()

	if conn == nil {
		return nil
	}

	b.writeMu.Lock()
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	b.writeMu.Unlock()
	return conn.Close()
}
