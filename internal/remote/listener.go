package remote

import (
	"net"
	"strconv"
	"strings"
)

// Listener receives "x,y[,pinch]" datagrams from the hand tracker and
// publishes the latest well-formed one to a Pointer. The channel is best
// effort by design: malformed datagrams are dropped without comment, lost
// packets are never retransmitted, and the newest value always wins.
type Listener struct {
	Pointer *Pointer

	conn *net.UDPConn
	done chan struct{}
}

// Listen binds a UDP socket on the given port and starts the receive loop.
// Port 0 picks an ephemeral port (used by tests); Addr reports the bound
// address.
func Listen(port int, ptr *Pointer) (*Listener, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, err
	}
	l := &Listener{Pointer: ptr, conn: conn, done: make(chan struct{})}
	go l.run()
	return l, nil
}

func (l *Listener) Addr() net.Addr { return l.conn.LocalAddr() }

func (l *Listener) run() {
	defer close(l.done)
	buf := make([]byte, 64)
	for {
		n, _, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			// Socket closed during shutdown.
			return
		}
		if x, y, pinch, ok := parsePacket(string(buf[:n])); ok {
			l.Pointer.Set(x, y, pinch)
		}
	}
}

// Close shuts the socket down and waits for the receive loop to exit.
func (l *Listener) Close() error {
	err := l.conn.Close()
	<-l.done
	return err
}

// parsePacket parses "x,y" or "x,y,pinch". A packet missing a parseable
// x and y is rejected; a missing or unparseable pinch field defaults to
// not engaged, and only the exact value 1 counts as a pinch.
func parsePacket(s string) (x, y int, pinch bool, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return 0, 0, false, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, false
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false, false
	}
	if len(parts) >= 3 {
		if p, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil {
			pinch = p == 1
		}
	}
	return x, y, pinch, true
}
