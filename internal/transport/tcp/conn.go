package tcp

import (
	"net"
	"time"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

// Conn adapts a net.Conn to the core connection interface, re-arming
// deadlines around every transfer. A deadline expiry surfaces as an ordinary
// error, which upstream treats exactly like a hard disconnect.
type Conn struct {
	nc           net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps an established connection.
func NewConn(nc net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{nc: nc, readTimeout: readTimeout, writeTimeout: writeTimeout}
}

// Send writes one record.
func (c *Conn) Send(m *proto.Message) error {
	if c.writeTimeout > 0 {
		_ = c.nc.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return proto.Write(c.nc, m)
}

// Recv blocks for one record, at most for the read timeout.
func (c *Conn) Recv() (*proto.Message, error) {
	if c.readTimeout > 0 {
		_ = c.nc.SetReadDeadline(time.Now().Add(c.readTimeout))
	}
	return proto.Read(c.nc)
}

// Close releases the underlying connection.
func (c *Conn) Close() error {
	return c.nc.Close()
}

// RemoteAddr reports the peer address for logs.
func (c *Conn) RemoteAddr() string {
	return c.nc.RemoteAddr().String()
}
