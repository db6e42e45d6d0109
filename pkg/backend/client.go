package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var ErrNoRuntimeDir = errors.New("XDG_RUNTIME_DIR is not set")

// Client reads backend event lines from a connection or stream.
type Client struct {
	closer io.Closer
	reader *bufio.Reader
}

func NewClient(r io.Reader) *Client {
	c := &Client{reader: bufio.NewReader(r)}
	if closer, ok := r.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

func Connect(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return NewClient(conn), nil
}

func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// ReadLine returns the next line without its newline. A final line without
// a newline is returned before io.EOF.
func (c *Client) ReadLine() (string, error) {
	str, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && str != "" {
			return strings.TrimSuffix(str, "\r"), nil
		}
		return "", fmt.Errorf("read event line: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(str, "\n"), "\r"), nil
}

// SocketPath is where the backend for display socket name listens.
func SocketPath(name string) (string, error) {
	if xdg.RuntimeDir == "" {
		return "", ErrNoRuntimeDir
	}
	return filepath.Join(xdg.RuntimeDir, "hyprinput", name+".events.sock"), nil
}
