package zellij

// ClientIface defines the zellij operations used by the picker.
// Enables mocking in tests without a real zellij install.
type ClientIface interface {
	ListSessions() []string
	Attach(name string) (int, error)
	Create(name string) (int, error)
	Kill(name string) error
	Delete(name string) error
}

// Client implements ClientIface by shelling out to the real zellij binary.
type Client struct{}

// Compile-time check that Client satisfies ClientIface.
var _ ClientIface = (*Client)(nil)

func (c *Client) ListSessions() []string          { return ListSessions() }
func (c *Client) Attach(name string) (int, error) { return Attach(name) }
func (c *Client) Create(name string) (int, error) { return Create(name) }
func (c *Client) Kill(name string) error          { return Kill(name) }
func (c *Client) Delete(name string) error        { return Delete(name) }
