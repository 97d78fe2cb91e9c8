package remote

import (
	"image"
	"net/rpc"

	"fancyshot/pkg/bitmap"
	"fancyshot/pkg/fancy"
)

func New(addr string) (*Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

// Client renders on a fancyd instance. It satisfies the same Render
// contract as *fancy.Compositor.
type Client struct {
	rpc *rpc.Client
}

func (c *Client) Render(img image.Image, p fancy.Policy) (image.Image, error) {
	if err := fancy.Validate(img); err != nil {
		return nil, err
	}

	bs, err := bitmap.Encode(img)
	if err != nil {
		return nil, err
	}

	var resp ComposeResponse
	if err := c.rpc.Call("Service.Compose", &ComposeRequest{Image: bs, Policy: toWire(p)}, &resp); err != nil {
		return nil, err
	}

	return bitmap.Decode(resp.Image)
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
