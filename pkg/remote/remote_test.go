package remote

import (
	"image"
	"image/color"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"fancyshot/pkg/bitmap"
	"fancyshot/pkg/fancy"
)

func startServer(t *testing.T) *Client {
	t.Helper()

	h, err := NewHandler(fancy.New(), zaptest.NewLogger(t))
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestRenderRemote(t *testing.T) {
	c := startServer(t)

	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	p := fancy.Fixed(color.RGBA{0xf6, 0xd3, 0x65, 0xff}, color.RGBA{0xfd, 0xa0, 0x85, 0xff})

	out, err := c.Render(src, p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 250, 250), out.Bounds())

	local := fancy.New().Compose(src, p)
	for _, pt := range []image.Point{{0, 0}, {125, 125}, {249, 249}, {230, 180}} {
		lr, lg, lb, la := local.At(pt.X, pt.Y).RGBA()
		rr, rg, rb, ra := out.At(pt.X, pt.Y).RGBA()
		assert.Equal(t, []uint32{lr >> 8, lg >> 8, lb >> 8, la >> 8}, []uint32{rr >> 8, rg >> 8, rb >> 8, ra >> 8}, "%v", pt)
	}
}

func TestRenderRemoteEmpty(t *testing.T) {
	c := startServer(t)

	_, err := c.Render(image.NewRGBA(image.Rect(0, 0, 0, 3)), fancy.Default())
	assert.ErrorIs(t, err, fancy.ErrEmptyImage)
}

func TestServiceCompose(t *testing.T) {
	s := &Service{c: fancy.New(), log: zaptest.NewLogger(t)}

	var resp ComposeResponse
	assert.Error(t, s.Compose(&ComposeRequest{Image: []byte("junk")}, &resp))

	bs, err := bitmap.Encode(image.NewRGBA(image.Rect(0, 0, 50, 50)))
	require.NoError(t, err)

	require.NoError(t, s.Compose(&ComposeRequest{Image: bs, Policy: toWire(fancy.Random())}, &resp))
	assert.Equal(t, []int{62, 6, 6}, []int{resp.Side, resp.X, resp.Y})

	out, err := bitmap.Decode(resp.Image)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 62, 62), out.Bounds())
}

func TestPolicyWire(t *testing.T) {
	p := fancy.Fixed(color.Black, color.White)
	assert.Equal(t, p, toWire(p).policy())
	assert.Equal(t, fancy.Random(), toWire(fancy.Random()).policy())
}
