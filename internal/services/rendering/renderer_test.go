package rendering

import (
	"Listline/internal/config"
	"Listline/internal/metrics"
	"Listline/internal/services/rendering/mocks"
	"Listline/utils"
	"errors"
	"testing"

	"github.com/go-rod/rod"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RendererSuite struct {
	suite.Suite
}

func TestRendererSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RendererSuite))
}

func (s *RendererSuite) TestDropBrowserLeavesSharedBrowserRunning() {
	// arrange
	// an unconnected browser panics on Close, so any close attempt fails the test
	r := &rodRenderer{
		config:  config.RendererConfig{ControlUrl: "ws://renderer:9222"},
		browser: rod.New(),
	}

	// act
	var err error
	s.NotPanics(func() {
		err = r.dropBrowser()
	})

	// assert
	s.NoError(err)
	s.Nil(r.browser)
}

func (s *RendererSuite) TestCloseWithSharedBrowserOnlyForgetsIt() {
	// arrange
	r := &rodRenderer{
		config:  config.RendererConfig{ControlUrl: "ws://renderer:9222"},
		browser: rod.New(),
	}

	// act
	var err error
	s.NotPanics(func() {
		err = r.Close()
	})

	// assert
	s.NoError(err)
	s.Nil(r.browser)
	s.Nil(r.launched)
}

func (s *RendererSuite) TestDisabledRendererFailsAsUpstream() {
	// arrange
	renderer, err := NewRenderer(config.RendererConfig{Mode: config.RendererModeNone})
	s.Require().NoError(err)

	// act
	_, pdfErr := renderer.Pdf(s.T().Context(), "<p>x</p>")
	pingErr := renderer.Ping(s.T().Context())

	// assert
	s.ErrorIs(pdfErr, utils.ErrUpstream)
	s.NoError(pingErr)
	s.NoError(renderer.Close())
}

func (s *RendererSuite) TestUnknownModeFails() {
	// act
	_, err := NewRenderer(config.RendererConfig{Mode: "phantomjs"})

	// assert
	s.Error(err)
}

func (s *RendererSuite) TestInstrumentedDelegatesAndCountsFailures() {
	// arrange
	ctrl := gomock.NewController(s.T())
	inner := mocks.NewMockRenderer(ctrl)
	inner.EXPECT().Screenshot(gomock.Any(), "<p>ok</p>").Return([]byte("png"), nil)
	inner.EXPECT().Thumbnail(gomock.Any(), "<p>bad</p>").Return(nil, errors.New("crashed"))

	renderer := NewInstrumented(inner)
	before := testutil.ToFloat64(metrics.RenderFailures.WithLabelValues(string(KindThumbnail)))

	// act
	png, okErr := renderer.Screenshot(s.T().Context(), "<p>ok</p>")
	_, failErr := renderer.Thumbnail(s.T().Context(), "<p>bad</p>")

	// assert
	s.Require().NoError(okErr)
	s.Equal([]byte("png"), png)
	s.ErrorContains(failErr, "crashed")
	s.InDelta(before+1, testutil.ToFloat64(metrics.RenderFailures.WithLabelValues(string(KindThumbnail))), 0)
}
