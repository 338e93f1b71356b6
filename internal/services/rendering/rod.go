package rendering

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"Listline/utils"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	viewportWidth  = 816
	viewportHeight = 1056
	settleDelay    = 500 * time.Millisecond
	requestIdle    = 500 * time.Millisecond
)

func float(f float64) *float64 {
	return &f
}

type rodRenderer struct {
	config config.RendererConfig

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

func NewRodRenderer(c config.RendererConfig) Renderer {
	return &rodRenderer{
		config: c,
	}
}

func (r *rodRenderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		_, err := r.browser.Version()
		if err == nil {
			return r.browser, nil
		}

		logging.Logger.Warnw("browser connection lost, reconnecting", "error", err)
		_ = r.dropBrowser()
	}

	controlUrl := r.config.ControlUrl
	if controlUrl == "" {
		if r.launched != nil {
			r.launched.Kill()
			r.launched = nil
		}

		l := launcher.New().Headless(true).NoSandbox(r.config.NoSandbox)
		if r.config.BrowserBin != "" {
			l = l.Bin(r.config.BrowserBin)
		}

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w: %w", err, utils.ErrUpstream)
		}
		r.launched = l
		controlUrl = u
	}

	browser := rod.New().ControlURL(controlUrl)
	err := browser.Connect()
	if err != nil {
		return nil, fmt.Errorf("connecting to browser: %w: %w", err, utils.ErrUpstream)
	}

	logging.Logger.Infow("connected to browser", "controlUrl", controlUrl)
	r.browser = browser
	return browser, nil
}

// withPage loads html into a fresh incognito page and hands it to f.
func (r *rodRenderer) withPage(ctx context.Context, html string, scale float64, f func(page *rod.Page) ([]byte, error)) ([]byte, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating incognito context: %w: %w", err, utils.ErrUpstream)
	}
	defer func() {
		_ = incognito.Close()
	}()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w: %w", err, utils.ErrUpstream)
	}
	page = page.Context(ctx)

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: scale,
	})
	if err != nil {
		return nil, fmt.Errorf("setting viewport: %w: %w", err, utils.ErrUpstream)
	}

	waitIdle := page.WaitRequestIdle(requestIdle, nil, nil, nil)
	err = page.SetDocumentContent(html)
	if err != nil {
		return nil, fmt.Errorf("setting content: %w: %w", err, utils.ErrUpstream)
	}

	err = page.WaitLoad()
	if err != nil {
		return nil, fmt.Errorf("waiting for load: %w: %w", err, utils.ErrUpstream)
	}
	waitIdle()

	_, err = page.Eval(`() => document.fonts.ready.then(() => true)`)
	if err != nil {
		return nil, fmt.Errorf("waiting for fonts: %w: %w", err, utils.ErrUpstream)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(settleDelay):
	}

	return f(page)
}

func (r *rodRenderer) Pdf(ctx context.Context, html string) ([]byte, error) {
	return r.withPage(ctx, html, 2, func(page *rod.Page) ([]byte, error) {
		stream, err := page.PDF(&proto.PagePrintToPDF{
			PaperWidth:        float(8.5),
			PaperHeight:       float(11),
			PrintBackground:   true,
			MarginTop:         float(0),
			MarginBottom:      float(0),
			MarginLeft:        float(0),
			MarginRight:       float(0),
			PreferCSSPageSize: true,
		})
		if err != nil {
			return nil, fmt.Errorf("printing pdf: %w: %w", err, utils.ErrUpstream)
		}

		result, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("reading pdf: %w: %w", err, utils.ErrUpstream)
		}
		return result, nil
	})
}

func (r *rodRenderer) Screenshot(ctx context.Context, html string) ([]byte, error) {
	return r.withPage(ctx, html, 2, func(page *rod.Page) ([]byte, error) {
		res, err := page.Eval(`() => document.body.scrollHeight`)
		if err != nil {
			return nil, fmt.Errorf("measuring page: %w: %w", err, utils.ErrUpstream)
		}

		height := max(res.Value.Int(), viewportHeight)
		err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             viewportWidth,
			Height:            height,
			DeviceScaleFactor: 2,
		})
		if err != nil {
			return nil, fmt.Errorf("resizing viewport: %w: %w", err, utils.ErrUpstream)
		}

		result, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return nil, fmt.Errorf("taking screenshot: %w: %w", err, utils.ErrUpstream)
		}
		return result, nil
	})
}

func (r *rodRenderer) Thumbnail(ctx context.Context, html string) ([]byte, error) {
	return r.withPage(ctx, html, 0.5, func(page *rod.Page) ([]byte, error) {
		result, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return nil, fmt.Errorf("taking thumbnail: %w: %w", err, utils.ErrUpstream)
		}
		return result, nil
	})
}

func (r *rodRenderer) Ping(_ context.Context) error {
	_, err := r.connect()
	return err
}

func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.dropBrowser()
	if r.launched != nil {
		r.launched.Kill()
		r.launched = nil
	}
	return err
}

// dropBrowser forgets the current browser and closes it only if this
// renderer launched it. Callers hold r.mu.
func (r *rodRenderer) dropBrowser() error {
	if r.browser == nil {
		return nil
	}

	var err error
	// a browser reached through ControlUrl is shared and stays up
	if r.launched != nil {
		err = r.browser.Close()
	}
	r.browser = nil
	return err
}
