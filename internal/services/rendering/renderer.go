package rendering

import (
	"Listline/internal/config"
	"Listline/internal/metrics"
	"Listline/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	KindPdf        Kind = "pdf"
	KindScreenshot Kind = "screenshot"
	KindThumbnail  Kind = "thumbnail"
)

var ErrRendererDisabled = fmt.Errorf("rendering is disabled: %w", utils.ErrUpstream)

//go:generate mockgen -destination=./mocks/renderer.go -package=mocks Listline/internal/services/rendering Renderer
type Renderer interface {
	Pdf(ctx context.Context, html string) ([]byte, error)
	Screenshot(ctx context.Context, html string) ([]byte, error)
	Thumbnail(ctx context.Context, html string) ([]byte, error)
	// Ping checks that the browser answers and reconnects when it is gone.
	Ping(ctx context.Context) error
	Close() error
}

func NewRenderer(c config.RendererConfig) (Renderer, error) {
	switch c.Mode {
	case config.RendererModeRod:
		return NewInstrumented(NewRodRenderer(c)), nil

	case config.RendererModeNone:
		return NewInstrumented(NewDisabledRenderer()), nil

	default:
		return nil, fmt.Errorf("unsupported renderer mode: %s", c.Mode)
	}
}

type disabledRenderer struct{}

func NewDisabledRenderer() Renderer {
	return &disabledRenderer{}
}

func (d *disabledRenderer) Pdf(context.Context, string) ([]byte, error) {
	return nil, ErrRendererDisabled
}

func (d *disabledRenderer) Screenshot(context.Context, string) ([]byte, error) {
	return nil, ErrRendererDisabled
}

func (d *disabledRenderer) Thumbnail(context.Context, string) ([]byte, error) {
	return nil, ErrRendererDisabled
}

func (d *disabledRenderer) Ping(context.Context) error {
	return nil
}

func (d *disabledRenderer) Close() error {
	return nil
}

type instrumented struct {
	inner Renderer
}

// NewInstrumented records duration and failures of every render.
func NewInstrumented(inner Renderer) Renderer {
	return &instrumented{
		inner: inner,
	}
}

func (i *instrumented) observe(kind Kind, render func() ([]byte, error)) ([]byte, error) {
	start := time.Now()
	result, err := render()
	metrics.ObserveSince(metrics.RenderDuration.WithLabelValues(string(kind)), start)
	if err != nil && !errors.Is(err, ErrRendererDisabled) {
		metrics.RenderFailures.WithLabelValues(string(kind)).Inc()
	}
	return result, err
}

func (i *instrumented) Pdf(ctx context.Context, html string) ([]byte, error) {
	return i.observe(KindPdf, func() ([]byte, error) {
		return i.inner.Pdf(ctx, html)
	})
}

func (i *instrumented) Screenshot(ctx context.Context, html string) ([]byte, error) {
	return i.observe(KindScreenshot, func() ([]byte, error) {
		return i.inner.Screenshot(ctx, html)
	})
}

func (i *instrumented) Thumbnail(ctx context.Context, html string) ([]byte, error) {
	return i.observe(KindThumbnail, func() ([]byte, error) {
		return i.inner.Thumbnail(ctx, html)
	})
}

func (i *instrumented) Ping(ctx context.Context) error {
	return i.inner.Ping(ctx)
}

func (i *instrumented) Close() error {
	return i.inner.Close()
}
