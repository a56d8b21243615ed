// Package pipeline runs one consultation recording through transcription,
// report generation and PDF rendering.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"documio/internal/app/api"
	apperrors "documio/internal/app/errors"
	"documio/internal/app/render"
)

// Stage names one step of a run.
type Stage string

const (
	StageTranscribe Stage = "transcribe"
	StageGenerate   Stage = "generate"
	StageRender     Stage = "render"
)

// Stages lists the steps in execution order.
var Stages = []Stage{StageTranscribe, StageGenerate, StageRender}

// OutcomeSuccess is reported to observers for a completed run. Failed runs
// report the error kind.
const OutcomeSuccess = "success"

// SessionInput is one form submission.
type SessionInput struct {
	AudioPath    string
	PracticeName string
	PatientName  string
	BirthDate    string
	Consent      bool
}

// Result is the outcome of a run. Report may be set even when Run fails
// during rendering.
type Result struct {
	Report   string
	FilePath string
	Pages    int
}

// Observer is notified about stage progress.
type Observer interface {
	StageStarted(stage Stage)
	StageFinished(stage Stage, elapsed time.Duration, err error)
	RunFinished(outcome string)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithObserver adds an observer.
func WithObserver(observer Observer) Option {
	return func(p *Pipeline) {
		p.observers = append(p.observers, observer)
	}
}

type Pipeline struct {
	transcriber api.Transcriber
	generator   api.ReportGenerator
	renderer    render.Renderer
	logger      *zap.Logger
	observers   []Observer
}

func New(transcriber api.Transcriber, generator api.ReportGenerator, renderer render.Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		transcriber: transcriber,
		generator:   generator,
		renderer:    renderer,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes one submission. Without consent nothing is called and
// ErrConsentMissing is returned. Otherwise the first failing stage aborts
// the run with a PipelineError of the matching kind.
func (p *Pipeline) Run(ctx context.Context, in SessionInput) (*Result, error) {
	if !in.Consent {
		p.finish(apperrors.KindConsentMissing.String())
		return nil, apperrors.ErrConsentMissing
	}

	var transcript string
	err := p.stage(StageTranscribe, func() (err error) {
		transcript, err = p.transcriber.Transcript(ctx, in.AudioPath)
		return err
	})
	if err != nil {
		return nil, p.fail(apperrors.KindTranscriptionFailed, err)
	}

	var report string
	err = p.stage(StageGenerate, func() (err error) {
		report, err = p.generator.Generate(ctx, transcript)
		return err
	})
	if err != nil {
		return nil, p.fail(apperrors.KindGenerationFailed, err)
	}

	var rendered render.Rendered
	err = p.stage(StageRender, func() (err error) {
		rendered, err = p.renderer.Render(ctx, render.Document{
			Practice:  in.PracticeName,
			Patient:   in.PatientName,
			BirthDate: in.BirthDate,
			Report:    report,
		})
		return err
	})
	if err != nil {
		return &Result{Report: report}, p.fail(apperrors.KindRenderingFailed, err)
	}

	p.finish(OutcomeSuccess)
	// the file name carries the patient name
	p.logger.Info("report created",
		zap.String("dir", filepath.Dir(rendered.Path)),
		zap.Int("pages", rendered.Pages),
	)
	return &Result{Report: report, FilePath: rendered.Path, Pages: rendered.Pages}, nil
}

// Present runs a submission and returns what the form shows: the report
// text or a message, and the PDF path when one was written.
func (p *Pipeline) Present(ctx context.Context, in SessionInput) (string, string) {
	result, err := p.Run(ctx, in)
	if err != nil {
		return apperrors.DisplayMessage(err), ""
	}
	return result.Report, result.FilePath
}

func (p *Pipeline) stage(stage Stage, fn func() error) error {
	for _, o := range p.observers {
		o.StageStarted(stage)
	}
	p.logger.Debug("stage started", zap.String("stage", string(stage)))

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	for _, o := range p.observers {
		o.StageFinished(stage, elapsed, err)
	}
	p.logger.Debug("stage finished",
		zap.String("stage", string(stage)),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	return err
}

func (p *Pipeline) fail(kind apperrors.Kind, cause error) error {
	p.finish(kind.String())
	return apperrors.NewPipelineError(kind, cause)
}

func (p *Pipeline) finish(outcome string) {
	for _, o := range p.observers {
		o.RunFinished(outcome)
	}
}
