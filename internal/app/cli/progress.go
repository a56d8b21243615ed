package cli

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"documio/internal/app/pipeline"
)

var stageLabels = map[pipeline.Stage]string{
	pipeline.StageTranscribe: "Transkription",
	pipeline.StageGenerate:   "Befund erstellen",
	pipeline.StageRender:     "PDF schreiben",
}

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// StageProgress draws a single bar advancing once per pipeline stage. It
// implements pipeline.Observer. A disabled StageProgress does nothing.
type StageProgress struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool

	mu      sync.Mutex
	current string
}

func NewStageProgress(config ProgressConfig) *StageProgress {
	if !config.Enabled {
		return &StageProgress{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	p := &StageProgress{enabled: true, current: "Start"}
	p.container = mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	p.bar = p.container.AddBar(int64(len(pipeline.Stages)),
		mpb.PrependDecorators(
			decor.Any(func(decor.Statistics) string { return p.label() }, decor.WC{W: 18, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " ✓"),
		),
	)
	return p
}

func (p *StageProgress) label() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *StageProgress) StageStarted(stage pipeline.Stage) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	p.current = stageLabels[stage]
	p.mu.Unlock()
}

func (p *StageProgress) StageFinished(_ pipeline.Stage, _ time.Duration, err error) {
	if !p.enabled || err != nil {
		return
	}
	p.bar.Increment()
}

// RunFinished completes or aborts the bar so Wait returns.
func (p *StageProgress) RunFinished(outcome string) {
	if !p.enabled {
		return
	}
	if outcome == pipeline.OutcomeSuccess {
		p.bar.SetTotal(p.bar.Current(), true)
		return
	}
	p.bar.Abort(false)
}

func (p *StageProgress) Wait() {
	if p.enabled && p.container != nil {
		p.container.Wait()
	}
}

func (p *StageProgress) Shutdown() {
	if p.enabled && p.container != nil {
		p.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
