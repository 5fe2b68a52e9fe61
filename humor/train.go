package humor

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/unixpickle/anynet/anys2v"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// A TrainConfig holds the hyper-parameters of the
// training loop.
type TrainConfig struct {
	// NumInput is the window size: the number of preceding
	// token indices used to predict the next token.
	NumInput int

	// HiddenSize is the width of the LSTM cell.
	HiddenSize int

	LearningRate float64
	Epochs       int

	// BatchSize is the loss-reporting and checkpoint
	// cadence in steps.
	// It is a batch in name only: every step still performs
	// one update from one example.
	BatchSize int

	// GenerateEvery triggers a "final" checkpoint and a
	// sample sentence whenever the corpus offset hits this
	// cadence without a loss improvement.
	GenerateEvery int
}

// DefaultTrainConfig returns the stock hyper-parameters.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		NumInput:      3,
		HiddenSize:    512,
		LearningRate:  0.001,
		Epochs:        100,
		BatchSize:     1000,
		GenerateEvery: 10000,
	}
}

// A Trainer runs the online training loop: one RMSProp
// update per sliding window, in corpus order, saving a
// checkpoint whenever the mean loss over the reporting
// window improves on the running minimum.
type Trainer struct {
	Config  TrainConfig
	Model   *Model
	Samples *WindowSamples

	// Saver persists improvement checkpoints.
	Saver Saver

	// FinalSaver, if non-nil, persists the periodic "final"
	// checkpoints taken without a loss improvement.
	FinalSaver Saver

	// Gen, if non-nil, emits a sample sentence after every
	// checkpoint.
	Gen *Generator

	// BestLoss is the running minimum mean loss.
	// Set it to math.Inf(1) for a fresh model, or to the
	// restored checkpoint's value.
	BestLoss float64

	// Summary, if non-nil, receives one CSV row per
	// reporting window: epoch, offset, mean loss.
	Summary io.Writer

	summary *csv.Writer
}

// Run trains until every epoch completes or stop is
// closed.
//
// Interruption between steps loses at most the pending
// partial reporting window; each completed step's update
// is already applied.
func (t *Trainer) Run(stop <-chan struct{}) error {
	if t.Samples.Len() == 0 {
		return nil
	}
	if t.Summary != nil {
		t.summary = csv.NewWriter(t.Summary)
		defer t.summary.Flush()
	}

	trainer := &anys2v.Trainer{
		Func:    t.Model.Apply,
		Cost:    t.Model.Cost(),
		Params:  t.Model.Parameters(),
		Average: true,
	}
	transformer := &anysgd.RMSProp{}
	c := t.Model.creator()

	var steps int
	var total float64
	for epoch := 0; epoch < t.Config.Epochs; epoch++ {
		for offset := 0; offset < t.Samples.Len(); offset++ {
			select {
			case <-stop:
				return nil
			default:
			}

			batch, err := trainer.Fetch(t.Samples.Slice(offset, offset+1))
			if err != nil {
				return essentials.AddCtx("train", err)
			}
			grad := transformer.Transform(trainer.Gradient(batch))
			grad.Scale(c.MakeNumeric(-t.Config.LearningRate))
			grad.AddToVars()

			total += numericFloat(trainer.LastCost)
			steps++
			if steps >= t.Config.BatchSize {
				mean := total / float64(steps)
				steps = 0
				total = 0
				if err := t.report(epoch, offset, mean); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// report handles one reporting window: it logs the mean
// loss, appends it to the summary, and applies the
// checkpoint-improvement gate.
func (t *Trainer) report(epoch, offset int, mean float64) error {
	log.Printf("epoch %d: offset %d: cost=%f", epoch, offset, mean)
	if t.summary != nil {
		row := []string{
			strconv.Itoa(epoch),
			strconv.Itoa(offset),
			strconv.FormatFloat(mean, 'g', -1, 64),
		}
		if err := t.summary.Write(row); err != nil {
			return essentials.AddCtx("write summary", err)
		}
		t.summary.Flush()
	}

	if mean < t.BestLoss {
		t.BestLoss = mean
		if err := t.Saver.Save(&State{Model: t.Model, BestLoss: t.BestLoss}); err != nil {
			return err
		}
		log.Printf("saved new best model (cost=%f)", mean)
		t.sample()
	} else if t.FinalSaver != nil && t.Config.GenerateEvery > 0 &&
		offset%t.Config.GenerateEvery == t.Config.GenerateEvery-1 {
		if err := t.FinalSaver.Save(&State{Model: t.Model, BestLoss: t.BestLoss}); err != nil {
			return err
		}
		t.sample()
	}
	return nil
}

func (t *Trainer) sample() {
	if t.Gen != nil {
		log.Printf("sample: %s", t.Gen.Sentence())
	}
}

func numericFloat(n anyvec.Numeric) float64 {
	switch n := n.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		panic(fmt.Sprintf("unsupported numeric type: %T", n))
	}
}
