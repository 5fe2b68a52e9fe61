// Command humorgen trains a word-level LSTM on a corpus of
// one-line sentences (e.g. joke punchlines) and prints
// generated sentences as training progresses.
//
// With -test, it skips training and prints one sentence
// from the saved model.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/JingboWang1997/ConversationalHumor/humor"
	"github.com/JingboWang1997/ConversationalHumor/humor/wordvec"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/rip"
)

func main() {
	var corpusPath string
	var embeddingPath string
	var modelPath string
	var finalPath string
	var summaryPath string
	var testMode bool
	cfg := humor.DefaultTrainConfig()

	flag.StringVar(&corpusPath, "corpus", "twitter_test.txt",
		"corpus file, one sentence per line")
	flag.StringVar(&embeddingPath, "embeddings", "",
		"pretrained word vector table (enables regression mode)")
	flag.StringVar(&modelPath, "model", "test_model", "checkpoint file")
	flag.StringVar(&finalPath, "final", "", "periodic checkpoint file "+
		"(default <model>_final)")
	flag.StringVar(&summaryPath, "summary", "", "loss summary CSV file")
	flag.BoolVar(&testMode, "test", false, "generate a sentence and exit")
	flag.IntVar(&cfg.NumInput, "window", cfg.NumInput, "input window size")
	flag.IntVar(&cfg.HiddenSize, "hidden", cfg.HiddenSize, "LSTM hidden size")
	flag.Float64Var(&cfg.LearningRate, "rate", cfg.LearningRate, "learning rate")
	flag.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "training epochs")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize,
		"steps per loss report and checkpoint decision")
	flag.IntVar(&cfg.GenerateEvery, "generate-every", cfg.GenerateEvery,
		"offset cadence for periodic checkpoints")
	flag.Parse()

	if finalPath == "" {
		finalPath = modelPath + "_final"
	}

	c := anyvec32.CurrentCreator()

	corpus, err := os.Open(corpusPath)
	if err != nil {
		essentials.Die(err)
	}
	words, maxLen, err := humor.ReadCorpus(corpus, cfg.NumInput)
	corpus.Close()
	if err != nil {
		essentials.Die(err)
	}
	vocab := humor.BuildVocab(words)
	log.Printf("vocabulary: %d tokens", vocab.Size())

	mode := humor.Classification
	numOutputs := vocab.Size()
	var emb *humor.Embeddings
	if embeddingPath != "" {
		table, err := wordvec.LoadTable(embeddingPath)
		if err != nil {
			essentials.Die(err)
		}
		emb, err = humor.IndexEmbeddings(table, vocab)
		if err != nil {
			essentials.Die(err)
		}
		mode = humor.Regression
		numOutputs = emb.Dim()
	}

	saver := &humor.FileSaver{Path: modelPath}
	state, err := saver.Restore()
	if err != nil {
		essentials.Die(err)
	}
	var model *humor.Model
	best := math.Inf(1)
	if state != nil {
		log.Println("restored checkpoint")
		model = state.Model
		best = state.BestLoss
	} else {
		model = humor.NewModel(c, cfg.NumInput, cfg.HiddenSize, numOutputs, mode)
	}

	gen := &humor.Generator{
		Model:  model,
		Vocab:  vocab,
		Emb:    emb,
		MaxLen: maxLen,
	}
	if testMode {
		fmt.Println(gen.Sentence())
		return
	}

	trainer := &humor.Trainer{
		Config:     cfg,
		Model:      model,
		Samples:    humor.NewWindowSamples(c, vocab.IDs(words), cfg.NumInput, vocab.Size(), mode, emb),
		Saver:      saver,
		FinalSaver: &humor.FileSaver{Path: finalPath},
		Gen:        gen,
		BestLoss:   best,
	}
	if summaryPath != "" {
		summary, err := os.Create(summaryPath)
		if err != nil {
			essentials.Die(err)
		}
		defer summary.Close()
		trainer.Summary = summary
	}

	log.Println("press ctrl+c once to stop")
	if err := trainer.Run(rip.NewRIP().Chan()); err != nil {
		essentials.Die(err)
	}
}
