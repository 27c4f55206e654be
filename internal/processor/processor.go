package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/banglahindi/internal"
	"codeberg.org/snonux/banglahindi/internal/archive"
	"codeberg.org/snonux/banglahindi/internal/batch"
	"codeberg.org/snonux/banglahindi/internal/cli"
	"codeberg.org/snonux/banglahindi/internal/feedback"
	"codeberg.org/snonux/banglahindi/internal/logger"
	"codeberg.org/snonux/banglahindi/internal/models"
	"codeberg.org/snonux/banglahindi/internal/nlp"
	"codeberg.org/snonux/banglahindi/internal/translit"
)

// Processor handles the main transliteration logic
type Processor struct {
	flags        *cli.Flags
	collaborator nlp.Collaborator // nil means rule-based only
	session      *translit.Session
	store        *feedback.Store
	archiveDir   string
	out          io.Writer
	errOut       io.Writer
	logger       *zap.SugaredLogger
}

// NewProcessor creates a processor from flags and configuration. Without
// an API key for the configured provider it runs rule-based only.
func NewProcessor(ctx context.Context, flags *cli.Flags) (*Processor, error) {
	log := logger.Logger
	config := buildNLPConfig(flags, log)

	var collaborator nlp.Collaborator
	if hasCredentials(config) {
		client, err := nlp.NewClient(ctx, config)
		if err != nil {
			log.Warnw("Language model unavailable, using rule-based transliteration",
				"provider", config.Provider,
				"error", err)
		} else {
			collaborator = client
			log.Infow("Language model configured",
				"provider", client.Provider().Name(),
				"timeout", config.Timeout)
		}
	} else {
		log.Infow("No API key configured, using rule-based transliteration",
			"provider", config.Provider)
	}

	return newProcessor(flags, collaborator, os.Stdout, os.Stderr)
}

func newProcessor(flags *cli.Flags, collaborator nlp.Collaborator, out, errOut io.Writer) (*Processor, error) {
	log := logger.Logger
	dir := resolveStateDir(flags)
	if err := internal.EnsureDir(dir); err != nil {
		return nil, err
	}

	dbPath := stringSetting("feedback.db", flags.FeedbackDB)
	if dbPath == "" {
		dbPath = filepath.Join(dir, "feedback.db")
	}
	store, err := feedback.OpenStore(dbPath)
	if err != nil {
		return nil, err
	}

	var improver feedback.Improver
	if collaborator != nil {
		improver = collaborator
	}
	archiveDir := filepath.Join(dir, "corpus")
	trainer, err := feedback.NewTrainer(improver, feedback.Options{
		Capacity:   viper.GetInt("feedback.capacity"),
		Store:      store,
		ArchiveDir: archiveDir,
		Logger:     log,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	opts := translit.Options{
		Refine: !flags.NoRefine && boolSetting("nlp.refine", true),
		Logger: log,
	}
	if collaborator != nil {
		opts.Restructurer = collaborator
		opts.Refiner = collaborator
		opts.IdiomTranslator = collaborator
	}
	session := translit.NewSession(translit.NewTransliterator(opts), trainer, log)

	for _, w := range flags.Words {
		bangla, hindi, err := cli.ParsePair(w)
		if err != nil {
			store.Close()
			return nil, errors.Wrap(err, "invalid --word")
		}
		if err := session.AddWord(bangla, hindi); err != nil {
			store.Close()
			return nil, err
		}
	}

	return &Processor{
		flags:        flags,
		collaborator: collaborator,
		session:      session,
		store:        store,
		archiveDir:   archiveDir,
		out:          out,
		errOut:       errOut,
		logger:       log,
	}, nil
}

// Session returns the processor's session.
func (p *Processor) Session() *translit.Session {
	return p.session
}

// Close releases the feedback database.
func (p *Processor) Close() error {
	return p.store.Close()
}

// ProcessText transliterates text and prints the result
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	if err := translit.ValidateBanglaText(text); err != nil {
		return errors.Wrapf(err, "invalid text %q", text)
	}

	result := p.session.Transliterate(ctx, text)
	for i, s := range result.Sentences {
		p.logger.Debugw("Sentence converted",
			"index", i,
			"kind", s.Kind.String(),
			"escalated", s.Escalated,
			"fell_back", s.FellBack)
	}

	fmt.Fprintln(p.out, result.Text)
	if result.Advisory != "" {
		pterm.Warning.WithWriter(p.errOut).Println(result.Advisory)
	}
	return nil
}

// ProcessReader transliterates everything read from r as one text.
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	return p.ProcessText(ctx, strings.TrimSpace(string(content)))
}

// ProcessBatch processes every line of the batch file. "-" reads stdin.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	var entries []batch.Entry
	var err error
	if p.flags.BatchFile == "-" {
		entries, err = batch.ReadBatch(os.Stdin)
	} else {
		entries, err = batch.ReadBatchFile(p.flags.BatchFile)
	}
	if err != nil {
		return err
	}

	// Track statistics
	transliterated := 0
	corrections := 0
	errorCount := 0

	for _, entry := range entries {
		if entry.IsFeedback() {
			if err := p.RecordFeedback(ctx, entry.Bangla, entry.Correction); err != nil {
				pterm.Error.WithWriter(p.errOut).Printf("Line %d: %v\n", entry.Line, err)
				errorCount++
				continue
			}
			corrections++
			continue
		}

		if err := p.ProcessText(ctx, entry.Bangla); err != nil {
			pterm.Error.WithWriter(p.errOut).Printf("Line %d: %v\n", entry.Line, err)
			errorCount++
			continue
		}
		transliterated++
	}

	// Print summary
	summary := fmt.Sprintf("Batch done: %d transliterated, %d corrections recorded", transliterated, corrections)
	if errorCount > 0 {
		pterm.Warning.WithWriter(p.errOut).Printf("%s, %d errors\n", summary, errorCount)
	} else {
		pterm.Success.WithWriter(p.errOut).Println(summary)
	}
	return nil
}

// RecordFeedback queues a correction for the next corpus submission.
func (p *Processor) RecordFeedback(ctx context.Context, bangla, hindi string) error {
	if err := translit.ValidateBanglaText(bangla); err != nil {
		return errors.Wrapf(err, "invalid feedback text %q", bangla)
	}
	if err := p.session.SubmitFeedback(ctx, bangla, hindi); err != nil {
		return err
	}

	trainer := p.session.Trainer()
	pterm.Info.WithWriter(p.errOut).Printf("Feedback recorded (%d/%d pending)\n", trainer.Len(), trainer.Capacity())
	return nil
}

// RecordFeedbackFlags records every --feedback pair.
func (p *Processor) RecordFeedbackFlags(ctx context.Context) error {
	for _, f := range p.flags.Feedback {
		bangla, hindi, err := cli.ParsePair(f)
		if err != nil {
			return errors.Wrap(err, "invalid --feedback")
		}
		if err := p.RecordFeedback(ctx, bangla, hindi); err != nil {
			return err
		}
	}
	return nil
}

// TranslateIdiom prints the Hindi idiom for phrase.
func (p *Processor) TranslateIdiom(ctx context.Context, phrase string) error {
	if err := translit.ValidateBanglaText(phrase); err != nil {
		return errors.Wrapf(err, "invalid idiom %q", phrase)
	}
	if p.collaborator == nil {
		pterm.Warning.WithWriter(p.errOut).Println("No language model configured, idiom left unchanged")
	}

	fmt.Fprintln(p.out, p.session.TranslateIdiom(ctx, phrase))
	return nil
}

// Flush submits all pending corrections now.
func (p *Processor) Flush(ctx context.Context) error {
	pending := p.session.Trainer().Len()
	if pending == 0 {
		pterm.Info.WithWriter(p.errOut).Println("No pending feedback")
		return nil
	}

	if err := p.session.Flush(ctx); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "failed to submit %d corrections", pending),
			"the corrections stay queued and are retried on the next flush")
	}

	pterm.Success.WithWriter(p.errOut).Printf("Submitted %d corrections\n", pending)
	return nil
}

// ListCorpora prints the archived corpora, oldest first, followed by the
// submission totals from the feedback database.
func (p *Processor) ListCorpora() error {
	corpora, err := archive.ListCorpora(p.archiveDir)
	if err != nil {
		return err
	}
	for _, c := range corpora {
		fmt.Fprintf(p.out, "%s\t%s\t%d bytes\n", c.ModTime.Format(time.RFC3339), c.Path, c.Size)
	}

	count, pairs, err := p.store.Submissions()
	if err != nil {
		return err
	}
	pterm.Info.WithWriter(p.errOut).Printf("%d archived corpora, %d submissions with %d corrections\n",
		len(corpora), count, pairs)
	return nil
}

// ListModels prints the chat models available for the OpenAI key.
func (p *Processor) ListModels(ctx context.Context) error {
	lister := models.NewLister(cli.GetOpenAIKey(), viper.GetString("nlp.base_url"))
	return lister.ListAvailableModels(ctx, p.out, stringSetting("nlp.model", p.flags.Model))
}
